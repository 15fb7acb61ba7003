// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package aliyun

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/ecodeclub/recruit/internal/email"
)

// DirectMail 阿里云邮件推送
// 单封发信接口不支持抄送，抄送人和收件人一起放进 ToAddress
type DirectMail struct {
	client      *dm20151123.Client
	accountName string
	fromAlias   string
}

func NewDirectMail(accessKeyID, accessKeySecret, accountName, fromAlias string) (*DirectMail, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}
	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create DirectMail client: %w", err)
	}
	return &DirectMail{
		client:      client,
		accountName: accountName,
		fromAlias:   fromAlias,
	}, nil
}

func (a *DirectMail) SendMail(ctx context.Context, mail email.Mail) error {
	recipients := mail.Recipients()
	if len(recipients) == 0 {
		return errors.New("邮件没有收件人")
	}
	alias := mail.From
	if alias == "" {
		alias = a.fromAlias
	}
	request := &dm20151123.SingleSendMailAdvanceRequest{
		AccountName: tea.String(a.accountName),
		FromAlias:   tea.String(alias),
		// 1 表示随机账号
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(strings.Join(recipients, ",")),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	for idx := range mail.Attachments {
		att := &dm20151123.SingleSendMailAdvanceRequestAttachments{}
		att.SetAttachmentName(mail.Attachments[idx].Filename)
		att.SetAttachmentUrlObject(bytes.NewReader(mail.Attachments[idx].Content))
		request.Attachments = append(request.Attachments, att)
	}
	_, err := a.client.SingleSendMailAdvance(request, &util.RuntimeOptions{})
	if err != nil {
		return a.handleError(err)
	}
	return nil
}

func (a *DirectMail) handleError(err error) error {
	var sdkErr *tea.SDKError
	if !errors.As(err, &sdkErr) {
		return fmt.Errorf("阿里云邮件推送失败: %w", err)
	}
	msg := fmt.Sprintf("阿里云邮件推送API错误: %s", tea.StringValue(sdkErr.Message))
	var data map[string]any
	if sdkErr.Data != nil && json.Unmarshal([]byte(tea.StringValue(sdkErr.Data)), &data) == nil {
		if recommend, ok := data["Recommend"]; ok {
			msg += fmt.Sprintf(" | 建议: %v", recommend)
		}
		if requestID, ok := data["RequestId"]; ok {
			msg += fmt.Sprintf(" | RequestId: %v", requestID)
		}
	}
	return errors.New(msg)
}
