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

package email

import "context"

// Service 发送邮件，只负责投递，不回传送达回执
//
//go:generate mockgen -source=./type.go -package=emailmocks -destination=./mocks/email.mock.go Service
type Service interface {
	SendMail(ctx context.Context, mail Mail) error
}

type Mail struct {
	// From 发件人显示名，为空时由具体渠道决定
	From        string
	To          string
	Cc          []string
	Subject     string
	Body        []byte
	Attachments []Attachment
}

// Recipients 收件人和抄送人，去掉空值和重复值
func (m Mail) Recipients() []string {
	res := make([]string, 0, len(m.Cc)+1)
	seen := make(map[string]struct{}, len(m.Cc)+1)
	for _, addr := range append([]string{m.To}, m.Cc...) {
		if addr == "" {
			continue
		}
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		res = append(res, addr)
	}
	return res
}

type Attachment struct {
	Filename string
	Content  []byte
}
