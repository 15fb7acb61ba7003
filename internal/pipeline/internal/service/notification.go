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

package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/ecodeclub/recruit/internal/email"
	"github.com/ecodeclub/recruit/internal/llm"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

// Notifier 给候选人发通知，所有失败都只记录日志
type Notifier interface {
	StatusChanged(ctx context.Context, msg StatusMessage)
	InterviewInvitation(ctx context.Context, msg InvitationMessage)
}

type StatusMessage struct {
	To            string
	CandidateName string
	JobTitle      string
	Status        domain.Status
}

type InvitationMessage struct {
	To            string
	Cc            []string
	CandidateName string
	JobTitle      string
	Interview     domain.Interview
}

var (
	hiredTmpl = template.Must(template.New("hired").Parse(
		`<p>{{.CandidateName}} 您好：</p>` +
			`<p>恭喜您通过了【{{.JobTitle}}】岗位的全部流程，我们非常期待与您共事，HR 会尽快与您确认入职细节。</p>`))
	rejectedTmpl = template.Must(template.New("rejected").Parse(
		`<p>{{.CandidateName}} 您好：</p>` +
			`<p>感谢您对【{{.JobTitle}}】岗位的关注。经过慎重评估，我们暂时无法为您提供该岗位，祝您求职顺利。</p>`))
	invitationTmpl = template.Must(template.New("invitation").Parse(
		`<p>{{.CandidateName}} 您好：</p>` +
			`<p>诚邀您参加【{{.JobTitle}}】岗位的面试「{{.Title}}」。</p>` +
			`<p>时间：{{.StartAt}} 至 {{.EndAt}}</p>` +
			`{{if .Location}}<p>地点：{{.Location}}</p>{{end}}` +
			`{{if .MeetingLink}}<p>会议链接：<a href="{{.MeetingLink}}">{{.MeetingLink}}</a></p>{{end}}`))
)

type mailNotifier struct {
	client email.Service
	// llmClient 为空时使用内置模板
	llmClient llm.Client
	logger    *elog.Component
}

func NewNotifier(client email.Service, llmClient llm.Client) Notifier {
	return &mailNotifier{
		client:    client,
		llmClient: llmClient,
		logger:    elog.DefaultLogger,
	}
}

func (n *mailNotifier) StatusChanged(ctx context.Context, msg StatusMessage) {
	var (
		tmpl    *template.Template
		subject string
		intent  string
	)
	switch msg.Status {
	case domain.StatusHired:
		tmpl, subject, intent = hiredTmpl, fmt.Sprintf("【%s】录用通知", msg.JobTitle), "告知候选人已被录用"
	case domain.StatusRejected:
		tmpl, subject, intent = rejectedTmpl, fmt.Sprintf("【%s】面试结果通知", msg.JobTitle), "委婉告知候选人未通过"
	default:
		return
	}
	if msg.To == "" {
		n.logger.Warn("候选人没有邮箱，跳过通知", elog.String("status", msg.Status.String()))
		return
	}
	body, err := n.compose(ctx, intent, msg.CandidateName, msg.JobTitle, tmpl, msg)
	if err != nil {
		n.fail(err, "渲染状态通知失败", msg.To)
		return
	}
	n.send(ctx, email.Mail{To: msg.To, Subject: subject, Body: body})
}

func (n *mailNotifier) InterviewInvitation(ctx context.Context, msg InvitationMessage) {
	if msg.To == "" {
		n.logger.Warn("候选人没有邮箱，跳过面试邀请", elog.Int64("interviewId", msg.Interview.Id))
		return
	}
	const layout = "2006-01-02 15:04"
	var buf bytes.Buffer
	err := invitationTmpl.Execute(&buf, map[string]string{
		"CandidateName": msg.CandidateName,
		"JobTitle":      msg.JobTitle,
		"Title":         msg.Interview.Title,
		"StartAt":       time.UnixMilli(msg.Interview.StartAt).Format(layout),
		"EndAt":         time.UnixMilli(msg.Interview.EndAt).Format(layout),
		"Location":      msg.Interview.Location,
		"MeetingLink":   msg.Interview.MeetingLink,
	})
	if err != nil {
		n.fail(err, "渲染面试邀请失败", msg.To)
		return
	}
	n.send(ctx, email.Mail{
		To:      msg.To,
		Cc:      msg.Cc,
		Subject: fmt.Sprintf("【%s】面试邀请", msg.JobTitle),
		Body:    buf.Bytes(),
	})
}

// compose 优先让大模型写正文，失败时退回模板
func (n *mailNotifier) compose(ctx context.Context, intent, name, jobTitle string,
	tmpl *template.Template, data any) ([]byte, error) {
	if n.llmClient != nil {
		prompt := fmt.Sprintf("请以公司 HR 的口吻写一封简短得体的中文邮件正文，%s。候选人姓名：%s，岗位：%s。只输出正文，不要称呼以外的格式标记。",
			intent, name, jobTitle)
		answer, err := n.llmClient.Complete(ctx, prompt)
		if err == nil && strings.TrimSpace(answer.Content) != "" {
			return []byte(toHTMLParagraphs(answer.Content)), nil
		}
		n.logger.Warn("大模型生成邮件正文失败，使用模板", elog.FieldErr(err))
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *mailNotifier) send(ctx context.Context, mail email.Mail) {
	if err := n.client.SendMail(ctx, mail); err != nil {
		n.fail(err, "发送邮件失败", mail.To)
	}
}

func (n *mailNotifier) fail(err error, msg, to string) {
	sideEffectFailures.WithLabelValues(channelEmail).Inc()
	n.logger.Error(msg, elog.FieldErr(err), elog.String("to", to))
}

func toHTMLParagraphs(text string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sb.WriteString("<p>")
		sb.WriteString(template.HTMLEscapeString(line))
		sb.WriteString("</p>")
	}
	return sb.String()
}
