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

package smtp

import (
	"context"
	"io"

	"github.com/ecodeclub/recruit/internal/email"
	"github.com/go-gomail/gomail"
)

// Service 基于 SMTP 发信
type Service struct {
	d        *gomail.Dialer
	fromName string
}

func NewService(d *gomail.Dialer, fromName string) *Service {
	return &Service{d: d, fromName: fromName}
}

func (s *Service) SendMail(ctx context.Context, mail email.Mail) error {
	m := gomail.NewMessage()
	name := mail.From
	if name == "" {
		name = s.fromName
	}
	m.SetAddressHeader("From", s.d.Username, name)
	m.SetHeader("To", mail.To)
	if len(mail.Cc) > 0 {
		m.SetHeader("Cc", mail.Cc...)
	}
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/html", string(mail.Body))
	for i := range mail.Attachments {
		content := mail.Attachments[i].Content
		m.Attach(mail.Attachments[i].Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}
	// gomail 不支持 context，在这里先检查一次
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.d.DialAndSend(m)
}
