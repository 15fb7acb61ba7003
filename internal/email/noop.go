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

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
)

// NoOpService 只打日志，本地开发使用
type NoOpService struct{}

func (n NoOpService) SendMail(ctx context.Context, mail Mail) error {
	elog.DefaultLogger.Info("模拟发送邮件",
		elog.String("to", mail.To),
		elog.Any("cc", mail.Cc),
		elog.String("subject", mail.Subject),
		elog.Int("attachments", len(mail.Attachments)))
	return nil
}
