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

package ioc

import (
	"fmt"

	"github.com/ecodeclub/recruit/internal/email"
	"github.com/ecodeclub/recruit/internal/email/aliyun"
	"github.com/ecodeclub/recruit/internal/email/failover"
	"github.com/ecodeclub/recruit/internal/email/smtp"
	"github.com/go-gomail/gomail"
	"github.com/gotomicro/ego/core/econf"
)

type emailConfig struct {
	// Provider 可选 aliyun、smtp、failover、noop
	Provider string `yaml:"provider"`
	Aliyun   struct {
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		AccountName     string `yaml:"accountName"`
		FromAlias       string `yaml:"fromAlias"`
	} `yaml:"aliyun"`
	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		FromName string `yaml:"fromName"`
	} `yaml:"smtp"`
}

func InitEmailService() email.Service {
	var cfg emailConfig
	err := econf.UnmarshalKey("email", &cfg)
	if err != nil {
		panic(err)
	}
	switch cfg.Provider {
	case "aliyun":
		return initAliyunEmail(cfg)
	case "smtp":
		return initSMTPEmail(cfg)
	case "failover":
		// 阿里云优先，失败再走 SMTP
		return failover.NewService([]email.Service{initAliyunEmail(cfg), initSMTPEmail(cfg)})
	case "noop", "":
		return email.NoOpService{}
	default:
		panic(fmt.Sprintf("未知的邮件渠道 %s", cfg.Provider))
	}
}

func initAliyunEmail(cfg emailConfig) email.Service {
	svc, err := aliyun.NewDirectMail(cfg.Aliyun.AccessKeyID, cfg.Aliyun.AccessKeySecret,
		cfg.Aliyun.AccountName, cfg.Aliyun.FromAlias)
	if err != nil {
		panic(err)
	}
	return svc
}

func initSMTPEmail(cfg emailConfig) email.Service {
	d := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	return smtp.NewService(d, cfg.SMTP.FromName)
}
