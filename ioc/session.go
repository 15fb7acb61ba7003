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
	"errors"
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/ginx/session/cookie"
	"github.com/ecodeclub/ginx/session/header"
	"github.com/ecodeclub/ginx/session/mixin"
	sessredis "github.com/ecodeclub/ginx/session/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

const (
	// 员工后台按一个工作日登录一次
	defaultSessionExpiration = 8 * time.Hour
	defaultSessionCookie     = "recruit_ssid"
)

// sessionConfig 员工和登录后投递的候选人共用一套会话
type sessionConfig struct {
	SessionEncryptedKey string        `yaml:"sessionEncryptedKey"`
	Expiration          time.Duration `yaml:"expiration"`
	Cookie              struct {
		Name   string `yaml:"name"`
		Domain string `yaml:"domain"`
		// Insecure 本地用 http 调试时打开
		Insecure bool `yaml:"insecure"`
	} `yaml:"cookie"`
}

func loadSessionConfig() (sessionConfig, error) {
	var cfg sessionConfig
	if err := econf.UnmarshalKey("session", &cfg); err != nil {
		return sessionConfig{}, err
	}
	if cfg.SessionEncryptedKey == "" {
		return sessionConfig{}, errors.New("session.sessionEncryptedKey 不能为空")
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = defaultSessionExpiration
	}
	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = defaultSessionCookie
	}
	return cfg, nil
}

func InitSession(cmd redis.Cmdable) session.Provider {
	cfg, err := loadSessionConfig()
	if err != nil {
		panic(err)
	}
	sp := sessredis.NewSessionProvider(cmd, cfg.SessionEncryptedKey, cfg.Expiration)
	// 招聘后台前端走 header，职位页上的投递表单走 cookie
	sp.TokenCarrier = mixin.NewTokenCarrier(header.NewTokenCarrier(), newSessionCookie(cfg))
	return sp
}

func newSessionCookie(cfg sessionConfig) *cookie.TokenCarrier {
	return &cookie.TokenCarrier{
		MaxAge:   int(cfg.Expiration.Seconds()),
		Name:     cfg.Cookie.Name,
		Secure:   !cfg.Cookie.Insecure,
		HttpOnly: true,
		Domain:   cfg.Cookie.Domain,
	}
}
