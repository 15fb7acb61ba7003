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

	"github.com/ecodeclub/recruit/internal/llm"
	"github.com/ecodeclub/recruit/internal/llm/openai"
	"github.com/ecodeclub/recruit/internal/llm/zhipu"
	"github.com/gotomicro/ego/core/econf"
)

func InitLLMClient() llm.Client {
	type Config struct {
		// Platform 可选 openai、zhipu
		Platform string `yaml:"platform"`
		BaseURL  string `yaml:"baseURL"`
		APIKey   string `yaml:"apiKey"`
		Model    string `yaml:"model"`
	}
	var cfg Config
	err := econf.UnmarshalKey("llm", &cfg)
	if err != nil {
		panic(err)
	}
	switch cfg.Platform {
	case "zhipu":
		client, err := zhipu.NewClient(cfg.APIKey, cfg.Model)
		if err != nil {
			panic(err)
		}
		return client
	case "openai", "":
		// 兼容 openai 协议的平台都走这里
		return openai.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Model)
	default:
		panic(fmt.Sprintf("未知的大模型平台 %s", cfg.Platform))
	}
}
