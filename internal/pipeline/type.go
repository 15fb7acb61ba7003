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

package pipeline

import (
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/event"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/service"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/web"
)

type Handler = web.Handler

type InterviewHandler = web.InterviewHandler

type OfferHandler = web.OfferHandler

type AssistantHandler = web.AssistantHandler

type ScoringConsumer = event.ScoringConsumer

type StatusService = service.StatusService

type Status = domain.Status

type OfferConfig = service.OfferConfig

// Config 招聘流程相关配置
type Config struct {
	// MaxResumeBytes 简历大小上限，不配置时 5MB
	MaxResumeBytes int64 `yaml:"maxResumeBytes"`
	// AiCompose 通知邮件正文交给大模型生成
	AiCompose bool        `yaml:"aiCompose"`
	Offer     OfferConfig `yaml:"offer"`
}
