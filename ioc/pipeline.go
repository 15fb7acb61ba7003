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
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/recruit/internal/email"
	"github.com/ecodeclub/recruit/internal/job"
	"github.com/ecodeclub/recruit/internal/llm"
	"github.com/ecodeclub/recruit/internal/pipeline"
	"github.com/ecodeclub/recruit/internal/pkg/pdf"
	"github.com/ecodeclub/recruit/internal/pkg/storage"
	"github.com/ecodeclub/recruit/internal/staff"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitPipelineModule(db *egorm.Component,
	q mq.MQ,
	jobModule *job.Module,
	staffModule *staff.Module,
	st storage.Storage,
	extractor pdf.TextExtractor,
	converter pdf.Converter,
	emailSvc email.Service,
	llmClient llm.Client) *pipeline.Module {
	var cfg pipeline.Config
	err := econf.UnmarshalKey("pipeline", &cfg)
	if err != nil {
		panic(err)
	}
	return pipeline.InitModule(db, q, jobModule, staffModule, st, extractor, converter, emailSvc, llmClient, cfg)
}
