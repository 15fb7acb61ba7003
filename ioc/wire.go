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

//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/recruit/internal/job"
	"github.com/ecodeclub/recruit/internal/pipeline"
	"github.com/ecodeclub/recruit/internal/staff"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

var thirdPartySet = wire.NewSet(
	InitStorage,
	InitPDFConverter,
	InitTextExtractor,
	InitEmailService,
	InitLLMClient,
)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		thirdPartySet,
		job.InitModule,
		staff.InitModule,
		InitPipelineModule,
		wire.FieldsOf(new(*pipeline.Module), "Hdl", "InterviewHdl", "OfferHdl", "AssistantHdl", "Consumer"),
		InitSession,
		initGinxServer,
		initMQConsumers)
	return new(App), nil
}
