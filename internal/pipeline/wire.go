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

package pipeline

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/recruit/internal/email"
	"github.com/ecodeclub/recruit/internal/job"
	"github.com/ecodeclub/recruit/internal/llm"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/event"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository/dao"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/service"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/web"
	"github.com/ecodeclub/recruit/internal/pkg/middleware"
	"github.com/ecodeclub/recruit/internal/pkg/pdf"
	"github.com/ecodeclub/recruit/internal/pkg/storage"
	"github.com/ecodeclub/recruit/internal/staff"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	jobModule *job.Module,
	staffModule *staff.Module,
	st storage.Storage,
	extractor pdf.TextExtractor,
	converter pdf.Converter,
	emailSvc email.Service,
	llmClient llm.Client,
	cfg Config,
) *Module {
	wire.Build(
		initApplicationDAO,
		initInterviewDAO,
		initAiScoreDAO,
		repository.NewApplicationRepository,
		repository.NewInterviewRepository,
		repository.NewAiScoreRepository,
		initDocumentStore,
		initProducer,
		initNotifier,
		initOfferService,
		service.NewScoringService,
		service.NewApplicationService,
		service.NewStatusService,
		service.NewInterviewService,
		service.NewEvaluationService,
		service.NewAssistantService,
		initConsumer,
		middleware.NewCheckRoleMiddlewareBuilder,
		initHandler,
		web.NewInterviewHandler,
		web.NewOfferHandler,
		web.NewAssistantHandler,
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.FieldsOf(new(*staff.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var tablesOnce sync.Once

func initTables(db *egorm.Component) {
	tablesOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func initApplicationDAO(db *egorm.Component) dao.ApplicationDAO {
	initTables(db)
	return dao.NewGORMApplicationDAO(db)
}

func initInterviewDAO(db *egorm.Component) dao.InterviewDAO {
	initTables(db)
	return dao.NewGORMInterviewDAO(db)
}

func initAiScoreDAO(db *egorm.Component) dao.AiScoreDAO {
	initTables(db)
	return dao.NewGORMAiScoreDAO(db)
}

func initDocumentStore(st storage.Storage, cfg Config) *service.DocumentStore {
	return service.NewDocumentStore(st, cfg.MaxResumeBytes)
}

func initProducer(q mq.MQ) event.ApplicationEventProducer {
	producer, err := event.NewApplicationEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}

// initNotifier 没有开启 aiCompose 时只用模板
func initNotifier(emailSvc email.Service, llmClient llm.Client, cfg Config) service.Notifier {
	if !cfg.AiCompose {
		return service.NewNotifier(emailSvc, nil)
	}
	return service.NewNotifier(emailSvc, llmClient)
}

func initOfferService(appRepo repository.ApplicationRepository,
	ivRepo repository.InterviewRepository,
	jobSvc job.Service,
	staffSvc staff.Service,
	statusSvc service.StatusService,
	emailSvc email.Service,
	converter pdf.Converter,
	cfg Config) service.OfferService {
	svc, err := service.NewOfferService(appRepo, ivRepo, jobSvc, staffSvc, statusSvc, emailSvc, converter, cfg.Offer)
	if err != nil {
		panic(err)
	}
	return svc
}

func initConsumer(scorer service.ScoringService, q mq.MQ) *event.ScoringConsumer {
	consumer, err := event.NewScoringConsumer(scorer, q)
	if err != nil {
		panic(err)
	}
	return consumer
}

func initHandler(svc service.ApplicationService,
	statusSvc service.StatusService,
	scorer service.ScoringService,
	roles *middleware.CheckRoleMiddlewareBuilder,
	cfg Config) *web.Handler {
	return web.NewHandler(svc, statusSvc, scorer, roles, cfg.MaxResumeBytes)
}
