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
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/recruit/internal/job"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/event"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// 消息发不出去时，后台评分最多执行这么久
const detachedScoringTimeout = 2 * time.Minute

type ApplicationService interface {
	// Submit 投递简历，返回投递 ID
	Submit(ctx context.Context, req SubmitRequest) (int64, error)
	ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]domain.ScoredApplication, int64, error)
	// Mine 登录用户自己的投递
	Mine(ctx context.Context, uid int64) ([]domain.Application, error)
	Detail(ctx context.Context, id int64) (ApplicationDetail, error)
}

type SubmitRequest struct {
	JobId        int64
	Identity     domain.Identity
	Resume       ResumeFile
	Introduction string
}

type ApplicationDetail struct {
	Application domain.Application
	Job         job.Job
	// 没有时为零值
	AiScore   domain.AiScore
	Interview domain.Interview
}

type applicationService struct {
	repo      repository.ApplicationRepository
	scoreRepo repository.AiScoreRepository
	ivRepo    repository.InterviewRepository
	jobSvc    job.Service
	docs      *DocumentStore
	producer  event.ApplicationEventProducer
	scorer    ScoringService
	logger    *elog.Component
}

func NewApplicationService(repo repository.ApplicationRepository,
	scoreRepo repository.AiScoreRepository,
	ivRepo repository.InterviewRepository,
	jobSvc job.Service,
	docs *DocumentStore,
	producer event.ApplicationEventProducer,
	scorer ScoringService) ApplicationService {
	return &applicationService{
		repo:      repo,
		scoreRepo: scoreRepo,
		ivRepo:    ivRepo,
		jobSvc:    jobSvc,
		docs:      docs,
		producer:  producer,
		scorer:    scorer,
		logger:    elog.DefaultLogger,
	}
}

func (s *applicationService) Submit(ctx context.Context, req SubmitRequest) (int64, error) {
	req.Identity.Email = strings.TrimSpace(req.Identity.Email)
	req.Identity.FullName = strings.TrimSpace(req.Identity.FullName)
	req.Identity.Phone = strings.TrimSpace(req.Identity.Phone)
	if req.Identity.Email == "" {
		return 0, fmt.Errorf("%w: 邮箱不能为空", ErrInvalidParam)
	}
	if err := s.docs.Validate(req.Resume); err != nil {
		return 0, err
	}
	if err := s.checkJob(ctx, req.JobId); err != nil {
		return 0, err
	}
	if err := s.checkDuplicate(ctx, req.JobId, req.Identity); err != nil {
		return 0, err
	}

	doc, err := s.docs.Save(ctx, req.Resume)
	if err != nil {
		return 0, err
	}
	app, err := s.repo.Create(ctx, domain.Submission{
		JobId:        req.JobId,
		Identity:     req.Identity,
		Resume:       doc,
		Introduction: req.Introduction,
	})
	if err != nil {
		// 数据没写进去，文件也不能留下
		s.docs.Discard(ctx, doc)
		return 0, err
	}
	s.triggerScoring(ctx, app)
	return app.Id, nil
}

func (s *applicationService) checkJob(ctx context.Context, jobId int64) error {
	if jobId <= 0 {
		return fmt.Errorf("%w: 职位 ID 不合法", ErrInvalidParam)
	}
	// 职位可能刚在职位管理里删除，不能用缓存判断
	j, err := s.jobSvc.GetFresh(ctx, jobId)
	if errors.Is(err, job.ErrJobNotFound) {
		return fmt.Errorf("%w: id=%d", ErrJobNotFound, jobId)
	}
	if err != nil {
		return err
	}
	if !j.Available() {
		return fmt.Errorf("%w: id=%d 已下线", ErrJobNotFound, jobId)
	}
	return nil
}

// checkDuplicate 落盘之前先查一次，事务里还会再查
func (s *applicationService) checkDuplicate(ctx context.Context, jobId int64, identity domain.Identity) error {
	c, err := s.repo.FindCandidate(ctx, identity.Uid, identity.Email)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = s.repo.FindByJobAndCandidate(ctx, jobId, c.Id)
	switch {
	case err == nil:
		return ErrDuplicateApplication
	case errors.Is(err, repository.ErrRecordNotFound):
		return nil
	default:
		return err
	}
}

// triggerScoring 优先走消息队列，发送失败时在后台直接评分
func (s *applicationService) triggerScoring(ctx context.Context, app domain.Application) {
	err := s.producer.Produce(ctx, event.ApplicationSubmittedEvent{
		ApplicationId: app.Id,
		JobId:         app.JobId,
		CandidateId:   app.Candidate.Id,
	})
	if err == nil {
		return
	}
	sideEffectFailures.WithLabelValues(channelMQ).Inc()
	s.logger.Error("发送投递事件失败，改为后台评分",
		elog.FieldErr(err),
		elog.Int64("applicationId", app.Id))

	bgCtx := context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(bgCtx, detachedScoringTimeout)
		defer cancel()
		_, err := s.scorer.Score(ctx, app.Id)
		switch {
		case err == nil:
		case errors.Is(err, ErrScoringSkipped):
			s.logger.Info("跳过 AI 评分", elog.Int64("applicationId", app.Id), elog.String("reason", err.Error()))
		default:
			sideEffectFailures.WithLabelValues(channelAiScoring).Inc()
			s.logger.Error("后台 AI 评分失败", elog.FieldErr(err), elog.Int64("applicationId", app.Id))
		}
	}()
}

func (s *applicationService) ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]domain.ScoredApplication, int64, error) {
	var (
		eg    errgroup.Group
		apps  []domain.ScoredApplication
		total int64
	)
	eg.Go(func() error {
		var err error
		apps, err = s.repo.ListByJob(ctx, jobId, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByJob(ctx, jobId)
		return err
	})
	return apps, total, eg.Wait()
}

func (s *applicationService) Mine(ctx context.Context, uid int64) ([]domain.Application, error) {
	c, err := s.repo.FindCandidateByUid(ctx, uid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return []domain.Application{}, nil
	}
	if err != nil {
		return nil, err
	}
	apps, err := s.repo.FindByCandidate(ctx, c.Id)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		apps[i].Candidate = c
	}
	return apps, nil
}

func (s *applicationService) Detail(ctx context.Context, id int64) (ApplicationDetail, error) {
	app, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ApplicationDetail{}, fmt.Errorf("%w: id=%d", ErrApplicationNotFound, id)
	}
	if err != nil {
		return ApplicationDetail{}, err
	}
	res := ApplicationDetail{Application: app}
	var eg errgroup.Group
	eg.Go(func() error {
		j, err := s.jobSvc.Get(ctx, app.JobId)
		if errors.Is(err, job.ErrJobNotFound) {
			return nil
		}
		res.Job = j
		return err
	})
	eg.Go(func() error {
		sc, err := s.scoreRepo.FindLatest(ctx, id)
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil
		}
		res.AiScore = sc
		return err
	})
	eg.Go(func() error {
		iv, err := s.ivRepo.FindLatestByApplication(ctx, id)
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil
		}
		res.Interview = iv
		return err
	})
	return res, eg.Wait()
}
