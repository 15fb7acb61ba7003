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

	"github.com/ecodeclub/recruit/internal/job"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

type EvaluationService interface {
	// Record 记录面试评价，并根据结论推进投递状态
	Record(ctx context.Context, req EvaluationRequest) (int64, error)
	FindByInterview(ctx context.Context, interviewId int64) (domain.Evaluation, error)
}

type EvaluationRequest struct {
	InterviewId int64
	// InterviewerId 为 0 时使用面试上登记的面试官
	InterviewerId int64
	Score         int
	Comment       string
	Result        string
	Details       map[string]any
}

type evaluationService struct {
	repo     repository.InterviewRepository
	appRepo  repository.ApplicationRepository
	jobSvc   job.Service
	notifier Notifier
	logger   *elog.Component
}

func NewEvaluationService(repo repository.InterviewRepository,
	appRepo repository.ApplicationRepository,
	jobSvc job.Service,
	notifier Notifier) EvaluationService {
	return &evaluationService{
		repo:     repo,
		appRepo:  appRepo,
		jobSvc:   jobSvc,
		notifier: notifier,
		logger:   elog.DefaultLogger,
	}
}

func (s *evaluationService) Record(ctx context.Context, req EvaluationRequest) (int64, error) {
	result, ok := domain.ParseResult(req.Result)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidResult, req.Result)
	}
	if req.Score < 0 {
		return 0, fmt.Errorf("%w: 分数不能为负数", ErrInvalidParam)
	}
	iv, err := s.repo.FindById(ctx, req.InterviewId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: id=%d", ErrInterviewNotFound, req.InterviewId)
	}
	if err != nil {
		return 0, err
	}
	if !iv.Open() {
		return 0, fmt.Errorf("%w: id=%d status=%s", ErrInterviewClosed, iv.Id, iv.Status)
	}
	interviewerId := req.InterviewerId
	if interviewerId == 0 {
		interviewerId = iv.InterviewerId
	}
	next, _ := domain.NextStatus(result)
	outcome, err := s.repo.Evaluate(ctx, domain.Evaluation{
		InterviewId:   iv.Id,
		InterviewerId: interviewerId,
		Score:         req.Score,
		Comment:       req.Comment,
		Result:        result,
		Details:       req.Details,
	}, next)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: id=%d", ErrInterviewNotFound, req.InterviewId)
	}
	if err != nil {
		return 0, err
	}
	if outcome.StatusChanged && outcome.Status == domain.StatusRejected {
		s.notifyRejected(ctx, outcome.ApplicationId)
	}
	return outcome.EvaluationId, nil
}

func (s *evaluationService) notifyRejected(ctx context.Context, applicationId int64) {
	app, err := s.appRepo.FindById(ctx, applicationId)
	if err != nil {
		sideEffectFailures.WithLabelValues(channelEmail).Inc()
		s.logger.Error("查询投递失败，无法发送通知", elog.FieldErr(err), elog.Int64("applicationId", applicationId))
		return
	}
	notifyStatus(ctx, s.jobSvc, s.notifier, app)
}

func (s *evaluationService) FindByInterview(ctx context.Context, interviewId int64) (domain.Evaluation, error) {
	eva, err := s.repo.FindEvaluationByInterview(ctx, interviewId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Evaluation{}, fmt.Errorf("%w: interviewId=%d", ErrEvaluationNotFound, interviewId)
	}
	return eva, err
}
