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
)

//go:generate mockgen -source=./status.go -package=pipelinemocks -destination=../../mocks/status.mock.go StatusService
type StatusService interface {
	// SetStatus status 可以是别名，状态没变时什么也不做
	SetStatus(ctx context.Context, applicationId int64, status string) error
}

type statusService struct {
	repo     repository.ApplicationRepository
	jobSvc   job.Service
	notifier Notifier
}

func NewStatusService(repo repository.ApplicationRepository, jobSvc job.Service, notifier Notifier) StatusService {
	return &statusService{repo: repo, jobSvc: jobSvc, notifier: notifier}
}

func (s *statusService) SetStatus(ctx context.Context, applicationId int64, status string) error {
	target, ok := domain.ParseStatus(status)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if target == domain.StatusInterviewScheduled {
		return ErrUseScheduler
	}
	app, err := s.repo.FindById(ctx, applicationId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: id=%d", ErrApplicationNotFound, applicationId)
	}
	if err != nil {
		return err
	}
	if app.Status == target {
		return nil
	}
	err = s.repo.UpdateStatus(ctx, applicationId, target)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: id=%d", ErrApplicationNotFound, applicationId)
	}
	if err != nil {
		return err
	}
	app.Status = target
	notifyStatus(ctx, s.jobSvc, s.notifier, app)
	return nil
}

// notifyStatus 只有录用和拒绝需要通知候选人
func notifyStatus(ctx context.Context, jobSvc job.Service, notifier Notifier, app domain.Application) {
	if !app.Status.Notifiable() {
		return
	}
	msg := StatusMessage{
		To:            app.RecipientEmail(),
		CandidateName: app.Candidate.FullName,
		Status:        app.Status,
	}
	// 拿不到职位也照样通知
	if j, err := jobSvc.Get(ctx, app.JobId); err == nil {
		msg.JobTitle = j.Title
	}
	notifier.StatusChanged(ctx, msg)
}
