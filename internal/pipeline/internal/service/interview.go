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
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	"github.com/ecodeclub/recruit/internal/staff"
	"github.com/gotomicro/ego/core/elog"
)

type InterviewService interface {
	// Schedule 安排面试，投递状态同时变为 INTERVIEW_SCHEDULED
	Schedule(ctx context.Context, req ScheduleRequest) (int64, error)
	// Cancel 只取消面试，不修改投递状态
	Cancel(ctx context.Context, interviewId int64) error
	LatestByApplication(ctx context.Context, applicationId int64) (domain.Interview, error)
	// MySchedule 面试官自己的日程
	MySchedule(ctx context.Context, interviewerId int64, offset, limit int) ([]ScheduleItem, int64, error)
}

type ScheduleRequest struct {
	ApplicationId int64
	InterviewerId int64
	Title         string
	StartAt       int64
	EndAt         int64
	Location      string
	MeetingLink   string
	// ScheduledBy 操作人
	ScheduledBy int64
}

type ScheduleItem struct {
	Interview domain.Interview
	State     domain.ScheduleState
}

type interviewService struct {
	repo     repository.InterviewRepository
	appRepo  repository.ApplicationRepository
	staffSvc staff.Service
	jobSvc   job.Service
	notifier Notifier
	now      func() time.Time
	logger   *elog.Component
}

func NewInterviewService(repo repository.InterviewRepository,
	appRepo repository.ApplicationRepository,
	staffSvc staff.Service,
	jobSvc job.Service,
	notifier Notifier) InterviewService {
	return &interviewService{
		repo:     repo,
		appRepo:  appRepo,
		staffSvc: staffSvc,
		jobSvc:   jobSvc,
		notifier: notifier,
		now:      time.Now,
		logger:   elog.DefaultLogger,
	}
}

func (s *interviewService) Schedule(ctx context.Context, req ScheduleRequest) (int64, error) {
	app, err := s.appRepo.FindById(ctx, req.ApplicationId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: id=%d", ErrApplicationNotFound, req.ApplicationId)
	}
	if err != nil {
		return 0, err
	}
	interviewer, err := s.staffSvc.Get(ctx, req.InterviewerId)
	if errors.Is(err, staff.ErrStaffNotFound) {
		return 0, fmt.Errorf("%w: id=%d", ErrInterviewerNotFound, req.InterviewerId)
	}
	if err != nil {
		return 0, err
	}
	if !interviewer.CanInterview() {
		return 0, fmt.Errorf("%w: id=%d", ErrInterviewerRole, req.InterviewerId)
	}
	if req.EndAt <= req.StartAt {
		return 0, fmt.Errorf("%w: 结束时间必须晚于开始时间", ErrInvalidParam)
	}

	iv := domain.Interview{
		ApplicationId: req.ApplicationId,
		InterviewerId: req.InterviewerId,
		Title:         strings.TrimSpace(req.Title),
		StartAt:       req.StartAt,
		EndAt:         req.EndAt,
		Location:      strings.TrimSpace(req.Location),
		MeetingLink:   strings.TrimSpace(req.MeetingLink),
		Status:        domain.InterviewStatusScheduled,
		CreatedBy:     req.ScheduledBy,
	}
	id, err := s.repo.Schedule(ctx, iv)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: id=%d", ErrApplicationNotFound, req.ApplicationId)
	}
	if err != nil {
		return 0, err
	}
	iv.Id = id
	s.invite(ctx, app, iv, interviewer, req.ScheduledBy)
	return id, nil
}

// invite 抄送面试官和安排人
func (s *interviewService) invite(ctx context.Context, app domain.Application, iv domain.Interview,
	interviewer staff.Staff, scheduledBy int64) {
	msg := InvitationMessage{
		To:            app.RecipientEmail(),
		CandidateName: app.Candidate.FullName,
		Interview:     iv,
	}
	if interviewer.Email != "" {
		msg.Cc = append(msg.Cc, interviewer.Email)
	}
	if scheduledBy > 0 && scheduledBy != interviewer.Id {
		scheduler, err := s.staffSvc.Get(ctx, scheduledBy)
		if err != nil {
			s.logger.Warn("查询面试安排人失败", elog.FieldErr(err), elog.Int64("uid", scheduledBy))
		} else if scheduler.Email != "" {
			msg.Cc = append(msg.Cc, scheduler.Email)
		}
	}
	if j, err := s.jobSvc.Get(ctx, app.JobId); err == nil {
		msg.JobTitle = j.Title
	}
	s.notifier.InterviewInvitation(ctx, msg)
}

func (s *interviewService) Cancel(ctx context.Context, interviewId int64) error {
	err := s.repo.Cancel(ctx, interviewId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: id=%d", ErrInterviewNotFound, interviewId)
	}
	return err
}

func (s *interviewService) LatestByApplication(ctx context.Context, applicationId int64) (domain.Interview, error) {
	iv, err := s.repo.FindLatestByApplication(ctx, applicationId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Interview{}, fmt.Errorf("%w: applicationId=%d", ErrInterviewNotFound, applicationId)
	}
	return iv, err
}

func (s *interviewService) MySchedule(ctx context.Context, interviewerId int64, offset, limit int) ([]ScheduleItem, int64, error) {
	ivs, err := s.repo.FindByInterviewer(ctx, interviewerId, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByInterviewer(ctx, interviewerId)
	if err != nil {
		return nil, 0, err
	}
	now := s.now()
	res := make([]ScheduleItem, 0, len(ivs))
	for _, iv := range ivs {
		res = append(res, ScheduleItem{Interview: iv, State: iv.State(now)})
	}
	return res, total, nil
}
