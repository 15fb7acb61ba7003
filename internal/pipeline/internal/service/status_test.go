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
	"sync"
	"testing"

	"github.com/ecodeclub/recruit/internal/job"
	jobmocks "github.com/ecodeclub/recruit/internal/job/mocks"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	repomocks "github.com/ecodeclub/recruit/internal/pipeline/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// recordNotifier 记录收到的通知
type recordNotifier struct {
	mu          sync.Mutex
	statuses    []StatusMessage
	invitations []InvitationMessage
}

func (r *recordNotifier) StatusChanged(_ context.Context, msg StatusMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, msg)
}

func (r *recordNotifier) InterviewInvitation(_ context.Context, msg InvitationMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invitations = append(r.invitations, msg)
}

func TestStatusService_SetStatus(t *testing.T) {
	app := domain.Application{
		Id:           1,
		JobId:        11,
		Status:       domain.StatusPendingOffer,
		ContactEmail: "tom@example.com",
		Candidate:    domain.Candidate{Id: 2, FullName: "Tom", Email: "old@example.com"},
	}
	testCases := []struct {
		name   string
		mock   func(ctrl *gomock.Controller) (repository.ApplicationRepository, job.Service)
		id     int64
		status string

		wantErr      error
		wantNotified []StatusMessage
	}{
		{
			name: "录用并通知候选人",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, job.Service) {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				jobSvc := jobmocks.NewMockService(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(app, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.StatusHired).Return(nil)
				jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(job.Job{Id: 11, Title: "Go 工程师"}, nil)
				return repo, jobSvc
			},
			id:     1,
			status: "hired",
			wantNotified: []StatusMessage{
				{To: "tom@example.com", CandidateName: "Tom", JobTitle: "Go 工程师", Status: domain.StatusHired},
			},
		},
		{
			name: "别名归一后写入",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, job.Service) {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(app, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.StatusWaitlisted).Return(nil)
				return repo, jobmocks.NewMockService(ctrl)
			},
			id:     1,
			status: " waitlist ",
		},
		{
			name: "拿不到职位也通知",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, job.Service) {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				jobSvc := jobmocks.NewMockService(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(app, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.StatusRejected).Return(nil)
				jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(job.Job{}, job.ErrJobNotFound)
				return repo, jobSvc
			},
			id:     1,
			status: "Rejected",
			wantNotified: []StatusMessage{
				{To: "tom@example.com", CandidateName: "Tom", Status: domain.StatusRejected},
			},
		},
		{
			name: "状态没变什么也不做",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, job.Service) {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(app, nil)
				return repo, jobmocks.NewMockService(ctrl)
			},
			id:     1,
			status: "pending-offer",
		},
		{
			name: "未知状态",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, job.Service) {
				return repomocks.NewMockApplicationRepository(ctrl), jobmocks.NewMockService(ctrl)
			},
			id:      1,
			status:  "ARCHIVED",
			wantErr: ErrInvalidStatus,
		},
		{
			name: "不能直接改成面试中",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, job.Service) {
				return repomocks.NewMockApplicationRepository(ctrl), jobmocks.NewMockService(ctrl)
			},
			id:      1,
			status:  "interviewing",
			wantErr: ErrUseScheduler,
		},
		{
			name: "投递不存在",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, job.Service) {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(9)).Return(domain.Application{}, repository.ErrRecordNotFound)
				return repo, jobmocks.NewMockService(ctrl)
			},
			id:      9,
			status:  "HIRED",
			wantErr: ErrApplicationNotFound,
		},
		{
			name: "更新失败不通知",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, job.Service) {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(app, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.StatusHired).Return(errors.New("db error"))
				return repo, jobmocks.NewMockService(ctrl)
			},
			id:      1,
			status:  "HIRED",
			wantErr: errors.New("db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, jobSvc := tc.mock(ctrl)
			notifier := &recordNotifier{}
			svc := NewStatusService(repo, jobSvc, notifier)
			err := svc.SetStatus(context.Background(), tc.id, tc.status)
			assertErr(t, tc.wantErr, err)
			assert.Equal(t, tc.wantNotified, notifier.statuses)
		})
	}
}

// assertErr 哨兵错误用 errors.Is，其他的比较错误信息
func assertErr(t *testing.T, want, got error) {
	t.Helper()
	if want == nil {
		assert.NoError(t, got)
		return
	}
	if errors.Is(got, want) {
		return
	}
	assert.EqualError(t, got, want.Error())
}
