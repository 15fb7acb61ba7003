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
	"testing"

	"github.com/ecodeclub/recruit/internal/job"
	jobmocks "github.com/ecodeclub/recruit/internal/job/mocks"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	repomocks "github.com/ecodeclub/recruit/internal/pipeline/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEvaluationService_Record(t *testing.T) {
	openInterview := domain.Interview{Id: 5, ApplicationId: 1, InterviewerId: 20, Status: domain.InterviewStatusScheduled}
	app := domain.Application{
		Id:        1,
		JobId:     11,
		Status:    domain.StatusRejected,
		Candidate: domain.Candidate{FullName: "Tom", Email: "tom@example.com"},
	}
	testCases := []struct {
		name   string
		before func(repo *repomocks.MockInterviewRepository, appRepo *repomocks.MockApplicationRepository, jobSvc *jobmocks.MockService)
		req    EvaluationRequest

		wantId       int64
		wantErr      error
		wantNotified []StatusMessage
	}{
		{
			name: "通过进入待发 offer",
			before: func(repo *repomocks.MockInterviewRepository, appRepo *repomocks.MockApplicationRepository, jobSvc *jobmocks.MockService) {
				repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(openInterview, nil)
				repo.EXPECT().Evaluate(gomock.Any(), domain.Evaluation{
					InterviewId:   5,
					InterviewerId: 20,
					Score:         90,
					Comment:       "不错",
					Result:        domain.ResultPassed,
					Details:       map[string]any{"coding": float64(5)},
				}, domain.StatusPendingOffer).Return(domain.EvaluationOutcome{
					EvaluationId: 8, ApplicationId: 1, Status: domain.StatusPendingOffer, StatusChanged: true,
				}, nil)
			},
			req: EvaluationRequest{
				InterviewId: 5, Score: 90, Comment: "不错", Result: "passed",
				Details: map[string]any{"coding": float64(5)},
			},
			wantId: 8,
		},
		{
			name: "不通过通知候选人",
			before: func(repo *repomocks.MockInterviewRepository, appRepo *repomocks.MockApplicationRepository, jobSvc *jobmocks.MockService) {
				repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(openInterview, nil)
				repo.EXPECT().Evaluate(gomock.Any(), gomock.Any(), domain.StatusRejected).Return(domain.EvaluationOutcome{
					EvaluationId: 9, ApplicationId: 1, Status: domain.StatusRejected, StatusChanged: true,
				}, nil)
				appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(app, nil)
				jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(job.Job{Id: 11, Title: "Go 工程师"}, nil)
			},
			req:    EvaluationRequest{InterviewId: 5, InterviewerId: 20, Score: 40, Result: "Failed"},
			wantId: 9,
			wantNotified: []StatusMessage{
				{To: "tom@example.com", CandidateName: "Tom", JobTitle: "Go 工程师", Status: domain.StatusRejected},
			},
		},
		{
			name: "已经是拒绝状态不重复通知",
			before: func(repo *repomocks.MockInterviewRepository, appRepo *repomocks.MockApplicationRepository, jobSvc *jobmocks.MockService) {
				repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(openInterview, nil)
				repo.EXPECT().Evaluate(gomock.Any(), gomock.Any(), domain.StatusRejected).Return(domain.EvaluationOutcome{
					EvaluationId: 9, ApplicationId: 1, Status: domain.StatusRejected,
				}, nil)
			},
			req:    EvaluationRequest{InterviewId: 5, Result: "failed"},
			wantId: 9,
		},
		{
			name: "待定进入候补",
			before: func(repo *repomocks.MockInterviewRepository, appRepo *repomocks.MockApplicationRepository, jobSvc *jobmocks.MockService) {
				repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(openInterview, nil)
				repo.EXPECT().Evaluate(gomock.Any(), gomock.Any(), domain.StatusWaitlisted).Return(domain.EvaluationOutcome{
					EvaluationId: 10, ApplicationId: 1, Status: domain.StatusWaitlisted, StatusChanged: true,
				}, nil)
			},
			req:    EvaluationRequest{InterviewId: 5, Result: "CONSIDER"},
			wantId: 10,
		},
		{
			name: "未知结论",
			before: func(repo *repomocks.MockInterviewRepository, appRepo *repomocks.MockApplicationRepository, jobSvc *jobmocks.MockService) {
			},
			req:     EvaluationRequest{InterviewId: 5, Result: "maybe"},
			wantErr: ErrInvalidResult,
		},
		{
			name: "面试已取消",
			before: func(repo *repomocks.MockInterviewRepository, appRepo *repomocks.MockApplicationRepository, jobSvc *jobmocks.MockService) {
				iv := openInterview
				iv.Status = domain.InterviewStatusCancelled
				repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(iv, nil)
			},
			req:     EvaluationRequest{InterviewId: 5, Result: "passed"},
			wantErr: ErrInterviewClosed,
		},
		{
			name: "并发重复评价",
			before: func(repo *repomocks.MockInterviewRepository, appRepo *repomocks.MockApplicationRepository, jobSvc *jobmocks.MockService) {
				repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(openInterview, nil)
				repo.EXPECT().Evaluate(gomock.Any(), gomock.Any(), domain.StatusPendingOffer).
					Return(domain.EvaluationOutcome{}, repository.ErrEvaluationExists)
			},
			req:     EvaluationRequest{InterviewId: 5, Result: "passed"},
			wantErr: ErrEvaluationExists,
		},
		{
			name: "面试不存在",
			before: func(repo *repomocks.MockInterviewRepository, appRepo *repomocks.MockApplicationRepository, jobSvc *jobmocks.MockService) {
				repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(domain.Interview{}, repository.ErrRecordNotFound)
			},
			req:     EvaluationRequest{InterviewId: 5, Result: "passed"},
			wantErr: ErrInterviewNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockInterviewRepository(ctrl)
			appRepo := repomocks.NewMockApplicationRepository(ctrl)
			jobSvc := jobmocks.NewMockService(ctrl)
			tc.before(repo, appRepo, jobSvc)
			notifier := &recordNotifier{}
			svc := NewEvaluationService(repo, appRepo, jobSvc, notifier)
			id, err := svc.Record(context.Background(), tc.req)
			assertErr(t, tc.wantErr, err)
			assert.Equal(t, tc.wantId, id)
			assert.Equal(t, tc.wantNotified, notifier.statuses)
		})
	}
}

func TestEvaluationService_FindByInterview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockInterviewRepository(ctrl)
	repo.EXPECT().FindEvaluationByInterview(gomock.Any(), int64(5)).
		Return(domain.Evaluation{}, repository.ErrRecordNotFound)
	svc := NewEvaluationService(repo, nil, nil, nil)
	_, err := svc.FindByInterview(context.Background(), 5)
	assert.ErrorIs(t, err, ErrEvaluationNotFound)
}
