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
	"testing"
	"time"

	"github.com/ecodeclub/recruit/internal/job"
	jobmocks "github.com/ecodeclub/recruit/internal/job/mocks"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/event"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	repomocks "github.com/ecodeclub/recruit/internal/pipeline/internal/repository/mocks"
	pipelinemocks "github.com/ecodeclub/recruit/internal/pipeline/mocks"
	mqxmocks "github.com/ecodeclub/recruit/internal/pkg/mqx/mocks"
	storagemocks "github.com/ecodeclub/recruit/internal/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type submitMocks struct {
	repo     *repomocks.MockApplicationRepository
	jobSvc   *jobmocks.MockService
	storage  *storagemocks.MockStorage
	producer *mqxmocks.MockProducer[event.ApplicationSubmittedEvent]
	scorer   *pipelinemocks.MockScoringService
}

func newSubmitMocks(ctrl *gomock.Controller) submitMocks {
	m := submitMocks{
		repo:     repomocks.NewMockApplicationRepository(ctrl),
		jobSvc:   jobmocks.NewMockService(ctrl),
		storage:  storagemocks.NewMockStorage(ctrl),
		producer: mqxmocks.NewMockProducer[event.ApplicationSubmittedEvent](ctrl),
		scorer:   pipelinemocks.NewMockScoringService(ctrl),
	}
	m.storage.EXPECT().Provider().Return("local").AnyTimes()
	return m
}

func (m submitMocks) service() ApplicationService {
	return NewApplicationService(m.repo, nil, nil, m.jobSvc,
		NewDocumentStore(m.storage, 1024), m.producer, m.scorer)
}

func TestApplicationService_Submit(t *testing.T) {
	pdfContent := []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")
	validReq := func() SubmitRequest {
		return SubmitRequest{
			JobId: 11,
			Identity: domain.Identity{
				Email:    "  Tom@Example.com ",
				FullName: " Tom ",
			},
			Resume:       ResumeFile{Filename: "我的简历.PDF", Content: pdfContent},
			Introduction: "hello",
		}
	}
	testCases := []struct {
		name   string
		before func(m submitMocks)
		req    func() SubmitRequest

		wantId  int64
		wantErr error
	}{
		{
			name: "新候选人投递成功",
			before: func(m submitMocks) {
				m.jobSvc.EXPECT().GetFresh(gomock.Any(), int64(11)).Return(job.Job{Id: 11, Title: "Go"}, nil)
				m.repo.EXPECT().FindCandidate(gomock.Any(), int64(0), "Tom@Example.com").
					Return(domain.Candidate{}, repository.ErrRecordNotFound)
				m.storage.EXPECT().Store(gomock.Any(), pdfContent, ".pdf").Return("abc.pdf", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sub domain.Submission) (domain.Application, error) {
						assert.Equal(t, int64(11), sub.JobId)
						assert.Equal(t, "Tom@Example.com", sub.Identity.Email)
						assert.Equal(t, "Tom", sub.Identity.FullName)
						assert.Equal(t, "abc.pdf", sub.Resume.StoredRef)
						assert.Equal(t, "我的简历.PDF", sub.Resume.OriginalName)
						assert.Equal(t, "local", sub.Resume.Provider)
						assert.Equal(t, domain.DocTypeCV, sub.Resume.DocType)
						assert.Equal(t, int64(len(pdfContent)), sub.Resume.Size)
						return domain.Application{Id: 100, JobId: 11, Candidate: domain.Candidate{Id: 7}}, nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), event.ApplicationSubmittedEvent{
					ApplicationId: 100, JobId: 11, CandidateId: 7,
				}).Return(nil)
			},
			req:    validReq,
			wantId: 100,
		},
		{
			name: "已有候选人投递新职位",
			before: func(m submitMocks) {
				m.jobSvc.EXPECT().GetFresh(gomock.Any(), int64(11)).Return(job.Job{Id: 11}, nil)
				m.repo.EXPECT().FindCandidate(gomock.Any(), int64(0), "Tom@Example.com").
					Return(domain.Candidate{Id: 7}, nil)
				m.repo.EXPECT().FindByJobAndCandidate(gomock.Any(), int64(11), int64(7)).
					Return(domain.Application{}, repository.ErrRecordNotFound)
				m.storage.EXPECT().Store(gomock.Any(), pdfContent, ".pdf").Return("abc.pdf", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.Application{Id: 101, JobId: 11, Candidate: domain.Candidate{Id: 7}}, nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			req:    validReq,
			wantId: 101,
		},
		{
			name: "重复投递在落盘前拒绝",
			before: func(m submitMocks) {
				m.jobSvc.EXPECT().GetFresh(gomock.Any(), int64(11)).Return(job.Job{Id: 11}, nil)
				m.repo.EXPECT().FindCandidate(gomock.Any(), int64(0), "Tom@Example.com").
					Return(domain.Candidate{Id: 7}, nil)
				m.repo.EXPECT().FindByJobAndCandidate(gomock.Any(), int64(11), int64(7)).
					Return(domain.Application{Id: 99}, nil)
			},
			req:     validReq,
			wantErr: ErrDuplicateApplication,
		},
		{
			name: "写库失败删除文件",
			before: func(m submitMocks) {
				m.jobSvc.EXPECT().GetFresh(gomock.Any(), int64(11)).Return(job.Job{Id: 11}, nil)
				m.repo.EXPECT().FindCandidate(gomock.Any(), int64(0), "Tom@Example.com").
					Return(domain.Candidate{}, repository.ErrRecordNotFound)
				m.storage.EXPECT().Store(gomock.Any(), pdfContent, ".pdf").Return("abc.pdf", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.Application{}, repository.ErrDuplicateApplication)
				m.storage.EXPECT().Delete(gomock.Any(), "abc.pdf").Return(nil)
			},
			req:     validReq,
			wantErr: ErrDuplicateApplication,
		},
		{
			name:   "邮箱为空",
			before: func(m submitMocks) {},
			req: func() SubmitRequest {
				req := validReq()
				req.Identity.Email = "   "
				return req
			},
			wantErr: ErrInvalidParam,
		},
		{
			name:   "不支持的文件类型",
			before: func(m submitMocks) {},
			req: func() SubmitRequest {
				req := validReq()
				req.Resume.Filename = "resume.exe"
				return req
			},
			wantErr: ErrInvalidFile,
		},
		{
			name:   "文件超过上限",
			before: func(m submitMocks) {},
			req: func() SubmitRequest {
				req := validReq()
				req.Resume.Content = make([]byte, 1025)
				return req
			},
			wantErr: ErrInvalidFile,
		},
		{
			name:   "空文件",
			before: func(m submitMocks) {},
			req: func() SubmitRequest {
				req := validReq()
				req.Resume.Content = nil
				return req
			},
			wantErr: ErrInvalidFile,
		},
		{
			name: "职位不存在",
			before: func(m submitMocks) {
				m.jobSvc.EXPECT().GetFresh(gomock.Any(), int64(11)).Return(job.Job{}, job.ErrJobNotFound)
			},
			req:     validReq,
			wantErr: ErrJobNotFound,
		},
		{
			name: "职位已下线",
			before: func(m submitMocks) {
				m.jobSvc.EXPECT().GetFresh(gomock.Any(), int64(11)).Return(job.Job{Id: 11, Deleted: true}, nil)
			},
			req:     validReq,
			wantErr: ErrJobNotFound,
		},
		{
			name: "保存文件失败",
			before: func(m submitMocks) {
				m.jobSvc.EXPECT().GetFresh(gomock.Any(), int64(11)).Return(job.Job{Id: 11}, nil)
				m.repo.EXPECT().FindCandidate(gomock.Any(), int64(0), "Tom@Example.com").
					Return(domain.Candidate{}, repository.ErrRecordNotFound)
				m.storage.EXPECT().Store(gomock.Any(), pdfContent, ".pdf").Return("", errors.New("disk full"))
			},
			req:     validReq,
			wantErr: errors.New("保存简历失败: disk full"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newSubmitMocks(ctrl)
			tc.before(m)
			id, err := m.service().Submit(context.Background(), tc.req())
			assertErr(t, tc.wantErr, err)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

// 消息发不出去时改为后台评分，投递本身仍然成功
func TestApplicationService_SubmitScoringFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newSubmitMocks(ctrl)

	m.jobSvc.EXPECT().GetFresh(gomock.Any(), int64(11)).Return(job.Job{Id: 11}, nil)
	m.repo.EXPECT().FindCandidate(gomock.Any(), int64(5), "tom@example.com").
		Return(domain.Candidate{}, repository.ErrRecordNotFound)
	m.storage.EXPECT().Store(gomock.Any(), gomock.Any(), ".docx").Return("abc.docx", nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(domain.Application{Id: 100, JobId: 11, Candidate: domain.Candidate{Id: 7}}, nil)
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	scored := make(chan struct{})
	m.scorer.EXPECT().Score(gomock.Any(), int64(100)).
		DoAndReturn(func(ctx context.Context, _ int64) (domain.AiScore, error) {
			defer close(scored)
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return domain.AiScore{}, ErrScoringSkipped
		})

	id, err := m.service().Submit(context.Background(), SubmitRequest{
		JobId:    11,
		Identity: domain.Identity{Uid: 5, Email: "tom@example.com"},
		Resume:   ResumeFile{Filename: "cv.docx", Content: []byte("PK\x03\x04")},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), id)
	select {
	case <-scored:
	case <-time.After(time.Second):
		t.Fatal("没有触发后台评分")
	}
}

func TestApplicationService_Mine(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.ApplicationRepository
		want    []domain.Application
		wantErr error
	}{
		{
			name: "没有候选人档案",
			mock: func(ctrl *gomock.Controller) repository.ApplicationRepository {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().FindCandidateByUid(gomock.Any(), int64(5)).
					Return(domain.Candidate{}, repository.ErrRecordNotFound)
				return repo
			},
			want: []domain.Application{},
		},
		{
			name: "带上候选人信息",
			mock: func(ctrl *gomock.Controller) repository.ApplicationRepository {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().FindCandidateByUid(gomock.Any(), int64(5)).
					Return(domain.Candidate{Id: 7, Uid: 5}, nil)
				repo.EXPECT().FindByCandidate(gomock.Any(), int64(7)).
					Return([]domain.Application{{Id: 1}, {Id: 2}}, nil)
				return repo
			},
			want: []domain.Application{
				{Id: 1, Candidate: domain.Candidate{Id: 7, Uid: 5}},
				{Id: 2, Candidate: domain.Candidate{Id: 7, Uid: 5}},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewApplicationService(tc.mock(ctrl), nil, nil, nil, nil, nil, nil)
			apps, err := svc.Mine(context.Background(), 5)
			assertErr(t, tc.wantErr, err)
			assert.Equal(t, tc.want, apps)
		})
	}
}

func TestApplicationService_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockApplicationRepository(ctrl)
	scoreRepo := repomocks.NewMockAiScoreRepository(ctrl)
	ivRepo := repomocks.NewMockInterviewRepository(ctrl)
	jobSvc := jobmocks.NewMockService(ctrl)

	repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Application{Id: 1, JobId: 11}, nil)
	jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(job.Job{}, job.ErrJobNotFound)
	scoreRepo.EXPECT().FindLatest(gomock.Any(), int64(1)).Return(domain.AiScore{Id: 3, Score: 80}, nil)
	ivRepo.EXPECT().FindLatestByApplication(gomock.Any(), int64(1)).
		Return(domain.Interview{}, repository.ErrRecordNotFound)

	svc := NewApplicationService(repo, scoreRepo, ivRepo, jobSvc, nil, nil, nil)
	detail, err := svc.Detail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, ApplicationDetail{
		Application: domain.Application{Id: 1, JobId: 11},
		AiScore:     domain.AiScore{Id: 3, Score: 80},
	}, detail)

	repo.EXPECT().FindById(gomock.Any(), int64(2)).Return(domain.Application{}, repository.ErrRecordNotFound)
	_, err = svc.Detail(context.Background(), 2)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestApplicationService_ListByJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockApplicationRepository(ctrl)
	apps := []domain.ScoredApplication{
		{Application: domain.Application{Id: 2}, Score: 90, Scored: true},
		{Application: domain.Application{Id: 1}},
	}
	repo.EXPECT().ListByJob(gomock.Any(), int64(11), 0, 20).Return(apps, nil)
	repo.EXPECT().CountByJob(gomock.Any(), int64(11)).Return(int64(2), nil)

	svc := NewApplicationService(repo, nil, nil, nil, nil, nil, nil)
	got, total, err := svc.ListByJob(context.Background(), 11, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, apps, got)
	assert.Equal(t, int64(2), total)
}
