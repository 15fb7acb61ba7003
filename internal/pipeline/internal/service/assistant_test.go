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

	"github.com/ecodeclub/recruit/internal/email"
	emailmocks "github.com/ecodeclub/recruit/internal/email/mocks"
	"github.com/ecodeclub/recruit/internal/job"
	jobmocks "github.com/ecodeclub/recruit/internal/job/mocks"
	"github.com/ecodeclub/recruit/internal/llm"
	llmmocks "github.com/ecodeclub/recruit/internal/llm/mocks"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	repomocks "github.com/ecodeclub/recruit/internal/pipeline/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type assistantMocks struct {
	appRepo   *repomocks.MockApplicationRepository
	jobSvc    *jobmocks.MockService
	client    *emailmocks.MockService
	llmClient *llmmocks.MockClient
}

func newAssistantMocks(ctrl *gomock.Controller) assistantMocks {
	return assistantMocks{
		appRepo:   repomocks.NewMockApplicationRepository(ctrl),
		jobSvc:    jobmocks.NewMockService(ctrl),
		client:    emailmocks.NewMockService(ctrl),
		llmClient: llmmocks.NewMockClient(ctrl),
	}
}

func (m assistantMocks) svc() AssistantService {
	return NewAssistantService(m.appRepo, m.jobSvc, m.client, m.llmClient)
}

var assistantApp = domain.Application{
	Id:        1,
	JobId:     11,
	Candidate: domain.Candidate{FullName: "张三", Email: "zhangsan@example.com"},
}

func TestAssistantService_InterviewOpening(t *testing.T) {
	goJob := job.Job{Id: 11, Title: "Go 工程师", Description: "写 Go", Requirements: "三年经验"}
	testCases := []struct {
		name   string
		before func(m assistantMocks)

		want    string
		wantErr error
	}{
		{
			name: "大模型生成",
			before: func(m assistantMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(assistantApp, nil)
				m.jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(goJob, nil)
				m.llmClient.EXPECT().Complete(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, prompt string) (llm.Answer, error) {
						assert.Contains(t, prompt, "候选人：张三")
						assert.Contains(t, prompt, "岗位要求：三年经验")
						return llm.Answer{Content: "  张三您好，您在高并发方面的经验让我们印象深刻。\n"}, nil
					})
			},
			want: "张三您好，您在高并发方面的经验让我们印象深刻。",
		},
		{
			name: "大模型失败使用固定话术",
			before: func(m assistantMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(assistantApp, nil)
				m.jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(goJob, nil)
				m.llmClient.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(llm.Answer{}, errors.New("timeout"))
			},
			want: "张三 您好，我们对您的简历印象深刻，诚邀您参加【Go 工程师】岗位的面试。",
		},
		{
			name: "大模型返回空内容使用固定话术",
			before: func(m assistantMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(assistantApp, nil)
				m.jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(goJob, nil)
				m.llmClient.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(llm.Answer{Content: "```\n```"}, nil)
			},
			want: "张三 您好，我们对您的简历印象深刻，诚邀您参加【Go 工程师】岗位的面试。",
		},
		{
			name: "投递不存在",
			before: func(m assistantMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Application{}, repository.ErrRecordNotFound)
			},
			wantErr: ErrApplicationNotFound,
		},
		{
			name: "职位不存在",
			before: func(m assistantMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(assistantApp, nil)
				m.jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(job.Job{}, job.ErrJobNotFound)
			},
			wantErr: ErrJobNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newAssistantMocks(ctrl)
			tc.before(m)
			got, err := m.svc().InterviewOpening(context.Background(), 1)
			assertErr(t, tc.wantErr, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAssistantService_RejectionDraft(t *testing.T) {
	goJob := job.Job{Id: 11, Title: "Go 工程师"}
	testCases := []struct {
		name   string
		before func(m assistantMocks)
		req    RejectionDraftRequest

		wantContains []string
		wantErr      error
	}{
		{
			name: "带原因和备注",
			before: func(m assistantMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(assistantApp, nil)
				m.jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(goJob, nil)
				m.llmClient.EXPECT().Complete(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, prompt string) (llm.Answer, error) {
						assert.Contains(t, prompt, "拒绝原因：缺少分布式经验，期望薪资过高")
						assert.Contains(t, prompt, "HR 补充说明：明年可以再来")
						return llm.Answer{Content: "```html\n<p>张三您好</p>\n```"}, nil
					})
			},
			req: RejectionDraftRequest{
				ApplicationId: 1,
				Reasons:       []string{" 缺少分布式经验 ", "", "期望薪资过高"},
				Note:          "明年可以再来",
			},
			wantContains: []string{"<p>张三您好</p>"},
		},
		{
			name: "没有原因用默认原因",
			before: func(m assistantMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(assistantApp, nil)
				m.jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(goJob, nil)
				m.llmClient.EXPECT().Complete(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, prompt string) (llm.Answer, error) {
						assert.Contains(t, prompt, "拒绝原因："+defaultRejectReason)
						assert.Contains(t, prompt, "HR 补充说明：无")
						return llm.Answer{Content: "<p>ok</p>"}, nil
					})
			},
			req:          RejectionDraftRequest{ApplicationId: 1},
			wantContains: []string{"<p>ok</p>"},
		},
		{
			name: "大模型失败使用模板",
			before: func(m assistantMocks) {
				app := assistantApp
				app.Candidate.FullName = "<b>张三</b>"
				m.appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(app, nil)
				m.jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(goJob, nil)
				m.llmClient.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(llm.Answer{}, errors.New("timeout"))
			},
			req: RejectionDraftRequest{ApplicationId: 1},
			wantContains: []string{
				"<strong>&lt;b&gt;张三&lt;/b&gt;</strong>",
				"【Go 工程师】",
			},
		},
		{
			name: "投递不存在",
			before: func(m assistantMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Application{}, repository.ErrRecordNotFound)
			},
			req:     RejectionDraftRequest{ApplicationId: 1},
			wantErr: ErrApplicationNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newAssistantMocks(ctrl)
			tc.before(m)
			got, err := m.svc().RejectionDraft(context.Background(), tc.req)
			assertErr(t, tc.wantErr, err)
			for _, want := range tc.wantContains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestAssistantService_SendReviewed(t *testing.T) {
	testCases := []struct {
		name   string
		before func(m assistantMocks)
		req    ReviewedMail

		wantErr error
	}{
		{
			name: "发给投递时留下的邮箱",
			before: func(m assistantMocks) {
				app := assistantApp
				app.ContactEmail = "contact@example.com"
				m.appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(app, nil)
				m.client.EXPECT().SendMail(gomock.Any(), email.Mail{
					To:      "contact@example.com",
					Subject: "面试结果通知",
					Body:    []byte("<p>改过的拒信</p>"),
				}).Return(nil)
			},
			req: ReviewedMail{ApplicationId: 1, Subject: "面试结果通知", Body: "<p>改过的拒信</p>"},
		},
		{
			name:    "标题为空",
			before:  func(m assistantMocks) {},
			req:     ReviewedMail{ApplicationId: 1, Subject: " ", Body: "<p>x</p>"},
			wantErr: ErrInvalidParam,
		},
		{
			name:    "正文为空",
			before:  func(m assistantMocks) {},
			req:     ReviewedMail{ApplicationId: 1, Subject: "通知"},
			wantErr: ErrInvalidParam,
		},
		{
			name: "候选人没有邮箱",
			before: func(m assistantMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Application{Id: 1, Candidate: domain.Candidate{FullName: "张三"}}, nil)
			},
			req:     ReviewedMail{ApplicationId: 1, Subject: "通知", Body: "<p>x</p>"},
			wantErr: ErrInvalidParam,
		},
		{
			name: "投递不存在",
			before: func(m assistantMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Application{}, repository.ErrRecordNotFound)
			},
			req:     ReviewedMail{ApplicationId: 1, Subject: "通知", Body: "<p>x</p>"},
			wantErr: ErrApplicationNotFound,
		},
		{
			name: "发送失败",
			before: func(m assistantMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(assistantApp, nil)
				m.client.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
			req:     ReviewedMail{ApplicationId: 1, Subject: "通知", Body: "<p>x</p>"},
			wantErr: errors.New("发送邮件失败: smtp down"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newAssistantMocks(ctrl)
			tc.before(m)
			err := m.svc().SendReviewed(context.Background(), tc.req)
			assertErr(t, tc.wantErr, err)
		})
	}
}

func TestAssistantService_JudgeAnswer(t *testing.T) {
	testCases := []struct {
		name     string
		before   func(m assistantMocks)
		question string
		answer   string

		want    domain.AnswerJudgement
		wantErr error
	}{
		{
			name: "正常评价",
			before: func(m assistantMocks) {
				m.llmClient.EXPECT().Complete(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, prompt string) (llm.Answer, error) {
						assert.Contains(t, prompt, `问题："Go 的 GMP 模型"`)
						return llm.Answer{Content: "```json\n{\"score\": 7.6, \"assessment\": \" 没有提到 work stealing \"}\n```"}, nil
					})
			},
			question: " Go 的 GMP 模型 ",
			answer:   "G 是协程，M 是线程，P 是处理器",
			want:     domain.AnswerJudgement{Score: 8, Assessment: "没有提到 work stealing"},
		},
		{
			name: "超过 10 分",
			before: func(m assistantMocks) {
				m.llmClient.EXPECT().Complete(gomock.Any(), gomock.Any()).
					Return(llm.Answer{Content: `{"score": 12, "assessment": "完美"} 其余 {略}`}, nil)
			},
			question: "q",
			answer:   "a",
			want:     domain.AnswerJudgement{Score: 10, Assessment: "完美"},
		},
		{
			name:     "回答为空",
			before:   func(m assistantMocks) {},
			question: "Go 的 GMP 模型",
			answer:   "  ",
			wantErr:  ErrInvalidParam,
		},
		{
			name: "缺少分数",
			before: func(m assistantMocks) {
				m.llmClient.EXPECT().Complete(gomock.Any(), gomock.Any()).
					Return(llm.Answer{Content: `{"assessment": "无法评价"}`}, nil)
			},
			question: "q",
			answer:   "a",
			wantErr:  ErrMalformedAnswer,
		},
		{
			name: "大模型失败",
			before: func(m assistantMocks) {
				m.llmClient.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(llm.Answer{}, errors.New("timeout"))
			},
			question: "q",
			answer:   "a",
			wantErr:  errors.New("调用大模型失败: timeout"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newAssistantMocks(ctrl)
			tc.before(m)
			got, err := m.svc().JudgeAnswer(context.Background(), tc.question, tc.answer)
			assertErr(t, tc.wantErr, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
