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
	"strings"
	"testing"

	"github.com/ecodeclub/recruit/internal/job"
	jobmocks "github.com/ecodeclub/recruit/internal/job/mocks"
	"github.com/ecodeclub/recruit/internal/llm"
	llmmocks "github.com/ecodeclub/recruit/internal/llm/mocks"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	repomocks "github.com/ecodeclub/recruit/internal/pipeline/internal/repository/mocks"
	pdfmocks "github.com/ecodeclub/recruit/internal/pkg/pdf/mocks"
	storagemocks "github.com/ecodeclub/recruit/internal/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseScoringAnswer(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    domain.AiScore
		wantErr error
	}{
		{
			name:  "本身就是JSON",
			input: `{"score": 87, "explanation": " 匹配 ", "matchedSkills": ["Go"], "missingSkills": ["K8s"]}`,
			want: domain.AiScore{
				Score:         87,
				Explanation:   "匹配",
				MatchedSkills: []string{"Go"},
				MissingSkills: []string{"K8s"},
			},
		},
		{
			name:  "带代码块",
			input: "```json\n{\"score\": 60.6}\n```",
			want:  domain.AiScore{Score: 61},
		},
		{
			name:  "前后有多余文字",
			input: "评估结果如下：{\"score\": 70, \"explanation\": \"ok\"} 谢谢",
			want:  domain.AiScore{Score: 70, Explanation: "ok"},
		},
		{
			name:  "JSON 后面的说明里也有花括号",
			input: "{\"score\": 80, \"matchedSkills\": [\"Go\", \"MySQL\"]}\n备注：技能集合 {Go, MySQL} 已匹配",
			want:  domain.AiScore{Score: 80, MatchedSkills: []string{"Go", "MySQL"}},
		},
		{
			name:  "代码块后面还有说明",
			input: "```json\n{\"score\": 66}\n```\n以上 {仅供参考}",
			want:  domain.AiScore{Score: 66},
		},
		{
			name:  "超过上限",
			input: `{"score": 150}`,
			want:  domain.AiScore{Score: 100},
		},
		{
			name:  "负分",
			input: `{"score": -3}`,
			want:  domain.AiScore{Score: 0},
		},
		{
			name:    "缺少分数",
			input:   `{"explanation": "无法评估"}`,
			wantErr: ErrMalformedAnswer,
		},
		{
			name:    "不是JSON",
			input:   "我无法评估这份简历",
			wantErr: ErrMalformedAnswer,
		},
		{
			name:    "JSON 不完整",
			input:   `{"score": 80,}`,
			wantErr: ErrMalformedAnswer,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseScoringAnswer(tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuildScoringPrompt(t *testing.T) {
	long := strings.Repeat("简", maxResumeRunes+100)
	prompt := buildScoringPrompt(job.Job{Title: "Go 工程师", Description: "写 Go", Requirements: "三年经验"}, long)
	assert.Contains(t, prompt, "职位名称：Go 工程师")
	assert.Contains(t, prompt, "职位要求：三年经验")
	assert.Equal(t, maxResumeRunes, strings.Count(prompt, "简"))
}

func TestScoringService_Score(t *testing.T) {
	pdfApp := domain.Application{
		Id:     1,
		JobId:  11,
		Resume: domain.Document{StoredRef: "abc.pdf"},
	}
	describable := job.Job{Id: 11, Title: "Go", Description: "写 Go"}
	testCases := []struct {
		name   string
		before func(appRepo *repomocks.MockApplicationRepository, repo *repomocks.MockAiScoreRepository,
			jobSvc *jobmocks.MockService, st *storagemocks.MockStorage,
			extractor *pdfmocks.MockTextExtractor, client *llmmocks.MockClient)

		want    domain.AiScore
		wantErr error
	}{
		{
			name: "评分成功",
			before: func(appRepo *repomocks.MockApplicationRepository, repo *repomocks.MockAiScoreRepository,
				jobSvc *jobmocks.MockService, st *storagemocks.MockStorage,
				extractor *pdfmocks.MockTextExtractor, client *llmmocks.MockClient) {
				appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(pdfApp, nil)
				jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(describable, nil)
				st.EXPECT().Read(gomock.Any(), "abc.pdf").Return([]byte("pdf"), nil)
				extractor.EXPECT().ExtractText(gomock.Any(), []byte("pdf")).Return("五年 Go 经验", nil)
				client.EXPECT().Complete(gomock.Any(), gomock.Any()).
					Return(llm.Answer{Content: `{"score": 88, "explanation": "匹配"}`, Model: "glm-4"}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s domain.AiScore) (int64, error) {
						assert.Equal(t, int64(1), s.ApplicationId)
						assert.Equal(t, 88, s.Score)
						assert.Equal(t, "glm-4", s.Model)
						assert.True(t, s.Ctime > 0)
						return 3, nil
					})
			},
			want: domain.AiScore{Id: 3, ApplicationId: 1, Score: 88, Explanation: "匹配", Model: "glm-4"},
		},
		{
			name: "docx 简历跳过",
			before: func(appRepo *repomocks.MockApplicationRepository, repo *repomocks.MockAiScoreRepository,
				jobSvc *jobmocks.MockService, st *storagemocks.MockStorage,
				extractor *pdfmocks.MockTextExtractor, client *llmmocks.MockClient) {
				appRepo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Application{Id: 1, JobId: 11, Resume: domain.Document{StoredRef: "abc.docx"}}, nil)
			},
			wantErr: ErrScoringSkipped,
		},
		{
			name: "职位没有描述跳过",
			before: func(appRepo *repomocks.MockApplicationRepository, repo *repomocks.MockAiScoreRepository,
				jobSvc *jobmocks.MockService, st *storagemocks.MockStorage,
				extractor *pdfmocks.MockTextExtractor, client *llmmocks.MockClient) {
				appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(pdfApp, nil)
				jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(job.Job{Id: 11, Description: "  "}, nil)
			},
			wantErr: ErrScoringSkipped,
		},
		{
			name: "简历没有文字跳过",
			before: func(appRepo *repomocks.MockApplicationRepository, repo *repomocks.MockAiScoreRepository,
				jobSvc *jobmocks.MockService, st *storagemocks.MockStorage,
				extractor *pdfmocks.MockTextExtractor, client *llmmocks.MockClient) {
				appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(pdfApp, nil)
				jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(describable, nil)
				st.EXPECT().Read(gomock.Any(), "abc.pdf").Return([]byte("pdf"), nil)
				extractor.EXPECT().ExtractText(gomock.Any(), []byte("pdf")).Return(" \n ", nil)
			},
			wantErr: ErrScoringSkipped,
		},
		{
			name: "大模型返回格式不对不保存",
			before: func(appRepo *repomocks.MockApplicationRepository, repo *repomocks.MockAiScoreRepository,
				jobSvc *jobmocks.MockService, st *storagemocks.MockStorage,
				extractor *pdfmocks.MockTextExtractor, client *llmmocks.MockClient) {
				appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(pdfApp, nil)
				jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(describable, nil)
				st.EXPECT().Read(gomock.Any(), "abc.pdf").Return([]byte("pdf"), nil)
				extractor.EXPECT().ExtractText(gomock.Any(), []byte("pdf")).Return("Go", nil)
				client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(llm.Answer{Content: "抱歉"}, nil)
			},
			wantErr: ErrMalformedAnswer,
		},
		{
			name: "大模型调用失败",
			before: func(appRepo *repomocks.MockApplicationRepository, repo *repomocks.MockAiScoreRepository,
				jobSvc *jobmocks.MockService, st *storagemocks.MockStorage,
				extractor *pdfmocks.MockTextExtractor, client *llmmocks.MockClient) {
				appRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(pdfApp, nil)
				jobSvc.EXPECT().Get(gomock.Any(), int64(11)).Return(describable, nil)
				st.EXPECT().Read(gomock.Any(), "abc.pdf").Return([]byte("pdf"), nil)
				extractor.EXPECT().ExtractText(gomock.Any(), []byte("pdf")).Return("Go", nil)
				client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(llm.Answer{}, errors.New("timeout"))
			},
			wantErr: errors.New("timeout"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			appRepo := repomocks.NewMockApplicationRepository(ctrl)
			repo := repomocks.NewMockAiScoreRepository(ctrl)
			jobSvc := jobmocks.NewMockService(ctrl)
			st := storagemocks.NewMockStorage(ctrl)
			extractor := pdfmocks.NewMockTextExtractor(ctrl)
			client := llmmocks.NewMockClient(ctrl)
			tc.before(appRepo, repo, jobSvc, st, extractor, client)

			svc := NewScoringService(appRepo, repo, jobSvc, NewDocumentStore(st, 0), extractor, client)
			got, err := svc.Score(context.Background(), 1)
			assertErr(t, tc.wantErr, err)
			if err != nil {
				return
			}
			require.True(t, got.Ctime > 0)
			got.Ctime = 0
			assert.Equal(t, tc.want, got)
		})
	}
}
