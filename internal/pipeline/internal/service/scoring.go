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
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/recruit/internal/job"
	"github.com/ecodeclub/recruit/internal/llm"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	"github.com/ecodeclub/recruit/internal/pkg/pdf"
)

// 简历太长时只取前面一部分送给大模型
const maxResumeRunes = 12000

var ErrMalformedAnswer = errors.New("不符合预期的大模型响应")

//go:generate mockgen -source=./scoring.go -package=pipelinemocks -destination=../../mocks/scoring.mock.go ScoringService
type ScoringService interface {
	// Score 计算并保存一次评分，不满足条件时返回 ErrScoringSkipped
	Score(ctx context.Context, applicationId int64) (domain.AiScore, error)
}

type scoringService struct {
	appRepo   repository.ApplicationRepository
	repo      repository.AiScoreRepository
	jobSvc    job.Service
	docs      *DocumentStore
	extractor pdf.TextExtractor
	client    llm.Client
}

func NewScoringService(appRepo repository.ApplicationRepository,
	repo repository.AiScoreRepository,
	jobSvc job.Service,
	docs *DocumentStore,
	extractor pdf.TextExtractor,
	client llm.Client) ScoringService {
	return &scoringService{
		appRepo:   appRepo,
		repo:      repo,
		jobSvc:    jobSvc,
		docs:      docs,
		extractor: extractor,
		client:    client,
	}
}

func (s *scoringService) Score(ctx context.Context, applicationId int64) (domain.AiScore, error) {
	app, err := s.appRepo.FindById(ctx, applicationId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.AiScore{}, fmt.Errorf("%w: id=%d", ErrApplicationNotFound, applicationId)
	}
	if err != nil {
		return domain.AiScore{}, err
	}
	if app.Resume.Ext() != ".pdf" {
		return domain.AiScore{}, fmt.Errorf("%w: 只对 pdf 简历评分，当前 %q", ErrScoringSkipped, app.Resume.Ext())
	}
	j, err := s.jobSvc.Get(ctx, app.JobId)
	if errors.Is(err, job.ErrJobNotFound) {
		return domain.AiScore{}, fmt.Errorf("%w: 职位 %d 不存在", ErrScoringSkipped, app.JobId)
	}
	if err != nil {
		return domain.AiScore{}, err
	}
	if !j.Describable() {
		return domain.AiScore{}, fmt.Errorf("%w: 职位 %d 没有描述和要求", ErrScoringSkipped, j.Id)
	}

	data, err := s.docs.Read(ctx, app.Resume)
	if err != nil {
		return domain.AiScore{}, fmt.Errorf("读取简历失败: %w", err)
	}
	text, err := s.extractor.ExtractText(ctx, data)
	if err != nil {
		return domain.AiScore{}, fmt.Errorf("解析简历失败: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return domain.AiScore{}, fmt.Errorf("%w: 简历中没有可识别的文字", ErrScoringSkipped)
	}

	answer, err := s.client.Complete(ctx, buildScoringPrompt(j, text))
	if err != nil {
		return domain.AiScore{}, err
	}
	score, err := parseScoringAnswer(answer.Content)
	if err != nil {
		return domain.AiScore{}, err
	}
	score.ApplicationId = applicationId
	score.Model = answer.Model
	score.Ctime = time.Now().UnixMilli()
	score.Id, err = s.repo.Save(ctx, score)
	return score, err
}

func buildScoringPrompt(j job.Job, resume string) string {
	if r := []rune(resume); len(r) > maxResumeRunes {
		resume = string(r[:maxResumeRunes])
	}
	var sb strings.Builder
	sb.WriteString("你是一名资深招聘专家，请根据职位信息评估候选人简历与职位的匹配程度。\n")
	sb.WriteString("只返回一个 JSON 对象，格式为 ")
	sb.WriteString(`{"score": 0 到 100 的数字, "explanation": "简要说明", "matchedSkills": ["..."], "missingSkills": ["..."]}`)
	sb.WriteString("，不要输出其他内容。\n\n")
	fmt.Fprintf(&sb, "职位名称：%s\n职位描述：%s\n职位要求：%s\n\n", j.Title, j.Description, j.Requirements)
	sb.WriteString("候选人简历：\n")
	sb.WriteString(resume)
	return sb.String()
}

type scoringAnswer struct {
	Score         *float64 `json:"score"`
	Explanation   string   `json:"explanation"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
}

func parseScoringAnswer(content string) (domain.AiScore, error) {
	var ans scoringAnswer
	if err := decodeFirstObject(content, &ans); err != nil {
		return domain.AiScore{}, err
	}
	if ans.Score == nil {
		return domain.AiScore{}, fmt.Errorf("%w: 缺少 score", ErrMalformedAnswer)
	}
	return domain.AiScore{
		Score:         domain.ClampScore(*ans.Score),
		Explanation:   strings.TrimSpace(ans.Explanation),
		MatchedSkills: ans.MatchedSkills,
		MissingSkills: ans.MissingSkills,
	}, nil
}

// decodeFirstObject 去掉 markdown 代码块后，从第一个 { 开始只解码一个 JSON 对象，
// 后面的文字哪怕带花括号也不管
func decodeFirstObject(content string, v any) error {
	content = stripFence(content, "json")
	start := strings.IndexByte(content, '{')
	if start < 0 {
		return fmt.Errorf("%w: %s", ErrMalformedAnswer, content)
	}
	if err := json.NewDecoder(strings.NewReader(content[start:])).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedAnswer, err)
	}
	return nil
}

func stripFence(content, lang string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```"+lang)
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
