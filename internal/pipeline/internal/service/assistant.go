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
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/recruit/internal/email"
	"github.com/ecodeclub/recruit/internal/job"
	"github.com/ecodeclub/recruit/internal/llm"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// AssistantService 给 HR 和面试官用的大模型辅助功能。
// 生成的都是草稿，HR 看过、改过之后再通过 SendReviewed 发出去
type AssistantService interface {
	// InterviewOpening 面试邀请邮件开头的两三句话，大模型不可用时返回固定话术
	InterviewOpening(ctx context.Context, applicationId int64) (string, error)
	// RejectionDraft 整封拒信的 HTML 正文，大模型不可用时返回固定模板
	RejectionDraft(ctx context.Context, req RejectionDraftRequest) (string, error)
	SendReviewed(ctx context.Context, req ReviewedMail) error
	// JudgeAnswer 按 10 分制评价候选人对某个面试问题的回答
	JudgeAnswer(ctx context.Context, question, answer string) (domain.AnswerJudgement, error)
}

type RejectionDraftRequest struct {
	ApplicationId int64
	Reasons       []string
	Note          string
}

// ReviewedMail 收件人固定是投递里的候选人邮箱
type ReviewedMail struct {
	ApplicationId int64
	Subject       string
	// Body HTML 正文，原样发送
	Body string
}

const defaultRejectReason = "简历与岗位当前的要求不够匹配"

var fallbackRejectionTmpl = template.Must(template.New("fallbackRejection").Parse(
	`<p><strong>{{.CandidateName}}</strong> 您好：</p>` +
		`<p>感谢您投递【{{.JobTitle}}】岗位，也感谢您在整个流程中投入的时间。</p>` +
		`<p>经过综合评估，我们很遗憾这次无法与您继续推进。这并不代表对您能力的否定，欢迎您关注我们之后发布的其他岗位。</p>` +
		`<p>祝您求职顺利！</p><p>此致<br/>人力资源部</p>`))

type assistantService struct {
	appRepo   repository.ApplicationRepository
	jobSvc    job.Service
	client    email.Service
	llmClient llm.Client
	logger    *elog.Component
}

func NewAssistantService(appRepo repository.ApplicationRepository,
	jobSvc job.Service,
	client email.Service,
	llmClient llm.Client) AssistantService {
	return &assistantService{
		appRepo:   appRepo,
		jobSvc:    jobSvc,
		client:    client,
		llmClient: llmClient,
		logger:    elog.DefaultLogger,
	}
}

func (s *assistantService) InterviewOpening(ctx context.Context, applicationId int64) (string, error) {
	app, j, err := s.load(ctx, applicationId)
	if err != nil {
		return "", err
	}
	prompt := fmt.Sprintf(`请根据候选人的资料，为面试邀请邮件写一段开头。
候选人：%s
应聘岗位：%s
岗位描述：%s
岗位要求：%s

结合岗位称赞候选人具体的优势，语气专业、热情、有针对性。
只输出这一段话（两到三句），不要标题和结尾，不要 markdown。`,
		app.Candidate.FullName, j.Title, j.Description, j.Requirements)
	answer, err := s.llmClient.Complete(ctx, prompt)
	if err == nil {
		if opening := stripFence(answer.Content, ""); opening != "" {
			return opening, nil
		}
		err = llm.ErrEmptyAnswer
	}
	s.logger.Warn("大模型生成面试邀请开头失败，使用固定话术", elog.FieldErr(err), elog.Int64("applicationId", applicationId))
	return fmt.Sprintf("%s 您好，我们对您的简历印象深刻，诚邀您参加【%s】岗位的面试。",
		app.Candidate.FullName, j.Title), nil
}

func (s *assistantService) RejectionDraft(ctx context.Context, req RejectionDraftRequest) (string, error) {
	app, j, err := s.load(ctx, req.ApplicationId)
	if err != nil {
		return "", err
	}
	reasons := slice.FilterMap(req.Reasons, func(idx int, src string) (string, bool) {
		src = strings.TrimSpace(src)
		return src, src != ""
	})
	reason := defaultRejectReason
	if len(reasons) > 0 {
		reason = strings.Join(reasons, "，")
	}
	note := strings.TrimSpace(req.Note)
	if note == "" {
		note = "无"
	}
	prompt := fmt.Sprintf(`请给应聘【%s】岗位的候选人 %s 写一封拒信。
拒绝原因：%s
HR 补充说明：%s

语气礼貌、惋惜，鼓励对方以后再来应聘，绝对不能生硬。
用简单的 HTML 输出正文（只用 <p>、<strong>、<br>），不要 <html>、<head>、<body>，不要 markdown 代码块。
篇幅 200 到 300 字。`, j.Title, app.Candidate.FullName, reason, note)
	answer, err := s.llmClient.Complete(ctx, prompt)
	if err == nil {
		if body := stripFence(answer.Content, "html"); body != "" {
			return body, nil
		}
		err = llm.ErrEmptyAnswer
	}
	s.logger.Warn("大模型生成拒信失败，使用模板", elog.FieldErr(err), elog.Int64("applicationId", req.ApplicationId))
	var buf bytes.Buffer
	err = fallbackRejectionTmpl.Execute(&buf, map[string]string{
		"CandidateName": app.Candidate.FullName,
		"JobTitle":      j.Title,
	})
	if err != nil {
		return "", fmt.Errorf("渲染拒信模板失败: %w", err)
	}
	return buf.String(), nil
}

func (s *assistantService) SendReviewed(ctx context.Context, req ReviewedMail) error {
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Body) == "" {
		return fmt.Errorf("%w: 邮件标题和正文不能为空", ErrInvalidParam)
	}
	app, err := s.findApplication(ctx, req.ApplicationId)
	if err != nil {
		return err
	}
	to := app.RecipientEmail()
	if to == "" {
		return fmt.Errorf("%w: 候选人没有邮箱", ErrInvalidParam)
	}
	err = s.client.SendMail(ctx, email.Mail{To: to, Subject: req.Subject, Body: []byte(req.Body)})
	if err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	return nil
}

type judgeAnswer struct {
	Score      *float64 `json:"score"`
	Assessment string   `json:"assessment"`
}

func (s *assistantService) JudgeAnswer(ctx context.Context, question, answer string) (domain.AnswerJudgement, error) {
	question, answer = strings.TrimSpace(question), strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return domain.AnswerJudgement{}, fmt.Errorf("%w: 问题和回答不能为空", ErrInvalidParam)
	}
	prompt := fmt.Sprintf(`你是一名技术负责人，正在做技术面试。
问题："%s"
候选人回答的要点："%s"

1. 按 10 分制评价回答的准确程度。
2. 简要指出遗漏或错误的地方，不超过三行。

只返回如下 JSON，不要 markdown：
{"score": <1 到 10 的数字>, "assessment": "<不超过三行的评价>"}`, question, answer)
	res, err := s.llmClient.Complete(ctx, prompt)
	if err != nil {
		return domain.AnswerJudgement{}, fmt.Errorf("调用大模型失败: %w", err)
	}
	var ans judgeAnswer
	if err = decodeFirstObject(res.Content, &ans); err != nil {
		return domain.AnswerJudgement{}, err
	}
	if ans.Score == nil {
		return domain.AnswerJudgement{}, fmt.Errorf("%w: 缺少 score", ErrMalformedAnswer)
	}
	return domain.AnswerJudgement{
		Score:      domain.ClampJudgeScore(*ans.Score),
		Assessment: strings.TrimSpace(ans.Assessment),
	}, nil
}

func (s *assistantService) findApplication(ctx context.Context, id int64) (domain.Application, error) {
	app, err := s.appRepo.FindById(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Application{}, fmt.Errorf("%w: id=%d", ErrApplicationNotFound, id)
	}
	return app, err
}

// load 草稿要用到候选人和职位，职位已删除也照样生成
func (s *assistantService) load(ctx context.Context, applicationId int64) (domain.Application, job.Job, error) {
	app, err := s.findApplication(ctx, applicationId)
	if err != nil {
		return domain.Application{}, job.Job{}, err
	}
	j, err := s.jobSvc.Get(ctx, app.JobId)
	if errors.Is(err, job.ErrJobNotFound) {
		return domain.Application{}, job.Job{}, fmt.Errorf("%w: id=%d", ErrJobNotFound, app.JobId)
	}
	if err != nil {
		return domain.Application{}, job.Job{}, err
	}
	return app, j, nil
}
