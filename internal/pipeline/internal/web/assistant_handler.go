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

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/service"
	"github.com/ecodeclub/recruit/internal/pkg/middleware"
	"github.com/ecodeclub/recruit/internal/staff"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &AssistantHandler{}

// AssistantHandler 大模型生成草稿和评价面试回答
type AssistantHandler struct {
	svc   service.AssistantService
	roles *middleware.CheckRoleMiddlewareBuilder
}

func NewAssistantHandler(svc service.AssistantService, roles *middleware.CheckRoleMiddlewareBuilder) *AssistantHandler {
	return &AssistantHandler{svc: svc, roles: roles}
}

func (h *AssistantHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AssistantHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/assistant")
	hr := g.Group("", h.roles.Build(staff.RoleHR, staff.RoleAdmin))
	hr.POST("/interview-opening", ginx.B[ApplicationIdReq](h.InterviewOpening))
	hr.POST("/rejection-draft", ginx.B[RejectionDraftReq](h.RejectionDraft))
	hr.POST("/send", ginx.B[SendReviewedReq](h.SendReviewed))

	g.POST("/judge", h.roles.Build(staff.RoleHR, staff.RoleAdmin, staff.RoleInterviewer),
		ginx.B[JudgeAnswerReq](h.Judge))
}

func (h *AssistantHandler) InterviewOpening(ctx *ginx.Context, req ApplicationIdReq) (ginx.Result, error) {
	opening, err := h.svc.InterviewOpening(ctx, req.ApplicationId)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: opening}, nil
}

func (h *AssistantHandler) RejectionDraft(ctx *ginx.Context, req RejectionDraftReq) (ginx.Result, error) {
	body, err := h.svc.RejectionDraft(ctx, service.RejectionDraftRequest{
		ApplicationId: req.ApplicationId,
		Reasons:       req.Reasons,
		Note:          req.Note,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: body}, nil
}

// SendReviewed 发送 HR 审核过的草稿
// POST /assistant/send
func (h *AssistantHandler) SendReviewed(ctx *ginx.Context, req SendReviewedReq) (ginx.Result, error) {
	err := h.svc.SendReviewed(ctx, service.ReviewedMail{
		ApplicationId: req.ApplicationId,
		Subject:       req.Subject,
		Body:          req.Body,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AssistantHandler) Judge(ctx *ginx.Context, req JudgeAnswerReq) (ginx.Result, error) {
	res, err := h.svc.JudgeAnswer(ctx, req.Question, req.Answer)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: AnswerJudgement{Score: res.Score, Assessment: res.Assessment}}, nil
}
