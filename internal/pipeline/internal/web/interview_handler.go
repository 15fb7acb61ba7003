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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/service"
	"github.com/ecodeclub/recruit/internal/pkg/middleware"
	"github.com/ecodeclub/recruit/internal/staff"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &InterviewHandler{}

// InterviewHandler 面试安排和面试评价
type InterviewHandler struct {
	svc    service.InterviewService
	evaSvc service.EvaluationService
	roles  *middleware.CheckRoleMiddlewareBuilder
}

func NewInterviewHandler(svc service.InterviewService,
	evaSvc service.EvaluationService,
	roles *middleware.CheckRoleMiddlewareBuilder) *InterviewHandler {
	return &InterviewHandler{svc: svc, evaSvc: evaSvc, roles: roles}
}

func (h *InterviewHandler) PublicRoutes(_ *gin.Engine) {}

func (h *InterviewHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/interviews")
	hr := g.Group("", h.roles.Build(staff.RoleHR, staff.RoleAdmin))
	hr.POST("/schedule", ginx.BS[ScheduleReq](h.Schedule))
	hr.POST("/cancel", ginx.B[InterviewIdReq](h.Cancel))

	all := g.Group("", h.roles.Build(staff.RoleHR, staff.RoleAdmin, staff.RoleInterviewer))
	all.POST("/latest", ginx.B[ApplicationIdReq](h.Latest))
	all.POST("/evaluation/detail", ginx.B[InterviewIdReq](h.EvaluationDetail))

	interviewer := g.Group("", h.roles.Build(staff.RoleInterviewer))
	interviewer.POST("/mine", ginx.BS[Page](h.Mine))
	interviewer.POST("/evaluation/submit", ginx.BS[EvaluationReq](h.Evaluate))
}

func (h *InterviewHandler) Schedule(ctx *ginx.Context, req ScheduleReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Schedule(ctx, service.ScheduleRequest{
		ApplicationId: req.ApplicationId,
		InterviewerId: req.InterviewerId,
		Title:         req.Title,
		StartAt:       req.StartAt,
		EndAt:         req.EndAt,
		Location:      req.Location,
		MeetingLink:   req.MeetingLink,
		ScheduledBy:   sess.Claims().Uid,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *InterviewHandler) Cancel(ctx *ginx.Context, req InterviewIdReq) (ginx.Result, error) {
	if err := h.svc.Cancel(ctx, req.InterviewId); err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *InterviewHandler) Latest(ctx *ginx.Context, req ApplicationIdReq) (ginx.Result, error) {
	iv, err := h.svc.LatestByApplication(ctx, req.ApplicationId)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newInterview(iv)}, nil
}

func (h *InterviewHandler) Mine(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	items, total, err := h.svc.MySchedule(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Interview]{
			List: slice.Map(items, func(idx int, src service.ScheduleItem) Interview {
				res := newInterview(src.Interview)
				res.State = string(src.State)
				return res
			}),
			Total: int(total),
		},
	}, nil
}

// Evaluate 评价人就是当前登录的面试官
func (h *InterviewHandler) Evaluate(ctx *ginx.Context, req EvaluationReq, sess session.Session) (ginx.Result, error) {
	id, err := h.evaSvc.Record(ctx, service.EvaluationRequest{
		InterviewId:   req.InterviewId,
		InterviewerId: sess.Claims().Uid,
		Score:         req.Score,
		Comment:       req.Comment,
		Result:        req.Result,
		Details:       req.Details,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *InterviewHandler) EvaluationDetail(ctx *ginx.Context, req InterviewIdReq) (ginx.Result, error) {
	eva, err := h.evaSvc.FindByInterview(ctx, req.InterviewId)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: Evaluation{
		Id:            eva.Id,
		InterviewId:   eva.InterviewId,
		InterviewerId: eva.InterviewerId,
		Score:         eva.Score,
		Comment:       eva.Comment,
		Result:        eva.Result.String(),
		Details:       eva.Details,
		Ctime:         eva.Ctime,
	}}, nil
}
