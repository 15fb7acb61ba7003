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

var _ ginx.Handler = &OfferHandler{}

type OfferHandler struct {
	svc   service.OfferService
	roles *middleware.CheckRoleMiddlewareBuilder
}

func NewOfferHandler(svc service.OfferService, roles *middleware.CheckRoleMiddlewareBuilder) *OfferHandler {
	return &OfferHandler{svc: svc, roles: roles}
}

func (h *OfferHandler) PublicRoutes(_ *gin.Engine) {}

func (h *OfferHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/offer/send", h.roles.Build(staff.RoleHR, staff.RoleAdmin), ginx.B[SendOfferReq](h.Send))
}

// Send 发送录取通知书
// POST /offer/send
func (h *OfferHandler) Send(ctx *ginx.Context, req SendOfferReq) (ginx.Result, error) {
	err := h.svc.Send(ctx, service.OfferRequest{
		ApplicationId: req.ApplicationId,
		EntryTime:     req.EntryTime,
		Salary:        req.Salary,
		CcInterviewer: req.CcInterviewer,
		ExtraCc:       req.Cc,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
