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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/recruit/internal/staff"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CtxStaffKey 校验通过后当前员工放在 gin.Context 里
const CtxStaffKey = "_staff"

type CheckRoleMiddlewareBuilder struct {
	svc        staff.Service
	logger     *elog.Component
	getSession func(ctx *ginx.Context) (session.Session, error)
}

func NewCheckRoleMiddlewareBuilder(svc staff.Service) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		svc:        svc,
		logger:     elog.DefaultLogger,
		getSession: session.Get,
	}
}

// Build 拥有 roles 中任意一个角色即可访问
func (c *CheckRoleMiddlewareBuilder) Build(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.getSession(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		uid := sess.Claims().Uid
		st, err := c.svc.Get(ctx, uid)
		if err != nil {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Warn("查询员工信息失败", elog.FieldErr(err), elog.Int64("uid", uid))
			return
		}
		if !st.HasAnyRole(roles...) {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("没有访问权限", elog.Int64("uid", uid), elog.Any("roles", roles))
			return
		}
		ctx.Set(CtxStaffKey, st)
	}
}
