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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/recruit/internal/staff"
	staffmocks "github.com/ecodeclub/recruit/internal/staff/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCheckRoleMiddlewareBuilder_Build(t *testing.T) {
	const uid int64 = 1001
	loggedIn := func(ctx *ginx.Context) (session.Session, error) {
		return session.NewMemorySession(session.Claims{Uid: uid}), nil
	}
	testCases := []struct {
		name       string
		mock       func(ctrl *gomock.Controller) staff.Service
		getSession func(ctx *ginx.Context) (session.Session, error)
		roles      []string
		wantCode   int
		wantStaff  bool
	}{
		{
			name: "未登录",
			mock: func(ctrl *gomock.Controller) staff.Service {
				return staffmocks.NewMockService(ctrl)
			},
			getSession: func(ctx *ginx.Context) (session.Session, error) {
				return nil, errors.New("mock no session")
			},
			roles:    []string{staff.RoleHR},
			wantCode: http.StatusForbidden,
		},
		{
			name: "不是员工",
			mock: func(ctrl *gomock.Controller) staff.Service {
				svc := staffmocks.NewMockService(ctrl)
				svc.EXPECT().Get(gomock.Any(), uid).Return(staff.Staff{}, staff.ErrStaffNotFound)
				return svc
			},
			getSession: loggedIn,
			roles:      []string{staff.RoleHR},
			wantCode:   http.StatusForbidden,
		},
		{
			name: "角色不匹配",
			mock: func(ctrl *gomock.Controller) staff.Service {
				svc := staffmocks.NewMockService(ctrl)
				svc.EXPECT().Get(gomock.Any(), uid).Return(staff.Staff{
					Id:    uid,
					Roles: []string{staff.RoleInterviewer},
				}, nil)
				return svc
			},
			getSession: loggedIn,
			roles:      []string{staff.RoleHR, staff.RoleAdmin},
			wantCode:   http.StatusForbidden,
		},
		{
			name: "拥有其中一个角色",
			mock: func(ctrl *gomock.Controller) staff.Service {
				svc := staffmocks.NewMockService(ctrl)
				svc.EXPECT().Get(gomock.Any(), uid).Return(staff.Staff{
					Id:    uid,
					Roles: []string{staff.RoleAdmin},
				}, nil)
				return svc
			},
			getSession: loggedIn,
			roles:      []string{staff.RoleHR, staff.RoleAdmin},
			wantCode:   http.StatusOK,
			wantStaff:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			builder := NewCheckRoleMiddlewareBuilder(tc.mock(ctrl))
			builder.getSession = tc.getSession
			builder.Build(tc.roles...)(c)
			assert.Equal(t, tc.wantCode, c.Writer.Status())
			_, ok := c.Get(CtxStaffKey)
			assert.Equal(t, tc.wantStaff, ok)
		})
	}
}
