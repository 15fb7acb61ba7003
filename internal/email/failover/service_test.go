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

package failover

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/recruit/internal/email"
	emailmocks "github.com/ecodeclub/recruit/internal/email/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_SendMail(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) []email.Service
		wantErr error
	}{
		{
			name: "第一个渠道失败，第二个成功",
			mock: func(ctrl *gomock.Controller) []email.Service {
				first := emailmocks.NewMockService(ctrl)
				second := emailmocks.NewMockService(ctrl)
				// 轮询从下标 1 开始
				second.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("发送失败"))
				first.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)
				return []email.Service{first, second}
			},
		},
		{
			name: "全部失败",
			mock: func(ctrl *gomock.Controller) []email.Service {
				first := emailmocks.NewMockService(ctrl)
				second := emailmocks.NewMockService(ctrl)
				first.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("发送失败"))
				second.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("发送失败"))
				return []email.Service{first, second}
			},
			wantErr: ErrAllFailed,
		},
		{
			name: "超时不再重试",
			mock: func(ctrl *gomock.Controller) []email.Service {
				only := emailmocks.NewMockService(ctrl)
				only.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)
				return []email.Service{only}
			},
			wantErr: context.DeadlineExceeded,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			err := svc.SendMail(context.Background(), email.Mail{To: "a@x.com", Subject: "hi"})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
