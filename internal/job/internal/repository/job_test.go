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

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/recruit/internal/job/internal/domain"
	"github.com/ecodeclub/recruit/internal/job/internal/repository/cache"
	cachemocks "github.com/ecodeclub/recruit/internal/job/internal/repository/cache/mocks"
	"github.com/ecodeclub/recruit/internal/job/internal/repository/dao"
	daomocks "github.com/ecodeclub/recruit/internal/job/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCachedJobRepository(t *testing.T) {
	cached := domain.Job{Id: 1, Title: "Go 后端", Description: "写 Go"}
	deleted := dao.Job{Id: 1, Title: "Go 后端", Description: "写 Go", Deleted: true}
	testCases := []struct {
		name  string
		mock  func(ctrl *gomock.Controller) (dao.JobDAO, cache.JobCache)
		fresh bool

		wantJob domain.Job
		wantErr error
	}{
		{
			name: "命中缓存",
			mock: func(ctrl *gomock.Controller) (dao.JobDAO, cache.JobCache) {
				d := daomocks.NewMockJobDAO(ctrl)
				c := cachemocks.NewMockJobCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1)).Return(cached, nil)
				return d, c
			},
			wantJob: cached,
		},
		{
			name: "缓存未命中读库并回写",
			mock: func(ctrl *gomock.Controller) (dao.JobDAO, cache.JobCache) {
				d := daomocks.NewMockJobDAO(ctrl)
				c := cachemocks.NewMockJobCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1)).Return(domain.Job{}, errors.New("key not exist"))
				d.EXPECT().FindById(gomock.Any(), int64(1)).Return(dao.Job{Id: 1, Title: "Go 后端", Description: "写 Go"}, nil)
				c.EXPECT().Set(gomock.Any(), cached).Return(nil)
				return d, c
			},
			wantJob: cached,
		},
		{
			name: "回写缓存失败不影响结果",
			mock: func(ctrl *gomock.Controller) (dao.JobDAO, cache.JobCache) {
				d := daomocks.NewMockJobDAO(ctrl)
				c := cachemocks.NewMockJobCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1)).Return(domain.Job{}, errors.New("key not exist"))
				d.EXPECT().FindById(gomock.Any(), int64(1)).Return(dao.Job{Id: 1, Title: "Go 后端", Description: "写 Go"}, nil)
				c.EXPECT().Set(gomock.Any(), cached).Return(errors.New("redis 挂了"))
				return d, c
			},
			wantJob: cached,
		},
		{
			name: "职位不存在",
			mock: func(ctrl *gomock.Controller) (dao.JobDAO, cache.JobCache) {
				d := daomocks.NewMockJobDAO(ctrl)
				c := cachemocks.NewMockJobCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1)).Return(domain.Job{}, errors.New("key not exist"))
				d.EXPECT().FindById(gomock.Any(), int64(1)).Return(dao.Job{}, ErrJobNotFound)
				return d, c
			},
			wantErr: ErrJobNotFound,
		},
		{
			// 缓存里还是未删除，库里已经删了
			name: "缓存后职位被删除_直接读库",
			mock: func(ctrl *gomock.Controller) (dao.JobDAO, cache.JobCache) {
				d := daomocks.NewMockJobDAO(ctrl)
				c := cachemocks.NewMockJobCache(ctrl)
				d.EXPECT().FindById(gomock.Any(), int64(1)).Return(deleted, nil)
				c.EXPECT().Set(gomock.Any(), domain.Job{Id: 1, Title: "Go 后端", Description: "写 Go", Deleted: true}).Return(nil)
				return d, c
			},
			fresh:   true,
			wantJob: domain.Job{Id: 1, Title: "Go 后端", Description: "写 Go", Deleted: true},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCachedJobRepository(tc.mock(ctrl))
			var (
				j   domain.Job
				err error
			)
			if tc.fresh {
				j, err = repo.FindFresh(context.Background(), 1)
			} else {
				j, err = repo.FindById(context.Background(), 1)
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantJob, j)
		})
	}
}
