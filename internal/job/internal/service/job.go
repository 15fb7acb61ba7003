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

	"github.com/ecodeclub/recruit/internal/job/internal/domain"
	"github.com/ecodeclub/recruit/internal/job/internal/repository"
)

var ErrJobNotFound = repository.ErrJobNotFound

//go:generate mockgen -source=./job.go -package=jobmocks -destination=../../mocks/job.mock.go Service
type Service interface {
	// Get 已删除的职位也会返回，由调用方通过 Available 判断。
	// 走缓存，删除状态最多有缓存过期时间那么久的延迟
	Get(ctx context.Context, id int64) (domain.Job, error)
	// GetFresh 直接读库并刷新缓存，投递前校验职位是否还能投递用这个
	GetFresh(ctx context.Context, id int64) (domain.Job, error)
}

type service struct {
	repo repository.JobRepository
}

func NewService(repo repository.JobRepository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) GetFresh(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.FindFresh(ctx, id)
}
