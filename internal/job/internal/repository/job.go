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

	"github.com/ecodeclub/recruit/internal/job/internal/domain"
	"github.com/ecodeclub/recruit/internal/job/internal/repository/cache"
	"github.com/ecodeclub/recruit/internal/job/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrJobNotFound = dao.ErrRecordNotFound

type JobRepository interface {
	FindById(ctx context.Context, id int64) (domain.Job, error)
	// FindFresh 跳过缓存
	FindFresh(ctx context.Context, id int64) (domain.Job, error)
}

type CachedJobRepository struct {
	dao    dao.JobDAO
	cache  cache.JobCache
	logger *elog.Component
}

func NewCachedJobRepository(d dao.JobDAO, c cache.JobCache) JobRepository {
	return &CachedJobRepository{dao: d, cache: c, logger: elog.DefaultLogger}
}

func (r *CachedJobRepository) FindById(ctx context.Context, id int64) (domain.Job, error) {
	j, err := r.cache.Get(ctx, id)
	if err == nil {
		return j, nil
	}
	return r.FindFresh(ctx, id)
}

func (r *CachedJobRepository) FindFresh(ctx context.Context, id int64) (domain.Job, error) {
	entity, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	j := r.toDomain(entity)
	if err = r.cache.Set(ctx, j); err != nil {
		r.logger.Warn("回写职位缓存失败", elog.FieldErr(err), elog.Int64("jid", id))
	}
	return j, nil
}

func (r *CachedJobRepository) toDomain(j dao.Job) domain.Job {
	return domain.Job{
		Id:           j.Id,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Deleted:      j.Deleted,
	}
}
