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

	"github.com/ecodeclub/recruit/internal/staff/internal/domain"
	"github.com/ecodeclub/recruit/internal/staff/internal/repository/cache"
	"github.com/ecodeclub/recruit/internal/staff/internal/repository/dao"
)

var ErrStaffNotFound = dao.ErrRecordNotFound

type StaffRepository interface {
	FindById(ctx context.Context, id int64) (domain.Staff, error)
}

type CachedStaffRepository struct {
	dao   dao.StaffDAO
	cache cache.StaffCache
}

func NewCachedStaffRepository(d dao.StaffDAO, c cache.StaffCache) StaffRepository {
	return &CachedStaffRepository{dao: d, cache: c}
}

func (r *CachedStaffRepository) FindById(ctx context.Context, id int64) (domain.Staff, error) {
	s, err := r.cache.Get(ctx, id)
	if err == nil {
		return s, nil
	}
	u, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Staff{}, err
	}
	codes, err := r.dao.FindRoleCodes(ctx, id)
	if err != nil {
		return domain.Staff{}, err
	}
	s = domain.Staff{
		Id:    u.Id,
		Name:  u.Name,
		Email: u.Email,
		Roles: codes,
	}
	// 忽略掉这里的错误
	_ = r.cache.Set(ctx, s)
	return s, nil
}
