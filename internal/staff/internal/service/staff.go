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

	"github.com/ecodeclub/recruit/internal/staff/internal/domain"
	"github.com/ecodeclub/recruit/internal/staff/internal/repository"
)

var ErrStaffNotFound = repository.ErrStaffNotFound

//go:generate mockgen -source=./staff.go -package=staffmocks -destination=../../mocks/staff.mock.go Service
type Service interface {
	// Get 找不到返回 ErrStaffNotFound
	Get(ctx context.Context, id int64) (domain.Staff, error)
}

type service struct {
	repo repository.StaffRepository
}

func NewService(repo repository.StaffRepository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, id int64) (domain.Staff, error) {
	return s.repo.FindById(ctx, id)
}
