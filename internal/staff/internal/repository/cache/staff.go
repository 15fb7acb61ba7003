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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/recruit/internal/staff/internal/domain"
	"github.com/pkg/errors"
)

type StaffCache interface {
	Get(ctx context.Context, id int64) (domain.Staff, error)
	Set(ctx context.Context, s domain.Staff) error
}

type StaffECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewStaffECache(c ecache.Cache) StaffCache {
	return &StaffECache{
		cache: &ecache.NamespaceCache{
			Namespace: "staff:",
			C:         c,
		},
		// 角色变更最多延迟这么久生效
		expiration: time.Minute * 5,
	}
}

func (c *StaffECache) Get(ctx context.Context, id int64) (domain.Staff, error) {
	var s domain.Staff
	val := c.cache.Get(ctx, c.key(id))
	if val.Err != nil {
		return s, val.Err
	}
	err := val.JSONScan(&s)
	return s, errors.Wrap(err, "反序列化员工缓存失败")
}

func (c *StaffECache) Set(ctx context.Context, s domain.Staff) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "序列化员工失败")
	}
	return c.cache.Set(ctx, c.key(s.Id), data, c.expiration)
}

func (c *StaffECache) key(id int64) string {
	return fmt.Sprintf("info:%d", id)
}
