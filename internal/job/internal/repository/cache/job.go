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
	"github.com/ecodeclub/recruit/internal/job/internal/domain"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=./job.go -package=cachemocks -destination=mocks/job.mock.go JobCache
type JobCache interface {
	Get(ctx context.Context, id int64) (domain.Job, error)
	Set(ctx context.Context, j domain.Job) error
}

type JobECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewJobECache(c ecache.Cache) JobCache {
	return &JobECache{
		cache: &ecache.NamespaceCache{
			Namespace: "job:",
			C:         c,
		},
		expiration: time.Minute * 15,
	}
}

func (c *JobECache) Get(ctx context.Context, id int64) (domain.Job, error) {
	var j domain.Job
	val := c.cache.Get(ctx, c.key(id))
	if val.Err != nil {
		return j, val.Err
	}
	return j, errors.Wrap(val.JSONScan(&j), "反序列化职位缓存失败")
}

func (c *JobECache) Set(ctx context.Context, j domain.Job) error {
	data, err := json.Marshal(j)
	if err != nil {
		return errors.Wrap(err, "序列化职位失败")
	}
	return c.cache.Set(ctx, c.key(j.Id), data, c.expiration)
}

func (c *JobECache) key(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
