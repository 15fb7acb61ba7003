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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type AiScoreDAO interface {
	Insert(ctx context.Context, s AiScore) (int64, error)
	FindLatest(ctx context.Context, applicationId int64) (AiScore, error)
}

type GORMAiScoreDAO struct {
	db *egorm.Component
}

func NewGORMAiScoreDAO(db *egorm.Component) AiScoreDAO {
	return &GORMAiScoreDAO{db: db}
}

// Insert 每次评分都追加一条，不覆盖历史
func (g *GORMAiScoreDAO) Insert(ctx context.Context, s AiScore) (int64, error) {
	s.Ctime = time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Create(&s).Error
	return s.Id, err
}

func (g *GORMAiScoreDAO) FindLatest(ctx context.Context, applicationId int64) (AiScore, error) {
	var s AiScore
	err := g.db.WithContext(ctx).
		Where("application_id = ?", applicationId).
		Order("id DESC").
		First(&s).Error
	return s, err
}
