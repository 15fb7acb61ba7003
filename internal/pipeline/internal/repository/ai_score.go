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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository/dao"
)

//go:generate mockgen -source=./ai_score.go -package=repomocks -destination=mocks/ai_score.mock.go AiScoreRepository
type AiScoreRepository interface {
	Save(ctx context.Context, s domain.AiScore) (int64, error)
	FindLatest(ctx context.Context, applicationId int64) (domain.AiScore, error)
}

type aiScoreRepository struct {
	dao dao.AiScoreDAO
}

func NewAiScoreRepository(d dao.AiScoreDAO) AiScoreRepository {
	return &aiScoreRepository{dao: d}
}

func (repo *aiScoreRepository) Save(ctx context.Context, s domain.AiScore) (int64, error) {
	return repo.dao.Insert(ctx, dao.AiScore{
		ApplicationId: s.ApplicationId,
		Score:         s.Score,
		Explanation:   s.Explanation,
		MatchedSkills: sqlx.JsonColumn[[]string]{Val: s.MatchedSkills, Valid: len(s.MatchedSkills) != 0},
		MissingSkills: sqlx.JsonColumn[[]string]{Val: s.MissingSkills, Valid: len(s.MissingSkills) != 0},
		Model:         s.Model,
	})
}

func (repo *aiScoreRepository) FindLatest(ctx context.Context, applicationId int64) (domain.AiScore, error) {
	s, err := repo.dao.FindLatest(ctx, applicationId)
	if err != nil {
		return domain.AiScore{}, err
	}
	return domain.AiScore{
		Id:            s.Id,
		ApplicationId: s.ApplicationId,
		Score:         s.Score,
		Explanation:   s.Explanation,
		MatchedSkills: s.MatchedSkills.Val,
		MissingSkills: s.MissingSkills.Val,
		Model:         s.Model,
		Ctime:         s.Ctime,
	}, nil
}
