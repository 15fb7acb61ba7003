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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound       = gorm.ErrRecordNotFound
	ErrDuplicateApplication = errors.New("候选人已投递过该职位")
	ErrNoStage              = errors.New("没有配置招聘阶段")
)

// ApplicationWithScore 列表查询时带上最新的 AI 评分
type ApplicationWithScore struct {
	Application
	Score *int
}

type ApplicationDAO interface {
	// Create 在一个事务里完成身份解析、查重、保存简历记录和投递记录
	Create(ctx context.Context, in CandidateInput, doc Document, app Application) (Application, Candidate, error)
	// FindCandidate 只读查询，不会绑定账号也不会创建候选人
	FindCandidate(ctx context.Context, uid int64, normalizedEmail string) (Candidate, error)
	ResolveCandidate(ctx context.Context, in CandidateInput) (Candidate, error)
	FindCandidateById(ctx context.Context, id int64) (Candidate, error)
	FindCandidateByUid(ctx context.Context, uid int64) (Candidate, error)
	FindCandidatesByIds(ctx context.Context, ids []int64) ([]Candidate, error)
	FindDocumentById(ctx context.Context, id int64) (Document, error)
	FindById(ctx context.Context, id int64) (Application, error)
	FindByJobAndCandidate(ctx context.Context, jobId, candidateId int64) (Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]ApplicationWithScore, error)
	CountByJob(ctx context.Context, jobId int64) (int64, error)
	FindByCandidate(ctx context.Context, candidateId int64) ([]Application, error)
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (g *GORMApplicationDAO) Create(ctx context.Context, in CandidateInput, doc Document, app Application) (Application, Candidate, error) {
	var candidate Candidate
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var err error
		candidate, err = resolveCandidate(tx, in, now)
		if err != nil {
			return err
		}
		var cnt int64
		err = tx.Model(&Application{}).
			Where("job_id = ? AND candidate_id = ?", app.JobId, candidate.Id).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrDuplicateApplication
		}

		doc.CandidateId = candidate.Id
		doc.Ctime, doc.Utime = now, now
		if err = tx.Create(&doc).Error; err != nil {
			return err
		}

		var stage Stage
		err = tx.Order("sort_order ASC, id ASC").First(&stage).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoStage
		}
		if err != nil {
			return err
		}

		app.CandidateId = candidate.Id
		app.StageId = stage.Id
		app.ResumeDocumentId = doc.Id
		app.AppliedAt, app.LastStatusChangedAt = now, now
		app.Ctime, app.Utime = now, now
		if err = tx.Create(&app).Error; err != nil {
			if isUniqueIndexError(err) {
				return ErrDuplicateApplication
			}
			return err
		}
		return nil
	})
	return app, candidate, err
}

func (g *GORMApplicationDAO) FindCandidate(ctx context.Context, uid int64, normalizedEmail string) (Candidate, error) {
	return findCandidate(g.db.WithContext(ctx), uid, normalizedEmail)
}

func (g *GORMApplicationDAO) ResolveCandidate(ctx context.Context, in CandidateInput) (Candidate, error) {
	var c Candidate
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		c, err = resolveCandidate(tx, in, time.Now().UnixMilli())
		return err
	})
	return c, err
}

func (g *GORMApplicationDAO) FindCandidateById(ctx context.Context, id int64) (Candidate, error) {
	var c Candidate
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *GORMApplicationDAO) FindCandidateByUid(ctx context.Context, uid int64) (Candidate, error) {
	var c Candidate
	err := g.db.WithContext(ctx).Where("uid = ? AND deleted = ?", uid, false).First(&c).Error
	return c, err
}

func (g *GORMApplicationDAO) FindCandidatesByIds(ctx context.Context, ids []int64) ([]Candidate, error) {
	var res []Candidate
	if len(ids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) FindDocumentById(ctx context.Context, id int64) (Document, error) {
	var d Document
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	return d, err
}

func (g *GORMApplicationDAO) FindById(ctx context.Context, id int64) (Application, error) {
	var app Application
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	return app, err
}

func (g *GORMApplicationDAO) FindByJobAndCandidate(ctx context.Context, jobId, candidateId int64) (Application, error) {
	var app Application
	err := g.db.WithContext(ctx).
		Where("job_id = ? AND candidate_id = ?", jobId, candidateId).
		First(&app).Error
	return app, err
}

func (g *GORMApplicationDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	now := time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Application{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":                 status,
			"last_status_changed_at": now,
			"utime":                  now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMApplicationDAO) ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]ApplicationWithScore, error) {
	var res []ApplicationWithScore
	// 每个投递只关联最新的一次评分
	latest := g.db.WithContext(ctx).Model(&AiScore{}).
		Select("MAX(id)").Group("application_id")
	err := g.db.WithContext(ctx).Table("applications AS a").
		Select("a.*, s.score AS score").
		Joins("LEFT JOIN ai_scores AS s ON s.application_id = a.id AND s.id IN (?)", latest).
		Where("a.job_id = ?", jobId).
		Order("s.score IS NULL, s.score DESC, a.applied_at DESC, a.id DESC").
		Offset(offset).Limit(limit).
		Scan(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) CountByJob(ctx context.Context, jobId int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Application{}).
		Where("job_id = ?", jobId).Count(&cnt).Error
	return cnt, err
}

func (g *GORMApplicationDAO) FindByCandidate(ctx context.Context, candidateId int64) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).
		Where("candidate_id = ?", candidateId).
		Order("applied_at DESC, id DESC").
		Find(&res).Error
	return res, err
}

func isUniqueIndexError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}
