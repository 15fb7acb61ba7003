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
	"gorm.io/gorm"
)

const (
	interviewStatusScheduled = "SCHEDULED"
	interviewStatusCompleted = "COMPLETED"
	interviewStatusCancelled = "CANCELLED"
)

var (
	ErrInterviewClosed  = errors.New("面试已经结束或取消")
	ErrEvaluationExists = errors.New("该面试已经有评价")
)

// EvaluateResult 评价事务提交后的结果
type EvaluateResult struct {
	EvaluationId  int64
	ApplicationId int64
	Status        string
	StatusChanged bool
}

type InterviewDAO interface {
	// Schedule 保存面试并把投递状态改为 status
	Schedule(ctx context.Context, iv Interview, status string) (int64, error)
	FindById(ctx context.Context, id int64) (Interview, error)
	FindLatestByApplication(ctx context.Context, applicationId int64) (Interview, error)
	FindByInterviewer(ctx context.Context, interviewerId int64, offset, limit int) ([]Interview, error)
	CountByInterviewer(ctx context.Context, interviewerId int64) (int64, error)
	Cancel(ctx context.Context, id int64) error
	// Evaluate 保存评价，结束面试，投递状态和 status 不同时才更新
	Evaluate(ctx context.Context, eva Evaluation, status string) (EvaluateResult, error)
	FindEvaluationByInterview(ctx context.Context, interviewId int64) (Evaluation, error)
}

type GORMInterviewDAO struct {
	db *egorm.Component
}

func NewGORMInterviewDAO(db *egorm.Component) InterviewDAO {
	return &GORMInterviewDAO{db: db}
}

func (g *GORMInterviewDAO) Schedule(ctx context.Context, iv Interview, status string) (int64, error) {
	now := time.Now().UnixMilli()
	iv.Status = interviewStatusScheduled
	iv.Ctime, iv.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&iv).Error; err != nil {
			return err
		}
		res := tx.Model(&Application{}).Where("id = ?", iv.ApplicationId).
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
	})
	return iv.Id, err
}

func (g *GORMInterviewDAO) FindById(ctx context.Context, id int64) (Interview, error) {
	var iv Interview
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&iv).Error
	return iv, err
}

func (g *GORMInterviewDAO) FindLatestByApplication(ctx context.Context, applicationId int64) (Interview, error) {
	var iv Interview
	err := g.db.WithContext(ctx).
		Where("application_id = ?", applicationId).
		Order("start_at DESC, id DESC").
		First(&iv).Error
	return iv, err
}

func (g *GORMInterviewDAO) FindByInterviewer(ctx context.Context, interviewerId int64, offset, limit int) ([]Interview, error) {
	var res []Interview
	err := g.db.WithContext(ctx).
		Where("interviewer_id = ?", interviewerId).
		Order("start_at ASC, id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) CountByInterviewer(ctx context.Context, interviewerId int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Interview{}).
		Where("interviewer_id = ?", interviewerId).Count(&cnt).Error
	return cnt, err
}

func (g *GORMInterviewDAO) Cancel(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var iv Interview
		if err := tx.Where("id = ?", id).First(&iv).Error; err != nil {
			return err
		}
		if iv.Status != interviewStatusScheduled {
			return ErrInterviewClosed
		}
		res := tx.Model(&Interview{}).
			Where("id = ? AND status = ?", id, interviewStatusScheduled).
			Updates(map[string]any{
				"status": interviewStatusCancelled,
				"utime":  time.Now().UnixMilli(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInterviewClosed
		}
		return nil
	})
}

func (g *GORMInterviewDAO) Evaluate(ctx context.Context, eva Evaluation, status string) (EvaluateResult, error) {
	var result EvaluateResult
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var iv Interview
		if err := tx.Where("id = ?", eva.InterviewId).First(&iv).Error; err != nil {
			return err
		}
		if iv.Status != interviewStatusScheduled {
			return ErrInterviewClosed
		}

		eva.Ctime, eva.Utime = now, now
		if err := tx.Create(&eva).Error; err != nil {
			if isUniqueIndexError(err) {
				return ErrEvaluationExists
			}
			return err
		}

		res := tx.Model(&Interview{}).
			Where("id = ? AND status = ?", iv.Id, interviewStatusScheduled).
			Updates(map[string]any{
				"status": interviewStatusCompleted,
				"utime":  now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInterviewClosed
		}

		var app Application
		if err := tx.Where("id = ?", iv.ApplicationId).First(&app).Error; err != nil {
			return err
		}
		result = EvaluateResult{
			EvaluationId:  eva.Id,
			ApplicationId: app.Id,
			Status:        status,
		}
		if app.Status == status {
			return nil
		}
		result.StatusChanged = true
		return tx.Model(&Application{}).Where("id = ?", app.Id).
			Updates(map[string]any{
				"status":                 status,
				"last_status_changed_at": now,
				"utime":                  now,
			}).Error
	})
	return result, err
}

func (g *GORMInterviewDAO) FindEvaluationByInterview(ctx context.Context, interviewId int64) (Evaluation, error) {
	var eva Evaluation
	err := g.db.WithContext(ctx).Where("interview_id = ?", interviewId).First(&eva).Error
	return eva, err
}
