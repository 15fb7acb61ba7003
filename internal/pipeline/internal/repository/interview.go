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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository/dao"
)

var (
	ErrInterviewClosed  = dao.ErrInterviewClosed
	ErrEvaluationExists = dao.ErrEvaluationExists
)

//go:generate mockgen -source=./interview.go -package=repomocks -destination=mocks/interview.mock.go InterviewRepository
type InterviewRepository interface {
	Schedule(ctx context.Context, iv domain.Interview) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Interview, error)
	FindLatestByApplication(ctx context.Context, applicationId int64) (domain.Interview, error)
	FindByInterviewer(ctx context.Context, interviewerId int64, offset, limit int) ([]domain.Interview, error)
	CountByInterviewer(ctx context.Context, interviewerId int64) (int64, error)
	Cancel(ctx context.Context, id int64) error
	Evaluate(ctx context.Context, eva domain.Evaluation, next domain.Status) (domain.EvaluationOutcome, error)
	FindEvaluationByInterview(ctx context.Context, interviewId int64) (domain.Evaluation, error)
}

type interviewRepository struct {
	dao dao.InterviewDAO
}

func NewInterviewRepository(d dao.InterviewDAO) InterviewRepository {
	return &interviewRepository{dao: d}
}

func (repo *interviewRepository) Schedule(ctx context.Context, iv domain.Interview) (int64, error) {
	return repo.dao.Schedule(ctx, repo.toEntity(iv), domain.StatusInterviewScheduled.String())
}

func (repo *interviewRepository) FindById(ctx context.Context, id int64) (domain.Interview, error) {
	iv, err := repo.dao.FindById(ctx, id)
	return repo.toDomain(iv), err
}

func (repo *interviewRepository) FindLatestByApplication(ctx context.Context, applicationId int64) (domain.Interview, error) {
	iv, err := repo.dao.FindLatestByApplication(ctx, applicationId)
	return repo.toDomain(iv), err
}

func (repo *interviewRepository) FindByInterviewer(ctx context.Context, interviewerId int64, offset, limit int) ([]domain.Interview, error) {
	ivs, err := repo.dao.FindByInterviewer(ctx, interviewerId, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ivs, func(idx int, src dao.Interview) domain.Interview {
		return repo.toDomain(src)
	}), nil
}

func (repo *interviewRepository) CountByInterviewer(ctx context.Context, interviewerId int64) (int64, error) {
	return repo.dao.CountByInterviewer(ctx, interviewerId)
}

func (repo *interviewRepository) Cancel(ctx context.Context, id int64) error {
	return repo.dao.Cancel(ctx, id)
}

func (repo *interviewRepository) Evaluate(ctx context.Context, eva domain.Evaluation, next domain.Status) (domain.EvaluationOutcome, error) {
	res, err := repo.dao.Evaluate(ctx, dao.Evaluation{
		InterviewId:   eva.InterviewId,
		InterviewerId: eva.InterviewerId,
		Score:         eva.Score,
		Comment:       eva.Comment,
		Result:        eva.Result.String(),
		Details: sqlx.JsonColumn[map[string]any]{
			Val:   eva.Details,
			Valid: len(eva.Details) != 0,
		},
	}, next.String())
	if err != nil {
		return domain.EvaluationOutcome{}, err
	}
	return domain.EvaluationOutcome{
		EvaluationId:  res.EvaluationId,
		ApplicationId: res.ApplicationId,
		Status:        domain.Status(res.Status),
		StatusChanged: res.StatusChanged,
	}, nil
}

func (repo *interviewRepository) FindEvaluationByInterview(ctx context.Context, interviewId int64) (domain.Evaluation, error) {
	eva, err := repo.dao.FindEvaluationByInterview(ctx, interviewId)
	if err != nil {
		return domain.Evaluation{}, err
	}
	return domain.Evaluation{
		Id:            eva.Id,
		InterviewId:   eva.InterviewId,
		InterviewerId: eva.InterviewerId,
		Score:         eva.Score,
		Comment:       eva.Comment,
		Result:        domain.Result(eva.Result),
		Details:       eva.Details.Val,
		Ctime:         eva.Ctime,
	}, nil
}

func (repo *interviewRepository) toEntity(iv domain.Interview) dao.Interview {
	return dao.Interview{
		Id:            iv.Id,
		ApplicationId: iv.ApplicationId,
		InterviewerId: iv.InterviewerId,
		Title:         iv.Title,
		StartAt:       iv.StartAt,
		EndAt:         iv.EndAt,
		Location:      iv.Location,
		MeetingLink:   iv.MeetingLink,
		Status:        iv.Status.String(),
		CreatedBy:     iv.CreatedBy,
	}
}

func (repo *interviewRepository) toDomain(iv dao.Interview) domain.Interview {
	return domain.Interview{
		Id:            iv.Id,
		ApplicationId: iv.ApplicationId,
		InterviewerId: iv.InterviewerId,
		Title:         iv.Title,
		StartAt:       iv.StartAt,
		EndAt:         iv.EndAt,
		Location:      iv.Location,
		MeetingLink:   iv.MeetingLink,
		Status:        domain.InterviewStatus(iv.Status),
		CreatedBy:     iv.CreatedBy,
		Ctime:         iv.Ctime,
		Utime:         iv.Utime,
	}
}
