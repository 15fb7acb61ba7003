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
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository/dao"
)

var (
	ErrRecordNotFound       = dao.ErrRecordNotFound
	ErrDuplicateApplication = dao.ErrDuplicateApplication
)

//go:generate mockgen -source=./application.go -package=repomocks -destination=mocks/application.mock.go ApplicationRepository
type ApplicationRepository interface {
	Create(ctx context.Context, sub domain.Submission) (domain.Application, error)
	FindCandidate(ctx context.Context, uid int64, email string) (domain.Candidate, error)
	ResolveCandidate(ctx context.Context, identity domain.Identity) (domain.Candidate, error)
	FindCandidateByUid(ctx context.Context, uid int64) (domain.Candidate, error)
	// FindById 同时加载候选人和简历
	FindById(ctx context.Context, id int64) (domain.Application, error)
	FindByJobAndCandidate(ctx context.Context, jobId, candidateId int64) (domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]domain.ScoredApplication, error)
	CountByJob(ctx context.Context, jobId int64) (int64, error)
	FindByCandidate(ctx context.Context, candidateId int64) ([]domain.Application, error)
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (repo *applicationRepository) Create(ctx context.Context, sub domain.Submission) (domain.Application, error) {
	app, c, err := repo.dao.Create(ctx, repo.toCandidateInput(sub.Identity),
		repo.toDocumentEntity(sub.Resume),
		dao.Application{
			JobId:        sub.JobId,
			Status:       domain.StatusNewApplied.String(),
			ContactEmail: sub.Identity.Email,
			ContactPhone: sub.Identity.Phone,
			Introduction: sub.Introduction,
		})
	if err != nil {
		return domain.Application{}, err
	}
	res := repo.toDomain(app)
	res.Candidate = repo.toCandidateDomain(c)
	res.Resume = sub.Resume
	res.Resume.Id = app.ResumeDocumentId
	res.Resume.CandidateId = c.Id
	return res, nil
}

func (repo *applicationRepository) FindCandidate(ctx context.Context, uid int64, email string) (domain.Candidate, error) {
	c, err := repo.dao.FindCandidate(ctx, uid, domain.NormalizeEmail(email))
	return repo.toCandidateDomain(c), err
}

func (repo *applicationRepository) ResolveCandidate(ctx context.Context, identity domain.Identity) (domain.Candidate, error) {
	c, err := repo.dao.ResolveCandidate(ctx, repo.toCandidateInput(identity))
	return repo.toCandidateDomain(c), err
}

func (repo *applicationRepository) FindCandidateByUid(ctx context.Context, uid int64) (domain.Candidate, error) {
	c, err := repo.dao.FindCandidateByUid(ctx, uid)
	return repo.toCandidateDomain(c), err
}

func (repo *applicationRepository) FindById(ctx context.Context, id int64) (domain.Application, error) {
	app, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	c, err := repo.dao.FindCandidateById(ctx, app.CandidateId)
	if err != nil {
		return domain.Application{}, err
	}
	res := repo.toDomain(app)
	res.Candidate = repo.toCandidateDomain(c)
	if app.ResumeDocumentId == 0 {
		return res, nil
	}
	doc, err := repo.dao.FindDocumentById(ctx, app.ResumeDocumentId)
	if err != nil {
		return domain.Application{}, err
	}
	res.Resume = repo.toDocumentDomain(doc)
	return res, nil
}

func (repo *applicationRepository) FindByJobAndCandidate(ctx context.Context, jobId, candidateId int64) (domain.Application, error) {
	app, err := repo.dao.FindByJobAndCandidate(ctx, jobId, candidateId)
	return repo.toDomain(app), err
}

func (repo *applicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return repo.dao.UpdateStatus(ctx, id, status.String())
}

func (repo *applicationRepository) ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]domain.ScoredApplication, error) {
	apps, err := repo.dao.ListByJob(ctx, jobId, offset, limit)
	if err != nil {
		return nil, err
	}
	candidates, err := repo.dao.FindCandidatesByIds(ctx, slice.Map(apps, func(idx int, src dao.ApplicationWithScore) int64 {
		return src.CandidateId
	}))
	if err != nil {
		return nil, err
	}
	cm := make(map[int64]dao.Candidate, len(candidates))
	for _, c := range candidates {
		cm[c.Id] = c
	}
	return slice.Map(apps, func(idx int, src dao.ApplicationWithScore) domain.ScoredApplication {
		res := domain.ScoredApplication{Application: repo.toDomain(src.Application)}
		if c, ok := cm[src.CandidateId]; ok {
			res.Candidate = repo.toCandidateDomain(c)
		}
		if src.Score != nil {
			res.Score, res.Scored = *src.Score, true
		}
		return res
	}), nil
}

func (repo *applicationRepository) CountByJob(ctx context.Context, jobId int64) (int64, error) {
	return repo.dao.CountByJob(ctx, jobId)
}

func (repo *applicationRepository) FindByCandidate(ctx context.Context, candidateId int64) ([]domain.Application, error) {
	apps, err := repo.dao.FindByCandidate(ctx, candidateId)
	if err != nil {
		return nil, err
	}
	return slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return repo.toDomain(src)
	}), nil
}

func (repo *applicationRepository) toCandidateInput(identity domain.Identity) dao.CandidateInput {
	return dao.CandidateInput{
		Uid:             identity.Uid,
		Email:           identity.Email,
		NormalizedEmail: domain.NormalizeEmail(identity.Email),
		FullName:        identity.FullName,
		Phone:           identity.Phone,
		Source:          domain.SourceCareerSite,
	}
}

func (repo *applicationRepository) toDomain(app dao.Application) domain.Application {
	// 历史数据里的状态也按别名归一
	status, ok := domain.ParseStatus(app.Status)
	if !ok {
		status = domain.Status(app.Status)
	}
	return domain.Application{
		Id:                  app.Id,
		JobId:               app.JobId,
		Candidate:           domain.Candidate{Id: app.CandidateId},
		StageId:             app.StageId,
		Status:              status,
		AppliedAt:           app.AppliedAt,
		LastStatusChangedAt: app.LastStatusChangedAt,
		ContactEmail:        app.ContactEmail,
		ContactPhone:        app.ContactPhone,
		Resume:              domain.Document{Id: app.ResumeDocumentId},
		Introduction:        app.Introduction,
		Ctime:               app.Ctime,
		Utime:               app.Utime,
	}
}

func (repo *applicationRepository) toCandidateDomain(c dao.Candidate) domain.Candidate {
	return domain.Candidate{
		Id:       c.Id,
		Uid:      c.Uid.Int64,
		Email:    c.Email,
		FullName: c.FullName,
		Phone:    c.Phone,
		Source:   c.Source,
		Ctime:    c.Ctime,
		Utime:    c.Utime,
	}
}

func (repo *applicationRepository) toDocumentEntity(d domain.Document) dao.Document {
	return dao.Document{
		Id:           d.Id,
		CandidateId:  d.CandidateId,
		DocType:      d.DocType,
		Provider:     d.Provider,
		OriginalName: d.OriginalName,
		StoredRef:    d.StoredRef,
		MimeType:     d.MimeType,
		Size:         d.Size,
	}
}

func (repo *applicationRepository) toDocumentDomain(d dao.Document) domain.Document {
	return domain.Document{
		Id:           d.Id,
		CandidateId:  d.CandidateId,
		DocType:      d.DocType,
		Provider:     d.Provider,
		OriginalName: d.OriginalName,
		StoredRef:    d.StoredRef,
		MimeType:     d.MimeType,
		Size:         d.Size,
		Ctime:        d.Ctime,
	}
}
