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
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/ecodeclub/recruit/internal/email"
	"github.com/ecodeclub/recruit/internal/job"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
	"github.com/ecodeclub/recruit/internal/pkg/pdf"
	"github.com/ecodeclub/recruit/internal/staff"
	"github.com/gotomicro/ego/core/elog"
)

type OfferService interface {
	// Send 发送录取通知书，成功后投递状态变为 OFFER_SENT
	Send(ctx context.Context, req OfferRequest) error
}

type OfferRequest struct {
	ApplicationId int64
	// EntryTime 预计入职时间，毫秒
	EntryTime int64
	// Salary 前端拼接好，例如 12k～18k
	Salary string
	// CcInterviewer 抄送最近一次面试的面试官
	CcInterviewer bool
	ExtraCc       []string
}

type OfferConfig struct {
	CompanyName string `yaml:"companyName"`
	Template    string `yaml:"template"`
}

type OfferData struct {
	CandidateName string
	CompanyName   string
	JobName       string
	Salary        string
	EntryDate     string
}

type offerService struct {
	appRepo   repository.ApplicationRepository
	ivRepo    repository.InterviewRepository
	jobSvc    job.Service
	staffSvc  staff.Service
	statusSvc StatusService
	client    email.Service
	converter pdf.Converter
	cfg       OfferConfig
	tmpl      *template.Template
	logger    *elog.Component
}

func NewOfferService(appRepo repository.ApplicationRepository,
	ivRepo repository.InterviewRepository,
	jobSvc job.Service,
	staffSvc staff.Service,
	statusSvc StatusService,
	client email.Service,
	converter pdf.Converter,
	cfg OfferConfig) (OfferService, error) {
	tmpl, err := template.New("offer").Parse(cfg.Template)
	if err != nil {
		return nil, fmt.Errorf("解析录取通知书模板失败: %w", err)
	}
	return &offerService{
		appRepo:   appRepo,
		ivRepo:    ivRepo,
		jobSvc:    jobSvc,
		staffSvc:  staffSvc,
		statusSvc: statusSvc,
		client:    client,
		converter: converter,
		cfg:       cfg,
		tmpl:      tmpl,
		logger:    elog.DefaultLogger,
	}, nil
}

func (o *offerService) Send(ctx context.Context, req OfferRequest) error {
	if strings.TrimSpace(req.Salary) == "" || req.EntryTime <= 0 {
		return fmt.Errorf("%w: 薪资和入职时间不能为空", ErrInvalidParam)
	}
	app, err := o.appRepo.FindById(ctx, req.ApplicationId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: id=%d", ErrApplicationNotFound, req.ApplicationId)
	}
	if err != nil {
		return err
	}
	to := app.RecipientEmail()
	if to == "" {
		return fmt.Errorf("%w: 候选人没有邮箱", ErrInvalidParam)
	}
	j, err := o.jobSvc.Get(ctx, app.JobId)
	if err != nil && !errors.Is(err, job.ErrJobNotFound) {
		return err
	}

	body, err := o.render(OfferData{
		CandidateName: app.Candidate.FullName,
		CompanyName:   o.cfg.CompanyName,
		JobName:       j.Title,
		Salary:        req.Salary,
		EntryDate:     time.UnixMilli(req.EntryTime).Format("2006年01月02日"),
	})
	if err != nil {
		return err
	}
	mail := email.Mail{
		From:    o.cfg.CompanyName,
		To:      to,
		Cc:      o.ccList(ctx, req),
		Subject: fmt.Sprintf("【%s】%s岗位录取通知书", o.cfg.CompanyName, j.Title),
		Body:    []byte(body),
	}
	pdfBytes, err := o.converter.ConvertHTMLToPDF(ctx, body, pdf.PaperA4, pdf.WithTitle(mail.Subject))
	if err != nil {
		// 没有附件也照样发
		sideEffectFailures.WithLabelValues(channelPDF).Inc()
		o.logger.Error("生成录取通知书 PDF 失败", elog.FieldErr(err), elog.Int64("applicationId", app.Id))
	} else {
		mail.Attachments = []email.Attachment{{Filename: "岗位录取通知书.pdf", Content: pdfBytes}}
	}
	if err = o.client.SendMail(ctx, mail); err != nil {
		return fmt.Errorf("发送录取通知书失败: %w", err)
	}
	return o.statusSvc.SetStatus(ctx, app.Id, domain.StatusOfferSent.String())
}

func (o *offerService) ccList(ctx context.Context, req OfferRequest) []string {
	cc := make([]string, 0, len(req.ExtraCc)+1)
	for _, addr := range req.ExtraCc {
		if addr = strings.TrimSpace(addr); addr != "" {
			cc = append(cc, addr)
		}
	}
	if !req.CcInterviewer {
		return cc
	}
	iv, err := o.ivRepo.FindLatestByApplication(ctx, req.ApplicationId)
	if err != nil {
		if !errors.Is(err, repository.ErrRecordNotFound) {
			o.logger.Warn("查询面试失败，不抄送面试官", elog.FieldErr(err))
		}
		return cc
	}
	interviewer, err := o.staffSvc.Get(ctx, iv.InterviewerId)
	if err != nil {
		o.logger.Warn("查询面试官失败，不抄送面试官", elog.FieldErr(err), elog.Int64("uid", iv.InterviewerId))
		return cc
	}
	if interviewer.Email != "" {
		cc = append(cc, interviewer.Email)
	}
	return cc
}

func (o *offerService) render(data OfferData) (string, error) {
	var buf bytes.Buffer
	if err := o.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("渲染录取通知书失败: %w", err)
	}
	return buf.String(), nil
}
