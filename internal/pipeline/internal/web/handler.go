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

package web

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/service"
	"github.com/ecodeclub/recruit/internal/pkg/middleware"
	"github.com/ecodeclub/recruit/internal/staff"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

const resumeField = "resume"

type Handler struct {
	svc       service.ApplicationService
	statusSvc service.StatusService
	scorer    service.ScoringService
	roles     *middleware.CheckRoleMiddlewareBuilder
	// maxBytes 读取上传文件的上限，超过的部分不会读进内存
	maxBytes int64
	logger   *elog.Component
}

func NewHandler(svc service.ApplicationService,
	statusSvc service.StatusService,
	scorer service.ScoringService,
	roles *middleware.CheckRoleMiddlewareBuilder,
	maxBytes int64) *Handler {
	if maxBytes <= 0 {
		maxBytes = service.DefaultMaxResumeBytes
	}
	return &Handler{
		svc:       svc,
		statusSvc: statusSvc,
		scorer:    scorer,
		roles:     roles,
		maxBytes:  maxBytes,
		logger:    elog.DefaultLogger,
	}
}

// PublicRoutes 投递不要求登录
func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/applications/apply", ginx.W(h.Apply))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications")
	g.POST("/mine", ginx.S(h.Mine))

	hr := g.Group("", h.roles.Build(staff.RoleHR, staff.RoleAdmin))
	hr.POST("/status", ginx.B[SetStatusReq](h.SetStatus))
	hr.POST("/list", ginx.B[ListByJobReq](h.ListByJob))
	hr.POST("/detail", ginx.B[ApplicationIdReq](h.Detail))
	hr.POST("/rescore", ginx.B[ApplicationIdReq](h.Rescore))
}

// Apply multipart 表单，简历放在 resume 字段
func (h *Handler) Apply(ctx *ginx.Context) (ginx.Result, error) {
	jobId, err := strconv.ParseInt(ctx.PostForm("jobId"), 10, 64)
	if err != nil {
		return invalidParamsResult, nil
	}
	file, err := h.readResume(ctx)
	if err != nil {
		h.logger.Warn("读取简历失败", elog.FieldErr(err))
		return invalidParamsResult, nil
	}
	identity := domain.Identity{
		Email:    ctx.PostForm("email"),
		FullName: ctx.PostForm("fullName"),
		Phone:    ctx.PostForm("phone"),
	}
	// 登录了就关联账号
	if sess, er := session.Get(ctx); er == nil {
		identity.Uid = sess.Claims().Uid
	}
	id, err := h.svc.Submit(ctx, service.SubmitRequest{
		JobId:        jobId,
		Identity:     identity,
		Resume:       file,
		Introduction: ctx.PostForm("introduction"),
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) readResume(ctx *ginx.Context) (service.ResumeFile, error) {
	fh, err := ctx.FormFile(resumeField)
	if err != nil {
		return service.ResumeFile{}, err
	}
	if fh.Size > h.maxBytes {
		return service.ResumeFile{}, fmt.Errorf("文件大小 %d 超过上限 %d", fh.Size, h.maxBytes)
	}
	f, err := fh.Open()
	if err != nil {
		return service.ResumeFile{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		return service.ResumeFile{}, err
	}
	return service.ResumeFile{Filename: fh.Filename, Content: data}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	apps, err := h.svc.Mine(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(apps, func(idx int, src domain.Application) Application {
			return newApplication(src)
		}),
	}, nil
}

func (h *Handler) SetStatus(ctx *ginx.Context, req SetStatusReq) (ginx.Result, error) {
	err := h.statusSvc.SetStatus(ctx, req.ApplicationId, req.Status)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ListByJob(ctx *ginx.Context, req ListByJobReq) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	apps, total, err := h.svc.ListByJob(ctx, req.JobId, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Application]{
			List: slice.Map(apps, func(idx int, src domain.ScoredApplication) Application {
				res := newApplication(src.Application)
				if src.Scored {
					score := src.Score
					res.AiScore = &score
				}
				return res
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req ApplicationIdReq) (ginx.Result, error) {
	detail, err := h.svc.Detail(ctx, req.ApplicationId)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newApplicationDetail(detail)}, nil
}

// Rescore 同步重新评分，用于消息丢失或者评分失败后的补偿
func (h *Handler) Rescore(ctx *ginx.Context, req ApplicationIdReq) (ginx.Result, error) {
	score, err := h.scorer.Score(ctx, req.ApplicationId)
	if errors.Is(err, service.ErrScoringSkipped) {
		return ginx.Result{Code: invalidParamsResult.Code, Msg: err.Error()}, nil
	}
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: AiScore{
		Score:         score.Score,
		Explanation:   score.Explanation,
		MatchedSkills: score.MatchedSkills,
		MissingSkills: score.MissingSkills,
		Model:         score.Model,
		Ctime:         score.Ctime,
	}}, nil
}
