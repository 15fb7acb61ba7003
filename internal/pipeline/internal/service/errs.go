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
	"errors"

	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/repository"
)

// 参数错误
var (
	ErrInvalidParam  = errors.New("参数错误")
	ErrInvalidFile   = errors.New("简历文件不合法")
	ErrInvalidStatus = errors.New("未知的投递状态")
	ErrInvalidResult = errors.New("未知的面试结论")
	// ErrInterviewerRole 被安排的人没有面试官角色
	ErrInterviewerRole = errors.New("该用户不是面试官")
	// ErrUseScheduler 只能通过安排面试进入面试状态
	ErrUseScheduler = errors.New("请通过安排面试修改为面试状态")
)

// 冲突
var (
	ErrDuplicateApplication = repository.ErrDuplicateApplication
	ErrEvaluationExists     = repository.ErrEvaluationExists
	ErrInterviewClosed      = repository.ErrInterviewClosed
)

// 数据不存在
var (
	ErrJobNotFound         = errors.New("职位不存在")
	ErrApplicationNotFound = errors.New("投递不存在")
	ErrInterviewNotFound   = errors.New("面试不存在")
	ErrInterviewerNotFound = errors.New("面试官不存在")
	ErrCandidateNotFound   = errors.New("候选人不存在")
	ErrEvaluationNotFound  = errors.New("面试评价不存在")
)

var ErrScoringSkipped = domain.ErrScoringSkipped

// IsValidationError 调用方传入的数据有问题
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidParam) ||
		errors.Is(err, ErrInvalidFile) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidResult) ||
		errors.Is(err, ErrInterviewerRole) ||
		errors.Is(err, ErrUseScheduler)
}

func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateApplication) ||
		errors.Is(err, ErrEvaluationExists) ||
		errors.Is(err, ErrInterviewClosed)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrJobNotFound) ||
		errors.Is(err, ErrApplicationNotFound) ||
		errors.Is(err, ErrInterviewNotFound) ||
		errors.Is(err, ErrInterviewerNotFound) ||
		errors.Is(err, ErrCandidateNotFound) ||
		errors.Is(err, ErrEvaluationNotFound)
}
