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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/errs"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidParamsResult = ginx.Result{
		Code: errs.InvalidParams.Code,
		Msg:  errs.InvalidParams.Msg,
	}
	duplicatedResult = ginx.Result{
		Code: errs.Duplicated.Code,
		Msg:  errs.Duplicated.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.NotFound.Code,
		Msg:  errs.NotFound.Msg,
	}
	interviewerRoleResult = ginx.Result{
		Code: errs.InterviewerRole.Code,
		Msg:  errs.InterviewerRole.Msg,
	}
)

// errorResult 业务错误返回对应的错误码，其余的按系统错误处理
func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInterviewerRole):
		return interviewerRoleResult, nil
	case service.IsValidationError(err):
		return invalidParamsResult, nil
	case service.IsConflictError(err):
		return duplicatedResult, nil
	case service.IsNotFoundError(err):
		return notFoundResult, nil
	default:
		return systemErrorResult, err
	}
}
