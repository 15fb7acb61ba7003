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

package errs

var (
	SystemError     = ErrorCode{Code: 521001, Msg: "系统错误"}
	InvalidParams   = ErrorCode{Code: 521002, Msg: "参数错误"}
	Duplicated      = ErrorCode{Code: 521003, Msg: "数据冲突"}
	NotFound        = ErrorCode{Code: 521004, Msg: "数据不存在"}
	InterviewerRole = ErrorCode{Code: 521005, Msg: "该用户不是面试官"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
