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

package domain

import "strings"

type Result string

const (
	ResultPassed   Result = "Passed"
	ResultFailed   Result = "Failed"
	ResultConsider Result = "Consider"
)

func ParseResult(s string) (Result, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "passed":
		return ResultPassed, true
	case "failed":
		return ResultFailed, true
	case "consider":
		return ResultConsider, true
	default:
		return "", false
	}
}

func (r Result) String() string {
	return string(r)
}

// NextStatus 面试结论决定投递的下一个状态
func NextStatus(r Result) (Status, bool) {
	switch r {
	case ResultPassed:
		return StatusPendingOffer, true
	case ResultFailed:
		return StatusRejected, true
	case ResultConsider:
		return StatusWaitlisted, true
	default:
		return "", false
	}
}

type Evaluation struct {
	Id            int64
	InterviewId   int64
	InterviewerId int64
	Score         int
	Comment       string
	Result        Result
	// Details 各维度评分，结构由前端决定
	Details map[string]any
	Ctime   int64
}

// EvaluationOutcome 记录评价后的结果
type EvaluationOutcome struct {
	EvaluationId  int64
	ApplicationId int64
	Status        Status
	// StatusChanged 投递状态是否真的发生了变化
	StatusChanged bool
}

// AnswerJudgement 大模型对面试中单个回答的评价，满分 10 分
type AnswerJudgement struct {
	Score      int
	Assessment string
}

// ClampJudgeScore 四舍五入到 [0, 10]
func ClampJudgeScore(score float64) int {
	switch {
	case score < 0:
		return 0
	case score > 10:
		return 10
	default:
		return int(score + 0.5)
	}
}
