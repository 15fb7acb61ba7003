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

import (
	"errors"
	"path/filepath"
	"strings"
)

const (
	SourceCareerSite = "CAREER_SITE"
	DocTypeCV        = "CV"
)

type Candidate struct {
	Id       int64
	Uid      int64
	Email    string
	FullName string
	Phone    string
	Source   string
	Ctime    int64
	Utime    int64
}

// NormalizeEmail 查重用的邮箱
func NormalizeEmail(email string) string {
	return strings.ToUpper(strings.TrimSpace(email))
}

// Identity 投递时提交的身份信息，Uid 为 0 表示未登录
type Identity struct {
	Uid      int64
	Email    string
	FullName string
	Phone    string
}

type Document struct {
	Id           int64
	CandidateId  int64
	DocType      string
	Provider     string
	OriginalName string
	StoredRef    string
	MimeType     string
	Size         int64
	Ctime        int64
}

func (d Document) Ext() string {
	return strings.ToLower(filepath.Ext(d.StoredRef))
}

type Stage struct {
	Id        int64
	Name      string
	SortOrder int
}

type Application struct {
	Id                  int64
	JobId               int64
	Candidate           Candidate
	StageId             int64
	Status              Status
	AppliedAt           int64
	LastStatusChangedAt int64
	// 投递时的联系方式快照，不随候选人资料变化
	ContactEmail string
	ContactPhone string
	Resume       Document
	Introduction string
	Ctime        int64
	Utime        int64
}

// RecipientEmail 优先使用投递时留下的邮箱
func (a Application) RecipientEmail() string {
	if a.ContactEmail != "" {
		return a.ContactEmail
	}
	return a.Candidate.Email
}

// Submission 一次投递需要写入的全部数据
type Submission struct {
	JobId        int64
	Identity     Identity
	Resume       Document
	Introduction string
}

type AiScore struct {
	Id            int64
	ApplicationId int64
	Score         int
	Explanation   string
	MatchedSkills []string
	MissingSkills []string
	Model         string
	Ctime         int64
}

// ClampScore 分数限制在 [0, 100]
func ClampScore(score float64) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return int(score + 0.5)
	}
}

// ScoredApplication 按职位查看投递时使用，Scored 为 false 表示还没有评分
type ScoredApplication struct {
	Application
	Score  int
	Scored bool
}

// ErrScoringSkipped 简历或职位不满足 AI 评分的条件
var ErrScoringSkipped = errors.New("跳过 AI 评分")
