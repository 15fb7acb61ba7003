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
	"database/sql"

	"github.com/ecodeclub/ekit/sqlx"
)

type Candidate struct {
	Id  int64         `gorm:"primaryKey,autoIncrement"`
	Uid sql.NullInt64 `gorm:"unique;comment:关联的登录账号，设置后不再清除"`
	// Email 原始邮箱，NormalizedEmail 去空格转大写后用于查重
	Email           string `gorm:"type:varchar(256);not null"`
	NormalizedEmail string `gorm:"type:varchar(256);not null;uniqueIndex:uniq_normalized_email"`
	FullName        string `gorm:"type:varchar(256)"`
	Phone           string `gorm:"type:varchar(64)"`
	Source          string `gorm:"type:varchar(64);comment:候选人来源"`
	Deleted         bool   `gorm:"not null;default:false;uniqueIndex:uniq_normalized_email"`
	Ctime           int64
	Utime           int64
}

type Document struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	CandidateId  int64  `gorm:"not null;index:idx_candidate_id"`
	DocType      string `gorm:"type:varchar(32);not null"`
	Provider     string `gorm:"type:varchar(32);not null;comment:存储渠道"`
	OriginalName string `gorm:"type:varchar(512);comment:用户上传时的文件名，只用于展示"`
	StoredRef    string `gorm:"type:varchar(512);not null;comment:存储生成的文件名"`
	MimeType     string `gorm:"type:varchar(128)"`
	Size         int64
	Ctime        int64
	Utime        int64
}

type Stage struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	Name      string `gorm:"type:varchar(128);not null"`
	SortOrder int    `gorm:"not null;index:idx_sort_order"`
	Ctime     int64
	Utime     int64
}

type Application struct {
	Id                  int64  `gorm:"primaryKey,autoIncrement"`
	JobId               int64  `gorm:"not null;uniqueIndex:uniq_job_candidate"`
	CandidateId         int64  `gorm:"not null;uniqueIndex:uniq_job_candidate;index:idx_candidate_id"`
	StageId             int64  `gorm:"not null"`
	Status              string `gorm:"type:varchar(32);not null"`
	AppliedAt           int64  `gorm:"not null"`
	LastStatusChangedAt int64  `gorm:"not null"`
	ContactEmail        string `gorm:"type:varchar(256);comment:投递时的邮箱快照"`
	ContactPhone        string `gorm:"type:varchar(64);comment:投递时的电话快照"`
	ResumeDocumentId    int64
	Introduction        string `gorm:"type:text"`
	Ctime               int64
	Utime               int64
}

type Interview struct {
	Id            int64  `gorm:"primaryKey,autoIncrement"`
	ApplicationId int64  `gorm:"not null;index:idx_application_id"`
	InterviewerId int64  `gorm:"not null;index:idx_interviewer_start,priority:1"`
	Title         string `gorm:"type:varchar(256)"`
	StartAt       int64  `gorm:"not null;index:idx_interviewer_start,priority:2"`
	EndAt         int64  `gorm:"not null"`
	Location      string `gorm:"type:varchar(512)"`
	MeetingLink   string `gorm:"type:varchar(1024)"`
	Status        string `gorm:"type:varchar(32);not null"`
	CreatedBy     int64
	Ctime         int64
	Utime         int64
}

type Evaluation struct {
	Id            int64                           `gorm:"primaryKey,autoIncrement"`
	InterviewId   int64                           `gorm:"not null;uniqueIndex:uniq_interview_id"`
	InterviewerId int64                           `gorm:"not null"`
	Score         int                             `gorm:"not null"`
	Comment       string                          `gorm:"type:text"`
	Result        string                          `gorm:"type:varchar(32);not null"`
	Details       sqlx.JsonColumn[map[string]any] `gorm:"type:json;comment:各维度评分"`
	Ctime         int64
	Utime         int64
}

type AiScore struct {
	Id            int64                     `gorm:"primaryKey,autoIncrement"`
	ApplicationId int64                     `gorm:"not null;index:idx_application_id"`
	Score         int                       `gorm:"not null"`
	Explanation   string                    `gorm:"type:text"`
	MatchedSkills sqlx.JsonColumn[[]string] `gorm:"type:text"`
	MissingSkills sqlx.JsonColumn[[]string] `gorm:"type:text"`
	Model         string                    `gorm:"type:varchar(128)"`
	Ctime         int64
}
