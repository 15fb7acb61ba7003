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
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CandidateInput 投递时提交的身份信息，Uid 为 0 表示未登录
type CandidateInput struct {
	Uid   int64
	Email string
	// NormalizedEmail 由上层归一后传入
	NormalizedEmail string
	FullName        string
	Phone           string
	Source          string
}

// findCandidate 先按账号查，查不到再按邮箱查
func findCandidate(tx *gorm.DB, uid int64, normalizedEmail string) (Candidate, error) {
	var c Candidate
	if uid > 0 {
		err := tx.Where("uid = ? AND deleted = ?", uid, false).First(&c).Error
		if err == nil || !errors.Is(err, gorm.ErrRecordNotFound) {
			return c, err
		}
	}
	err := tx.Where("normalized_email = ? AND deleted = ?", normalizedEmail, false).
		Order("id ASC").First(&c).Error
	return c, err
}

// resolveCandidate 找到或者创建候选人，必须在事务里调用
func resolveCandidate(tx *gorm.DB, in CandidateInput, now int64) (Candidate, error) {
	c, err := findCandidate(tx, in.Uid, in.NormalizedEmail)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c, err = createCandidate(tx, in, now)
		if !isUniqueIndexError(err) {
			return c, err
		}
		// 并发的首次投递已经创建了同一个候选人，当前读拿到对方提交的那一行
		c, err = findCandidate(tx.Clauses(clause.Locking{Strength: "SHARE"}), in.Uid, in.NormalizedEmail)
		if err != nil {
			return Candidate{}, err
		}
	case err != nil:
		return Candidate{}, err
	}

	updates := map[string]any{}
	// 邮箱匹配到一个还没有绑定账号的候选人，绑定到当前账号
	if in.Uid > 0 && !c.Uid.Valid {
		c.Uid = sql.NullInt64{Int64: in.Uid, Valid: true}
		updates["uid"] = c.Uid
	}
	if in.FullName != "" && in.FullName != c.FullName {
		c.FullName = in.FullName
		updates["full_name"] = in.FullName
	}
	if in.Phone != "" && in.Phone != c.Phone {
		c.Phone = in.Phone
		updates["phone"] = in.Phone
	}
	if len(updates) == 0 {
		return c, nil
	}
	c.Utime = now
	updates["utime"] = now
	return c, tx.Model(&Candidate{}).Where("id = ?", c.Id).Updates(updates).Error
}

func createCandidate(tx *gorm.DB, in CandidateInput, now int64) (Candidate, error) {
	c := Candidate{
		Email:           strings.TrimSpace(in.Email),
		NormalizedEmail: in.NormalizedEmail,
		FullName:        in.FullName,
		Phone:           in.Phone,
		Source:          in.Source,
		Ctime:           now,
		Utime:           now,
	}
	if in.Uid > 0 {
		c.Uid = sql.NullInt64{Int64: in.Uid, Valid: true}
	}
	return c, tx.Create(&c).Error
}
