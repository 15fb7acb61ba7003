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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

func InitTables(db *egorm.Component) error {
	err := db.AutoMigrate(&User{}, &Role{}, &UserRole{})
	if err != nil {
		return err
	}
	// 角色是固定的三种
	now := time.Now().UnixMilli()
	roles := []Role{
		{Code: "ADMIN", Name: "管理员", Ctime: now, Utime: now},
		{Code: "HR", Name: "招聘专员", Ctime: now, Utime: now},
		{Code: "INTERVIEWER", Name: "面试官", Ctime: now, Utime: now},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error
}
