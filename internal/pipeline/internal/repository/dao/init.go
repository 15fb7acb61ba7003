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
)

func InitTables(db *egorm.Component) error {
	err := db.AutoMigrate(
		&Candidate{},
		&Document{},
		&Stage{},
		&Application{},
		&Interview{},
		&Evaluation{},
		&AiScore{},
	)
	if err != nil {
		return err
	}
	return initStages(db)
}

// initStages 没有配置过阶段时写入默认的招聘流程
func initStages(db *egorm.Component) error {
	var cnt int64
	if err := db.Model(&Stage{}).Count(&cnt).Error; err != nil || cnt > 0 {
		return err
	}
	now := time.Now().UnixMilli()
	stages := []Stage{
		{Name: "简历筛选", SortOrder: 1, Ctime: now, Utime: now},
		{Name: "面试", SortOrder: 2, Ctime: now, Utime: now},
		{Name: "录用", SortOrder: 3, Ctime: now, Utime: now},
	}
	return db.Create(&stages).Error
}
