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
	"context"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// JobDAO 职位由职位管理模块维护，这里只读
//
//go:generate mockgen -source=./job.go -package=daomocks -destination=mocks/job.mock.go JobDAO
type JobDAO interface {
	FindById(ctx context.Context, id int64) (Job, error)
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (d *GORMJobDAO) FindById(ctx context.Context, id int64) (Job, error) {
	var j Job
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&j).Error
	return j, err
}

type Job struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	Title        string `gorm:"type:varchar(512)"`
	Description  string `gorm:"type:text"`
	Requirements string `gorm:"type:text"`
	Deleted      bool
	Ctime        int64
	Utime        int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Job{})
}
