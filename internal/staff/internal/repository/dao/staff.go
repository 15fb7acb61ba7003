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

// StaffDAO 只读，账号和角色由认证系统写入
type StaffDAO interface {
	FindById(ctx context.Context, id int64) (User, error)
	FindRoleCodes(ctx context.Context, uid int64) ([]string, error)
}

type GORMStaffDAO struct {
	db *egorm.Component
}

func NewGORMStaffDAO(db *egorm.Component) StaffDAO {
	return &GORMStaffDAO{db: db}
}

func (d *GORMStaffDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := d.db.WithContext(ctx).Where("id = ? AND deleted = ?", id, false).First(&u).Error
	return u, err
}

func (d *GORMStaffDAO) FindRoleCodes(ctx context.Context, uid int64) ([]string, error) {
	var codes []string
	err := d.db.WithContext(ctx).Model(&Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.uid = ?", uid).
		Order("roles.code ASC").
		Pluck("roles.code", &codes).Error
	return codes, err
}

type User struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Name    string `gorm:"type:varchar(256)"`
	Email   string `gorm:"type:varchar(256)"`
	Deleted bool
	Ctime   int64
	Utime   int64
}

type Role struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Code  string `gorm:"type:varchar(64);unique"`
	Name  string `gorm:"type:varchar(256)"`
	Ctime int64
	Utime int64
}

type UserRole struct {
	Id     int64 `gorm:"primaryKey,autoIncrement"`
	Uid    int64 `gorm:"uniqueIndex:uniq_uid_role"`
	RoleId int64 `gorm:"uniqueIndex:uniq_uid_role"`
	Ctime  int64
	Utime  int64
}
