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

type Job struct {
	Id           int64
	Title        string
	Description  string
	Requirements string
	Deleted      bool
}

// Available 没有被删除的职位才能投递
func (j Job) Available() bool {
	return j.Id > 0 && !j.Deleted
}

// Describable 描述和要求都为空时没法做匹配打分
func (j Job) Describable() bool {
	return strings.TrimSpace(j.Description) != "" || strings.TrimSpace(j.Requirements) != ""
}
