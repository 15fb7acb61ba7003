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

const (
	RoleAdmin       = "ADMIN"
	RoleHR          = "HR"
	RoleInterviewer = "INTERVIEWER"
)

// Staff 内部员工身份，角色由认证系统维护
type Staff struct {
	Id    int64
	Name  string
	Email string
	Roles []string
}

func (s Staff) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (s Staff) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if s.HasRole(r) {
			return true
		}
	}
	return false
}

// CanInterview 只有面试官角色可以被安排面试
func (s Staff) CanInterview() bool {
	return s.HasRole(RoleInterviewer)
}
