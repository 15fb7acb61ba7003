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

package staff

import (
	"github.com/ecodeclub/recruit/internal/staff/internal/domain"
	"github.com/ecodeclub/recruit/internal/staff/internal/service"
)

type Staff = domain.Staff

type Service = service.Service

var ErrStaffNotFound = service.ErrStaffNotFound

const (
	RoleAdmin       = domain.RoleAdmin
	RoleHR          = domain.RoleHR
	RoleInterviewer = domain.RoleInterviewer
)
