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

import "time"

type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "SCHEDULED"
	InterviewStatusCompleted InterviewStatus = "COMPLETED"
	InterviewStatusCancelled InterviewStatus = "CANCELLED"
)

func (s InterviewStatus) String() string {
	return string(s)
}

// ScheduleState 面试官日程里展示的状态
type ScheduleState string

const (
	ScheduleUpcoming  ScheduleState = "UPCOMING"
	ScheduleOngoing   ScheduleState = "ONGOING"
	ScheduleCompleted ScheduleState = "COMPLETED"
	ScheduleCancelled ScheduleState = "CANCELLED"
)

type Interview struct {
	Id            int64
	ApplicationId int64
	InterviewerId int64
	Title         string
	// StartAt EndAt 毫秒时间戳
	StartAt     int64
	EndAt       int64
	Location    string
	MeetingLink string
	Status      InterviewStatus
	CreatedBy   int64
	Ctime       int64
	Utime       int64
}

func (i Interview) Open() bool {
	return i.Status == InterviewStatusScheduled
}

func (i Interview) State(now time.Time) ScheduleState {
	switch i.Status {
	case InterviewStatusCompleted:
		return ScheduleCompleted
	case InterviewStatusCancelled:
		return ScheduleCancelled
	}
	ms := now.UnixMilli()
	switch {
	case ms < i.StartAt:
		return ScheduleUpcoming
	case ms <= i.EndAt:
		return ScheduleOngoing
	default:
		// 时间过了但还没有评价
		return ScheduleCompleted
	}
}
