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

// Status 投递状态，库里只存规范值
type Status string

const (
	StatusNewApplied         Status = "NEW_APPLIED"
	StatusInterviewScheduled Status = "INTERVIEW_SCHEDULED"
	StatusPendingOffer       Status = "PENDING_OFFER"
	StatusWaitlisted         Status = "WAITLISTED"
	StatusOfferSent          Status = "OFFER_SENT"
	StatusHired              Status = "HIRED"
	StatusRejected           Status = "REJECTED"
)

// 历史上不同入口写过的同义值，统一在入口处归一
var statusAliases = map[string]Status{
	"ACTIVE":        StatusNewApplied,
	"PENDING":       StatusNewApplied,
	"NEW":           StatusNewApplied,
	"NEWLY_APPLIED": StatusNewApplied,
	"INTERVIEW":     StatusInterviewScheduled,
	"INTERVIEWING":  StatusInterviewScheduled,
	"WAITLIST":      StatusWaitlisted,
}

var canonicalStatuses = []Status{
	StatusNewApplied,
	StatusInterviewScheduled,
	StatusPendingOffer,
	StatusWaitlisted,
	StatusOfferSent,
	StatusHired,
	StatusRejected,
}

// ParseStatus 大小写、连字符、空格都不敏感，例如 Pending_Offer、offer-sent
func ParseStatus(s string) (Status, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if key == "" {
		return "", false
	}
	for _, st := range canonicalStatuses {
		if string(st) == key {
			return st, true
		}
	}
	st, ok := statusAliases[key]
	return st, ok
}

func (s Status) String() string {
	return string(s)
}

// Notifiable 进入这些状态要通知候选人
func (s Status) Notifiable() bool {
	return s == StatusHired || s == StatusRejected
}
