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

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	channelEmail     = "email"
	channelAiScoring = "ai_scoring"
	channelMQ        = "mq"
	channelPDF       = "pdf"
)

// sideEffectFailures 邮件、评分等附带动作的失败次数，这些失败不会返回给调用方
var sideEffectFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "recruit",
	Name:      "side_effect_failures_total",
	Help:      "附带动作失败次数",
}, []string{"channel"})
