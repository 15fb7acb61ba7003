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

package ioc

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/mq-api"
	"github.com/stretchr/testify/assert"
)

// topicRecorder 只记录建了哪些 topic
type topicRecorder struct {
	mq.MQ
	created map[string]int
	err     error
}

func (r *topicRecorder) CreateTopic(_ context.Context, name string, partitions int) error {
	if r.err != nil {
		return r.err
	}
	r.created[name] = partitions
	return nil
}

func TestCreateTopics(t *testing.T) {
	testCases := []struct {
		name   string
		topics []topicConfig
		err    error

		want    map[string]int
		wantErr bool
	}{
		{
			name: "分区数默认为 1",
			topics: []topicConfig{
				{Name: "application_submitted_events", Partitions: 3},
				{Name: "status_changed_events"},
				{Partitions: 2},
			},
			want: map[string]int{"application_submitted_events": 3, "status_changed_events": 1},
		},
		{
			name:    "创建失败",
			topics:  []topicConfig{{Name: "application_submitted_events", Partitions: 3}},
			err:     errors.New("broker down"),
			want:    map[string]int{},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := &topicRecorder{created: map[string]int{}, err: tc.err}
			err := createTopics(context.Background(), q, tc.topics)
			if tc.wantErr {
				assert.ErrorContains(t, err, "topic=application_submitted_events")
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, q.created)
		})
	}
}
