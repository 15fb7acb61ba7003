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
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingUntilReady(t *testing.T) {
	testCases := []struct {
		name      string
		failTimes int

		wantCalls int
		wantErr   bool
	}{
		{name: "一次就绪", failTimes: 0, wantCalls: 1},
		{name: "重试后就绪", failTimes: 2, wantCalls: 3},
		{name: "重试次数耗尽", failTimes: 100, wantCalls: 4, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			strategy, err := retry.NewFixedIntervalRetryStrategy(time.Millisecond, 3)
			require.NoError(t, err)
			calls := 0
			err = pingUntilReady(func(ctx context.Context) error {
				calls++
				if calls <= tc.failTimes {
					return errors.New("connection refused")
				}
				return nil
			}, strategy)
			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr {
				assert.ErrorContains(t, err, "connection refused")
				return
			}
			assert.NoError(t, err)
		})
	}
}
