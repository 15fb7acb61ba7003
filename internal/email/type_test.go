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

package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMail_Recipients(t *testing.T) {
	testCases := []struct {
		name string
		mail Mail
		want []string
	}{
		{
			name: "只有收件人",
			mail: Mail{To: "a@x.com"},
			want: []string{"a@x.com"},
		},
		{
			name: "抄送去重去空",
			mail: Mail{To: "a@x.com", Cc: []string{"", "b@x.com", "a@x.com", "b@x.com"}},
			want: []string{"a@x.com", "b@x.com"},
		},
		{
			name: "没有收件人",
			mail: Mail{Cc: []string{"b@x.com"}},
			want: []string{"b@x.com"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.mail.Recipients())
		})
	}
}
