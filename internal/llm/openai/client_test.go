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

package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/recruit/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Complete(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc

		want    llm.Answer
		wantErr bool
		isEmpty bool
	}{
		{
			name: "正常返回",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var body map[string]any
				_ = json.NewDecoder(r.Body).Decode(&body)
				assert.Equal(t, "gemini-2.0-flash", body["model"])
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"id": "chatcmpl-1",
					"object": "chat.completion",
					"created": 1700000000,
					"model": "gemini-2.0-flash",
					"choices": [{"index": 0, "finish_reason": "stop",
						"message": {"role": "assistant", "content": "{\"score\": 80}"}}],
					"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
				}`))
			},
			want: llm.Answer{Content: `{"score": 80}`, Model: "gemini-2.0-flash", Tokens: 15},
		},
		{
			name: "没有候选结果",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`))
			},
			wantErr: true,
			isEmpty: true,
		},
		{
			name: "请求被拒绝",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error": {"message": "bad request"}}`))
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()
			c := NewClient(server.URL+"/", "test-key", "gemini-2.0-flash")
			got, err := c.Complete(context.Background(), "给这份简历打分")
			if tc.wantErr {
				require.Error(t, err)
				if tc.isEmpty {
					assert.ErrorIs(t, err, llm.ErrEmptyAnswer)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
