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

package llm

import (
	"context"
	"errors"
)

var ErrEmptyAnswer = errors.New("大模型没有返回内容")

// Client 一问一答的大模型调用
//
//go:generate mockgen -source=./type.go -package=llmmocks -destination=./mocks/llm.mock.go Client
type Client interface {
	Complete(ctx context.Context, prompt string) (Answer, error)
}

type Answer struct {
	Content string
	Model   string
	Tokens  int64
}
