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

package zhipu

import (
	"context"

	"github.com/ecodeclub/recruit/internal/llm"
	"github.com/yankeguo/zhipu"
)

type Client struct {
	client *zhipu.Client
	model  string
}

func NewClient(apiKey, model string) (*Client, error) {
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Client{client: client, model: model}, nil
}

func (c *Client) Complete(ctx context.Context, prompt string) (llm.Answer, error) {
	completion, err := c.client.ChatCompletion(c.model).
		AddMessage(zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleUser,
			Content: prompt,
		}).
		SetTemperature(0.2).
		Do(ctx)
	if err != nil {
		return llm.Answer{}, err
	}
	if len(completion.Choices) == 0 {
		return llm.Answer{}, llm.ErrEmptyAnswer
	}
	return llm.Answer{
		Content: completion.Choices[0].Message.Content,
		Model:   c.model,
		Tokens:  completion.Usage.TotalTokens,
	}, nil
}
