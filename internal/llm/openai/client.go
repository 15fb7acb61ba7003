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

	"github.com/ecodeclub/recruit/internal/llm"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Gemini 的 OpenAI 兼容地址
const GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// Client 兼容 OpenAI 协议的平台都可以用，例如 Gemini、通义
type Client struct {
	client *openai.Client
	model  string
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		client: openai.NewClient(
			option.WithBaseURL(baseURL),
			option.WithAPIKey(apiKey),
		),
		model: model,
	}
}

func (c *Client) Complete(ctx context.Context, prompt string) (llm.Answer, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		}),
		Model:       openai.F(c.model),
		Temperature: openai.F(0.2),
	})
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
