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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

// Scorer 由评分服务实现
type Scorer interface {
	Score(ctx context.Context, applicationId int64) (domain.AiScore, error)
}

type ScoringConsumer struct {
	scorer   Scorer
	consumer mq.Consumer
	logger   *elog.Component
}

func NewScoringConsumer(scorer Scorer, q mq.MQ) (*ScoringConsumer, error) {
	const groupID = "pipeline_scoring"
	consumer, err := q.Consumer(ApplicationSubmittedTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &ScoringConsumer{
		scorer:   scorer,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start ctx 取消后退出
func (c *ScoringConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费投递事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *ScoringConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt ApplicationSubmittedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	_, err = c.scorer.Score(ctx, evt.ApplicationId)
	if errors.Is(err, domain.ErrScoringSkipped) {
		c.logger.Info("跳过 AI 评分",
			elog.Int64("applicationId", evt.ApplicationId),
			elog.String("reason", err.Error()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("AI 评分失败 applicationId=%d: %w", evt.ApplicationId, err)
	}
	return nil
}

func (c *ScoringConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
