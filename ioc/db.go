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
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/recruit/internal/pkg/database"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitDB() *egorm.Component {
	WaitForDBSetup(econf.GetString("mysql.dsn"))
	db := egorm.Load("mysql").Build()
	if err := database.NewGormTracingPlugin().Initialize(db); err != nil {
		panic(err)
	}
	return db
}

func WaitForDBSetup(dsn string) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()

	// mysql.wait 不配置时最多重试 10 次，间隔上限 10 秒
	maxRetries := int32(econf.GetInt("mysql.wait.maxRetries"))
	if maxRetries <= 0 {
		maxRetries = 10
	}
	maxInterval := econf.GetDuration("mysql.wait.maxInterval")
	if maxInterval <= 0 {
		maxInterval = 10 * time.Second
	}
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}
	if err = pingUntilReady(sqlDB.PingContext, strategy); err != nil {
		panic(err)
	}
}

type backoff interface {
	Next() (time.Duration, bool)
}

func pingUntilReady(ping func(ctx context.Context) error, strategy backoff) error {
	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err := ping(ctx)
		cancel()
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("等待 MySQL 就绪失败: %w", err)
		}
		time.Sleep(next)
	}
}
