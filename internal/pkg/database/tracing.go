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

package database

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/recruit/internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 为每条 SQL 打一个 span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

type hook struct {
	op       string
	register func(before, after func(*gorm.DB)) error
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []hook{
		{op: "query", register: func(before, after func(*gorm.DB)) error {
			if err := cb.Query().Before("gorm:query").Register("tracing:before_query", before); err != nil {
				return err
			}
			return cb.Query().After("gorm:query").Register("tracing:after_query", after)
		}},
		{op: "create", register: func(before, after func(*gorm.DB)) error {
			if err := cb.Create().Before("gorm:create").Register("tracing:before_create", before); err != nil {
				return err
			}
			return cb.Create().After("gorm:create").Register("tracing:after_create", after)
		}},
		{op: "update", register: func(before, after func(*gorm.DB)) error {
			if err := cb.Update().Before("gorm:update").Register("tracing:before_update", before); err != nil {
				return err
			}
			return cb.Update().After("gorm:update").Register("tracing:after_update", after)
		}},
		{op: "delete", register: func(before, after func(*gorm.DB)) error {
			if err := cb.Delete().Before("gorm:delete").Register("tracing:before_delete", before); err != nil {
				return err
			}
			return cb.Delete().After("gorm:delete").Register("tracing:after_delete", after)
		}},
		{op: "raw", register: func(before, after func(*gorm.DB)) error {
			if err := cb.Raw().Before("gorm:raw").Register("tracing:before_raw", before); err != nil {
				return err
			}
			return cb.Raw().After("gorm:raw").Register("tracing:after_raw", after)
		}},
	}
	for _, h := range hooks {
		if err := h.register(p.before(h.op), p.after); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		ctx, span := p.tracer.Start(db.Statement.Context, "gorm."+op, trace.WithSpanKind(trace.SpanKindClient))
		span.SetAttributes(
			attribute.String("db.system", db.Dialector.Name()),
			attribute.String("db.operation", op),
		)
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	val, ok := db.InstanceGet(spanKey)
	if !ok {
		return
	}
	span, ok := val.(trace.Span)
	if !ok {
		return
	}
	defer span.End()
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.table", db.Statement.Table))
	}
	span.SetAttributes(
		attribute.String("db.statement", db.Statement.SQL.String()),
		attribute.Int64("db.rows_affected", db.RowsAffected),
	)
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
