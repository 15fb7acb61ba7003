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

package storage

import (
	"context"
	"errors"
)

var ErrInvalidRef = errors.New("非法的文件引用")

// Storage 文件存储。写入时由存储生成文件名，调用方只拿到引用
//
//go:generate mockgen -source=./types.go -package=storagemocks -destination=./mocks/storage.mock.go Storage
type Storage interface {
	// Store 写入文件，ext 带点号，例如 .pdf
	Store(ctx context.Context, data []byte, ext string) (string, error)
	Read(ctx context.Context, ref string) ([]byte, error)
	// Delete 删除文件，文件不存在不算错误
	Delete(ctx context.Context, ref string) error
	// Provider 存储渠道，记录到文档元数据里
	Provider() string
}
