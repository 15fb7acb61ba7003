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

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pkg/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gotomicro/ego/core/elog"
)

const DefaultMaxResumeBytes int64 = 5 << 20

var allowedResumeExts = map[string]struct{}{
	".pdf":  {},
	".docx": {},
}

// ResumeFile 上传的简历
type ResumeFile struct {
	Filename string
	Content  []byte
}

// DocumentStore 负责简历文件的校验和落盘
type DocumentStore struct {
	storage  storage.Storage
	maxBytes int64
	logger   *elog.Component
}

func NewDocumentStore(s storage.Storage, maxBytes int64) *DocumentStore {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxResumeBytes
	}
	return &DocumentStore{
		storage:  s,
		maxBytes: maxBytes,
		logger:   elog.DefaultLogger,
	}
}

// Validate 只做检查，不写任何东西
func (d *DocumentStore) Validate(file ResumeFile) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedResumeExts[ext]; !ok {
		return fmt.Errorf("%w: 只支持 pdf 和 docx，当前 %q", ErrInvalidFile, ext)
	}
	size := int64(len(file.Content))
	if size == 0 {
		return fmt.Errorf("%w: 文件为空", ErrInvalidFile)
	}
	if size > d.maxBytes {
		return fmt.Errorf("%w: 文件大小 %d 超过上限 %d", ErrInvalidFile, size, d.maxBytes)
	}
	return nil
}

// Save 用生成的文件名保存，客户端文件名只作为元数据
func (d *DocumentStore) Save(ctx context.Context, file ResumeFile) (domain.Document, error) {
	if err := d.Validate(file); err != nil {
		return domain.Document{}, err
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	ref, err := d.storage.Store(ctx, file.Content, ext)
	if err != nil {
		return domain.Document{}, fmt.Errorf("保存简历失败: %w", err)
	}
	return domain.Document{
		DocType:      domain.DocTypeCV,
		Provider:     d.storage.Provider(),
		OriginalName: filepath.Base(file.Filename),
		StoredRef:    ref,
		MimeType:     mimetype.Detect(file.Content).String(),
		Size:         int64(len(file.Content)),
	}, nil
}

func (d *DocumentStore) Read(ctx context.Context, doc domain.Document) ([]byte, error) {
	return d.storage.Read(ctx, doc.StoredRef)
}

// Discard 删除失败只记录日志
func (d *DocumentStore) Discard(ctx context.Context, doc domain.Document) {
	if doc.StoredRef == "" {
		return
	}
	if err := d.storage.Delete(ctx, doc.StoredRef); err != nil {
		d.logger.Error("删除简历文件失败",
			elog.FieldErr(err),
			elog.String("ref", doc.StoredRef))
	}
}
