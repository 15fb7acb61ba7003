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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lithammer/shortuuid/v4"
)

const ProviderLocal = "LOCAL"

// LocalStorage 本地磁盘
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

func (l *LocalStorage) Store(ctx context.Context, data []byte, ext string) (string, error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", fmt.Errorf("创建存储目录失败: %w", err)
	}
	ref := shortuuid.New() + strings.ToLower(ext)
	// O_EXCL 保证不会覆盖已有文件
	f, err := os.OpenFile(filepath.Join(l.dir, ref), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(filepath.Join(l.dir, ref))
		return "", fmt.Errorf("写入文件 %s 失败: %w", ref, err)
	}
	return ref, nil
}

func (l *LocalStorage) Read(ctx context.Context, ref string) ([]byte, error) {
	path, err := l.path(ref)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (l *LocalStorage) Delete(ctx context.Context, ref string) error {
	path, err := l.path(ref)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (l *LocalStorage) Provider() string {
	return ProviderLocal
}

func (l *LocalStorage) path(ref string) (string, error) {
	if ref == "" || filepath.Base(ref) != ref || strings.HasPrefix(ref, ".") {
		return "", fmt.Errorf("%w: %s", ErrInvalidRef, ref)
	}
	return filepath.Join(l.dir, ref), nil
}
