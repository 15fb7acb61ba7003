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

package pdf

import (
	"context"
)

// Converter 把 HTML 渲染成 PDF
//
//go:generate mockgen -source=./pdf.go -package=pdfmocks -destination=./mocks/pdf.mock.go Converter TextExtractor
type Converter interface {
	ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error)
}

// TextExtractor 从 PDF 中提取纯文本
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// Options 转换参数，远程服务按字段名透传
type Options struct {
	PaperWidthInch  float64 `json:"paperWidth,omitempty"`
	PaperHeightInch float64 `json:"paperHeight,omitempty"`
	Landscape       bool    `json:"landscape,omitempty"`
	Title           string  `json:"title,omitempty"`
}

type Option func(*Options)
