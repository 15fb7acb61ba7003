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
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// RemoteConverter 调用独立部署的 HTML 转 PDF 服务
// 请求体 {"html": "...", "options": {...}}，响应体就是 PDF 文件
type RemoteConverter struct {
	client   *resty.Client
	endpoint string
}

func NewRemotePDFConverter(endpoint string) *RemoteConverter {
	return &RemoteConverter{
		client:   resty.New().SetTimeout(time.Minute),
		endpoint: endpoint,
	}
}

type convertReq struct {
	HTML    string  `json:"html"`
	Options Options `json:"options"`
}

func (r *RemoteConverter) ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error) {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(convertReq{HTML: html, Options: options}).
		Post(r.endpoint)
	if err != nil {
		return nil, fmt.Errorf("调用 PDF 服务失败: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("PDF 服务返回错误 status=%d body=%s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}
