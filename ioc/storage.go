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
	"github.com/ecodeclub/recruit/internal/pkg/pdf"
	"github.com/ecodeclub/recruit/internal/pkg/storage"
	"github.com/gotomicro/ego/core/econf"
)

func InitStorage() storage.Storage {
	dir := econf.GetString("storage.local.dir")
	if dir == "" {
		dir = "./uploads"
	}
	return storage.NewLocalStorage(dir)
}

func InitPDFConverter() pdf.Converter {
	return pdf.NewRemotePDFConverter(econf.GetString("pdf.endpoint"))
}

func InitTextExtractor() pdf.TextExtractor {
	return pdf.NewPlainTextExtractor()
}
