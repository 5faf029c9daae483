// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/poiesic/cedizen/core"
)

// Collection is the complete document set provided by a Source.
type Collection struct {
	Articles []core.Article
	Cases    []core.JudicialCase
}

// Source provides the static document collections as a whole. Implementations
// perform a single read; there is no incremental or partial fetch.
type Source interface {
	// ReadAll reads the entire document collection.
	// Returns an error if the source is unreachable or malformed.
	ReadAll(ctx context.Context) (*Collection, error)
}

// FileSource reads the document collections from JSON files on disk.
type FileSource struct {
	// ArticlesPath is the path to the constitution JSON file.
	ArticlesPath string

	// CasesPath is the path to the judicial cases JSON file.
	// Optional: a missing cases file yields an empty case list.
	CasesPath string
}

var _ Source = (*FileSource)(nil)

// NewFileSource creates a Source backed by JSON files.
func NewFileSource(articlesPath, casesPath string) *FileSource {
	return &FileSource{
		ArticlesPath: articlesPath,
		CasesPath:    casesPath,
	}
}

// ReadAll reads and parses both collections.
func (f *FileSource) ReadAll(ctx context.Context) (*Collection, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(f.ArticlesPath)
	if err != nil {
		return nil, fmt.Errorf("reading articles: %w", err)
	}

	var articles []core.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("parsing articles: %w", err)
	}

	collection := &Collection{Articles: articles}

	if f.CasesPath != "" {
		data, err := os.ReadFile(f.CasesPath)
		if err != nil {
			if os.IsNotExist(err) {
				return collection, nil
			}
			return nil, fmt.Errorf("reading cases: %w", err)
		}
		if err := json.Unmarshal(data, &collection.Cases); err != nil {
			return nil, fmt.Errorf("parsing cases: %w", err)
		}
	}

	return collection, nil
}
