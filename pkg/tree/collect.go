// Copyright 2025 walteh LLC
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

package tree

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// HiddenPrefix marks entries that are never collected
const HiddenPrefix = "."

// 🔧 Options controls collection
type Options struct {
	// Ignore holds doublestar globs matched against root-relative slash paths
	Ignore []string
}

// 📦 Collect returns every non-hidden file and directory below root.
//
// A regular file root yields just itself. The root directory is not part of
// the result. Hidden directories and ignored directories are not descended.
func Collect(ctx context.Context, root string, opts Options) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Errorf("stating root: %w", err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}
		if err := ctx.Err(); err != nil {
			return errors.Errorf("collecting paths: %w", err)
		}
		if path == root {
			return nil
		}

		if strings.HasPrefix(d.Name(), HiddenPrefix) {
			return skip(d)
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", path, err)
		}
		if pattern, ok := ignored(ctx, opts.Ignore, filepath.ToSlash(rel)); ok {
			logger.Debug().Str("path", rel).Str("pattern", pattern).Msg("path ignored by pattern")
			return skip(d)
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("root", root).Int("paths", len(paths)).Msg("collected paths")
	return paths, nil
}

func skip(d fs.DirEntry) error {
	if d.IsDir() {
		return filepath.SkipDir
	}
	return nil
}

// 🔍 ignored returns the first pattern matching rel
func ignored(ctx context.Context, patterns []string, rel string) (string, bool) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			return pattern, true
		}
	}
	return "", false
}
