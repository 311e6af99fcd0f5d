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

package operation

import (
	"bytes"
	"context"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/drename/pkg/status"
	"github.com/walteh/drename/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrNotAFile is reported for directories and other non-regular entries
	ErrNotAFile = errors.Base("not a regular file")
	// ErrBinaryContent is reported for files that are sniffed as binary or are not valid UTF-8
	ErrBinaryContent = errors.Base("binary content")
	// ErrSizeLimitExceeded is reported for files larger than status.MaxFileSize
	ErrSizeLimitExceeded = errors.Base("file size exceeds maximum limit")
	// ErrNoChange is reported when the rewrite leaves the content as it was
	ErrNoChange = errors.Base("no change produced")
	// ErrTargetExists is reported when the planned name is taken by another entry
	ErrTargetExists = errors.Base("target already exists")
	// ErrOSFailure wraps file system errors raised while renaming
	ErrOSFailure = errors.Base("os failure")
)

// 🔧 EngineOptions contains configuration for the engine
type EngineOptions struct {
	// OldSpec and NewSpec are "/"-delimited token lists
	OldSpec string
	NewSpec string
	// DryRun computes every outcome without writing or renaming
	DryRun bool
	// Files performs all file system access
	Files status.FileManager
}

// 📄 ContentResult is the outcome of ReplaceFileContents
type ContentResult struct {
	Status       status.ContentStatus
	Kind         status.EntryKind
	Content      []byte // New content, set when Status is ContentChanged
	Replacements int
	Err          error
}

// ✏️ RenameResult is the outcome of RenameEntry
type RenameResult struct {
	Status  status.RenameStatus
	NewPath string
	Err     error
}

// ⚙️ Engine applies one replacement spec to file contents and entry names
type Engine struct {
	replacer *text.CaseAwareReplacer
	files    status.FileManager
	dryRun   bool
}

// 🏭 NewEngine creates a new engine; both specs must be non-empty
func NewEngine(opts EngineOptions) (*Engine, error) {
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}

	replacer, err := text.NewCaseAwareReplacer(opts.OldSpec, opts.NewSpec)
	if err != nil {
		return nil, errors.Errorf("creating replacer: %w", err)
	}

	return &Engine{
		replacer: replacer,
		files:    opts.Files,
		dryRun:   opts.DryRun,
	}, nil
}

// Replacer returns the underlying text replacer
func (e *Engine) Replacer() *text.CaseAwareReplacer {
	return e.replacer
}

// DryRun reports whether the engine leaves the file system untouched
func (e *Engine) DryRun() bool {
	return e.dryRun
}

// ReplaceText rewrites every match in s
func (e *Engine) ReplaceText(s string) (string, error) {
	return e.replacer.ReplaceString(s)
}

// PlanName rewrites a single path segment. Names that are not valid UTF-8 are
// returned as is, since rewriting them would replace the invalid bytes.
func (e *Engine) PlanName(name string) (string, error) {
	if !utf8.ValidString(name) {
		return name, nil
	}
	return e.replacer.ReplaceString(name)
}

// PlanPath rewrites the final segment of path, leaving its parents untouched
func (e *Engine) PlanPath(path string) (string, error) {
	name, err := e.PlanName(filepath.Base(path))
	if err != nil {
		return "", errors.Errorf("planning name for %s: %w", path, err)
	}
	return filepath.Join(filepath.Dir(path), name), nil
}

// Replacements returns a snapshot of the (matched -> generated) log
func (e *Engine) Replacements() map[string]string {
	return e.replacer.Replacements()
}

// 📝 ReplaceFileContents computes the rewritten content of path. It never
// writes; see PersistContent.
func (e *Engine) ReplaceFileContents(ctx context.Context, path string) ContentResult {
	logger := zerolog.Ctx(ctx)

	info, err := e.files.Stat(ctx, path)
	if err != nil || !info.Mode().IsRegular() {
		kind := status.KindOther
		if err == nil && info.IsDir() {
			kind = status.KindDirectory
		}
		return ContentResult{Status: status.ContentNotAFile, Kind: kind, Err: ErrNotAFile}
	}

	binary, err := e.files.IsBinary(ctx, path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("sniffing failed, treating as binary")
		return ContentResult{Status: status.ContentBinary, Kind: status.KindBinaryFile, Err: errors.Errorf("%w: %s", ErrBinaryContent, err)}
	}
	if binary {
		return ContentResult{Status: status.ContentBinary, Kind: status.KindBinaryFile, Err: ErrBinaryContent}
	}

	if info.Size() > status.MaxFileSize {
		return ContentResult{Status: status.ContentTooLarge, Kind: status.KindFile, Err: ErrSizeLimitExceeded}
	}

	content, err := e.files.ReadFile(ctx, path)
	if err != nil {
		return ContentResult{Status: status.ContentFailed, Kind: status.KindFile, Err: err}
	}
	if !utf8.Valid(content) {
		return ContentResult{Status: status.ContentBinary, Kind: status.KindBinaryFile, Err: errors.Errorf("%w: not valid UTF-8", ErrBinaryContent)}
	}

	result, err := e.replacer.ReplaceText(ctx, bytes.NewReader(content))
	if err != nil {
		return ContentResult{Status: status.ContentFailed, Kind: status.KindFile, Err: errors.Errorf("replacing content: %w", err)}
	}
	if !result.WasModified {
		return ContentResult{Status: status.ContentUnchanged, Kind: status.KindFile, Replacements: result.ReplacementCount, Err: ErrNoChange}
	}

	logger.Debug().Str("path", path).Int("replacements", result.ReplacementCount).Msg("content changed")
	return ContentResult{
		Status:       status.ContentChanged,
		Kind:         status.KindFile,
		Content:      result.ModifiedContent,
		Replacements: result.ReplacementCount,
	}
}

// 💾 PersistContent writes a changed result back to path. Dry runs and
// results that are not ContentChanged are left alone.
func (e *Engine) PersistContent(ctx context.Context, path string, res ContentResult) error {
	if e.dryRun || res.Status != status.ContentChanged {
		return nil
	}
	if err := e.files.WriteFileAtomic(ctx, path, res.Content); err != nil {
		return errors.Errorf("writing content: %w", err)
	}
	return nil
}

// ✏️ RenameEntry renames path after its planned name. An existing entry at
// the new path is never overwritten.
func (e *Engine) RenameEntry(ctx context.Context, path string) RenameResult {
	newPath, err := e.PlanPath(path)
	if err != nil {
		return RenameResult{Status: status.RenameFailed, NewPath: path, Err: errors.Errorf("%w: %s", ErrOSFailure, err)}
	}
	if newPath == path {
		return RenameResult{Status: status.RenameNoop, NewPath: newPath}
	}

	exists, err := e.files.Exists(ctx, newPath)
	if err != nil {
		return RenameResult{Status: status.RenameFailed, NewPath: newPath, Err: errors.Errorf("%w: %s", ErrOSFailure, err)}
	}
	if exists && !e.files.SameFile(ctx, path, newPath) {
		return RenameResult{Status: status.RenameTargetExists, NewPath: newPath, Err: ErrTargetExists}
	}

	if !e.dryRun {
		if err := e.files.Rename(ctx, path, newPath); err != nil {
			return RenameResult{Status: status.RenameFailed, NewPath: newPath, Err: errors.Errorf("%w: %s", ErrOSFailure, err)}
		}
	}

	zerolog.Ctx(ctx).Debug().Str("old_path", path).Str("new_path", newPath).Bool("dry_run", e.dryRun).Msg("renamed entry")
	return RenameResult{Status: status.RenameDone, NewPath: newPath}
}
