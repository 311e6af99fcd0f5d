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

package status

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	// MaxFileSize is the largest file whose content is rewritten
	MaxFileSize int64 = 5 * 1024 * 1024

	// SniffSize is how many leading bytes are checked for a null byte
	SniffSize = 1024
)

// 💾 FileManager handles all file system operations
type FileManager interface {
	// Inspection
	Stat(ctx context.Context, path string) (os.FileInfo, error)
	Exists(ctx context.Context, path string) (bool, error)
	SameFile(ctx context.Context, a, b string) bool
	IsBinary(ctx context.Context, path string) (bool, error)

	// Content
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFileAtomic(ctx context.Context, path string, content []byte) error

	// Names
	Rename(ctx context.Context, oldPath, newPath string) error
}

// 📈 EntryTracker records entry outcomes and reports progress
type EntryTracker interface {
	// Status tracking
	TrackEntry(ctx context.Context, entry Entry)
	ListEntries(ctx context.Context) []Entry

	// Progress reporting
	StartOperation(ctx context.Context, total int)
	UpdateProgress(ctx context.Context, processed int)
	FinishOperation(ctx context.Context)
}

var (
	_ FileManager  = (*Manager)(nil)
	_ EntryTracker = (*Manager)(nil)
)

// 🔧 Manager implements both FileManager and EntryTracker on the local disk
type Manager struct {
	logger    *zerolog.Logger // Logger for status updates
	formatter FileFormatter   // Formatter for status messages

	// Status tracking
	mu      sync.RWMutex
	entries []Entry

	// Progress tracking
	total     int
	processed int
}

// 🏭 New creates a new status manager
func New(logger *zerolog.Logger) *Manager {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Manager{
		logger:    logger,
		formatter: NewDefaultFileFormatter(),
	}
}

// WithFormatter replaces the formatter used for status messages
func (m *Manager) WithFormatter(f FileFormatter) *Manager {
	m.formatter = f
	return m
}

// FileManager interface implementation

func (m *Manager) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Errorf("stating file: %w", err)
	}
	return info, nil
}

func (m *Manager) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// SameFile reports whether a and b name the same file, as on a case-insensitive
// file system where only the case of a name changes.
func (m *Manager) SameFile(ctx context.Context, a, b string) bool {
	ai, err := os.Lstat(a)
	if err != nil {
		return false
	}
	bi, err := os.Lstat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

func (m *Manager) IsBinary(ctx context.Context, path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Errorf("opening file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, SniffSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, errors.Errorf("reading file: %w", err)
	}
	return bytes.IndexByte(buf[:n], 0) >= 0, nil
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFileAtomic writes content to a temp file next to path, keeping path's
// permissions, then renames it into place. A symlink is written through: the
// file it points to is replaced and the link is kept.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	path, err := resolveTarget(path)
	if err != nil {
		return err
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// resolveTarget follows symlinks in path; a path that does not exist yet is
// returned unchanged
func resolveTarget(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, nil
		}
		return "", errors.Errorf("resolving symlinks: %w", err)
	}
	return resolved, nil
}

func (m *Manager) Rename(ctx context.Context, oldPath, newPath string) error {
	if err := os.Rename(oldPath, newPath); err != nil {
		return errors.Errorf("renaming: %w", err)
	}
	return nil
}

// EntryTracker interface implementation

func (m *Manager) TrackEntry(ctx context.Context, entry Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, entry)
	ev := m.logger.Debug().
		Str("old_path", entry.OldPath).
		Str("new_path", entry.NewPath).
		Str("content", entry.Content.String()).
		Str("rename", entry.Rename.String())
	if entry.Content == ContentFailed && entry.ContentErr != nil {
		ev = ev.Str("content_error", m.formatter.FormatError(entry.ContentErr))
	}
	if entry.Rename == RenameFailed && entry.RenameErr != nil {
		ev = ev.Str("rename_error", m.formatter.FormatError(entry.RenameErr))
	}
	ev.Msg(m.formatter.FormatEntry(entry))
}

func (m *Manager) ListEntries(ctx context.Context) []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]Entry, len(m.entries))
	copy(entries, m.entries)
	return entries
}

func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0
	m.entries = nil
	msg := m.formatter.FormatProgress(0, total)
	m.logger.Debug().Int("total", total).Msg(msg)
}

func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed = processed
	msg := m.formatter.FormatProgress(processed, m.total)
	m.logger.Debug().
		Int("processed", processed).
		Int("total", m.total).
		Msg(msg)
}

func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg := m.formatter.FormatProgress(m.total, m.total)
	m.logger.Info().
		Int("processed", m.processed).
		Int("total", m.total).
		Msg(msg)
}
