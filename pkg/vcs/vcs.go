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

// Package vcs answers whether a directory has uncommitted git changes.
package vcs

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrDirtyWorkTree is returned when the target has pending changes
var ErrDirtyWorkTree = errors.Base("pending git changes")

// GitBinary is the git executable looked up on PATH
var GitBinary = "git"

// IsClean reports whether path is safe to rewrite without losing work.
//
// Anything that is not a directory, is not inside a git work tree, or where git
// is unavailable counts as clean. Otherwise path is clean iff
// `git status --porcelain` prints nothing.
func IsClean(ctx context.Context, path string) bool {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return true
	}

	if _, err := git(ctx, path, "rev-parse", "--is-inside-work-tree"); err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("not a git work tree")
		return true
	}

	out, err := git(ctx, path, "status", "--porcelain")
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("git status failed")
		return true
	}

	return len(bytes.TrimSpace(out)) == 0
}

func git(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, GitBinary, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Errorf("running git %v: %w: %s", args, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return out, nil
}
