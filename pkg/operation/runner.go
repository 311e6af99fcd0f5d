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
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/drename/pkg/status"
	"github.com/walteh/drename/pkg/text"
	"github.com/walteh/drename/pkg/tree"
	"github.com/walteh/drename/pkg/vcs"
	"gitlab.com/tozd/go/errors"
)

// 📢 Reporter receives each entry as soon as it is processed
type Reporter interface {
	ReportEntry(ctx context.Context, entry status.Entry)
}

// 🔧 RunnerOptions contains configuration for the runner
type RunnerOptions struct {
	// Engine applies the replacement (required)
	Engine *Engine
	// Tracker records outcomes and progress (optional)
	Tracker status.EntryTracker
	// Reporter shows entries as they complete (optional)
	Reporter Reporter
	// Ignore holds doublestar globs skipped during collection
	Ignore []string
	// Force skips the pending-changes check
	Force bool
	// IsClean overrides the pending-changes check; defaults to vcs.IsClean
	IsClean func(ctx context.Context, path string) bool
}

// 📋 Report is the result of a run
type Report struct {
	Root         string
	Entries      []status.Entry
	Replacements []text.Replacement
}

// 🏃 Runner drives one replacement over a tree, one entry at a time
type Runner struct {
	engine   *Engine
	tracker  status.EntryTracker
	reporter Reporter
	ignore   []string
	force    bool
	isClean  func(ctx context.Context, path string) bool
}

// 🏗️ NewRunner creates a new runner
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.Engine == nil {
		return nil, errors.Errorf("engine is required")
	}
	if opts.IsClean == nil {
		opts.IsClean = vcs.IsClean
	}
	return &Runner{
		engine:   opts.Engine,
		tracker:  opts.Tracker,
		reporter: opts.Reporter,
		ignore:   opts.Ignore,
		force:    opts.Force,
		isClean:  opts.IsClean,
	}, nil
}

// 🛫 Preflight runs the checks that abort a run before anything is touched
func (r *Runner) Preflight(ctx context.Context, root string) error {
	if r.engine.Replacer().Identical() {
		return text.ErrIdenticalSpec
	}
	if !r.force && !r.engine.DryRun() && !r.isClean(ctx, root) {
		return errors.Errorf("%w in %s", vcs.ErrDirtyWorkTree, root)
	}
	return nil
}

// 🏃 Run snapshots root, orders the snapshot deepest first, then rewrites the
// content and the name of each entry in turn. Per-entry failures are recorded
// in the report and never stop the run.
func (r *Runner) Run(ctx context.Context, root string) (*Report, error) {
	logger := zerolog.Ctx(ctx)

	if err := r.Preflight(ctx, root); err != nil {
		return nil, err
	}

	paths, err := tree.Collect(ctx, root, tree.Options{Ignore: r.ignore})
	if err != nil {
		return nil, errors.Errorf("collecting paths: %w", err)
	}
	tasks := tree.Order(paths, r.engine.Replacer().Delta())

	logger.Debug().
		Str("root", root).
		Str("replacement", r.engine.Replacer().String()).
		Int("entries", len(tasks)).
		Bool("dry_run", r.engine.DryRun()).
		Msg("starting run")

	if r.tracker != nil {
		r.tracker.StartOperation(ctx, len(tasks))
		defer r.tracker.FinishOperation(ctx)
	}

	report := &Report{Root: root, Entries: make([]status.Entry, 0, len(tasks))}
	for i, task := range tasks {
		entry := r.processEntry(ctx, root, task.Path)
		report.Entries = append(report.Entries, entry)

		if r.tracker != nil {
			r.tracker.TrackEntry(ctx, entry)
			r.tracker.UpdateProgress(ctx, i+1)
		}
		if r.reporter != nil {
			r.reporter.ReportEntry(ctx, entry)
		}
	}

	report.Replacements = r.engine.Replacer().ReplacementLog()
	return report, nil
}

// 📄 processEntry rewrites the content of path, then renames it. The two
// steps are independent: either may fail while the other succeeds.
func (r *Runner) processEntry(ctx context.Context, root, path string) status.Entry {
	entry := status.Entry{
		Root:    root,
		OldPath: path,
		DryRun:  r.engine.DryRun(),
	}

	content := r.engine.ReplaceFileContents(ctx, path)
	if err := r.engine.PersistContent(ctx, path, content); err != nil {
		content.Status = status.ContentFailed
		content.Err = err
	}
	entry.Kind = content.Kind
	entry.Content = content.Status
	entry.ContentErr = content.Err
	entry.Replacements = content.Replacements

	rename := r.engine.RenameEntry(ctx, path)
	entry.NewPath = rename.NewPath
	entry.Rename = rename.Status
	entry.RenameErr = rename.Err

	zerolog.Ctx(ctx).Debug().
		Str("old_path", entry.OldPath).
		Str("new_path", entry.NewPath).
		Str("kind", entry.Kind.String()).
		Str("content", entry.Content.String()).
		Str("rename", entry.Rename.String()).
		Msg("processed entry")

	return entry
}
