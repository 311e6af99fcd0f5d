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

package main

import (
	"context"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/drename/pkg/config"
	"github.com/walteh/drename/pkg/log"
	"github.com/walteh/drename/pkg/operation"
	"github.com/walteh/drename/pkg/status"
	"github.com/walteh/drename/pkg/vcs"
	"gitlab.com/tozd/go/errors"
)

// rootOpts holds the flags of the root command
type rootOpts struct {
	configFile string
	dryRun     bool
	force      bool
	debug      bool
	noSummary  bool
}

// 🏗️ newRootCmd creates the drename command writing to the given streams
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "drename OLD NEW [PATH]",
		Short: "Rename identifiers across a tree in every casing style",
		Long: `drename replaces a "/"-separated identifier (e.g. user/name) with another
(e.g. account/id) in file contents and in file and directory names, matching
snake_case, kebab-case, camelCase, PascalCase and UPPER_CASE forms and keeping
the style of each occurrence.`,
		Example:       "  drename user/name account/id ./src --dry",
		Args:          cobra.RangeArgs(2, 3),
		Version:       GetVersionInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 3 {
				root = args[2]
			}
			return run(cmd.Context(), opts, args[0], args[1], root, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(FormatVersion())

	addRootFlags(cmd, opts)
	return cmd
}

// addRootFlags adds the flags of the root command
func addRootFlags(cmd *cobra.Command, opts *rootOpts) {
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "config file path (default: .drename.{yaml,yml,json,hcl} in PATH)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry", false, "report what would change without writing")
	cmd.Flags().BoolVar(&opts.force, "force", false, "run even when the git work tree has pending changes")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVar(&opts.noSummary, "no-summary", false, "do not print the replacement table")
}

// setupLogging builds the structured logger; it writes to stderr so that
// console output stays readable
func setupLogging(stderr io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
}

// loadConfig reads the --config file when given, otherwise looks for a
// default file in root. Flags win over file values.
func loadConfig(ctx context.Context, opts *rootOpts, root string) (*config.Config, error) {
	var cfg *config.Config
	if opts.configFile != "" {
		loaded, err := config.Load(ctx, opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		discovered, path, err := config.Discover(ctx, root)
		if err != nil {
			return nil, errors.Errorf("loading %s: %w", path, err)
		}
		cfg = discovered
	}

	cfg.DryRun = cfg.DryRun || opts.dryRun
	cfg.Force = cfg.Force || opts.force
	cfg.NoSummary = cfg.NoSummary || opts.noSummary
	return cfg, nil
}

// 🏃 run performs one rename over root
func run(ctx context.Context, opts *rootOpts, oldSpec, newSpec, root string, stdout, stderr io.Writer) error {
	zlog := setupLogging(stderr, opts.debug)
	console := log.NewWithZerolog(stdout, zlog)
	ctx = log.NewContext(ctx, console)

	abs, err := filepath.Abs(root)
	if err != nil {
		return errors.Errorf("resolving %s: %w", root, err)
	}

	cfg, err := loadConfig(ctx, opts, abs)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	zlog.Debug().Str("config", cfg.String()).Msg("configuration")

	files := status.New(&zlog)
	engine, err := operation.NewEngine(operation.EngineOptions{
		OldSpec: oldSpec,
		NewSpec: newSpec,
		DryRun:  cfg.DryRun,
		Files:   files,
	})
	if err != nil {
		return err
	}

	runner, err := operation.NewRunner(operation.RunnerOptions{
		Engine:   engine,
		Tracker:  files,
		Reporter: console,
		Ignore:   cfg.Ignore,
		Force:    cfg.Force,
	})
	if err != nil {
		return err
	}

	if err := runner.Preflight(ctx, abs); err != nil {
		if errors.Is(err, vcs.ErrDirtyWorkTree) {
			console.Warning("commit or stash your changes first, or pass --force")
		}
		return err
	}

	if cfg.DryRun {
		console.Header("dry run, nothing will be written")
	}
	console.StartRun(ctx, log.RunInfo{Root: abs, Old: oldSpec, New: newSpec, DryRun: cfg.DryRun})

	report, err := runner.Run(ctx, abs)
	if err != nil {
		return err
	}
	tally := console.EndRun(ctx)

	console.LogNewline()
	if !cfg.NoSummary {
		if err := console.Summary(report.Replacements); err != nil {
			return err
		}
	}

	if tally.Failed > 0 {
		console.Warningf("%d of %d entries failed", tally.Failed, tally.Entries)
	} else {
		console.Successf("%d entries processed, %d changed", tally.Entries, tally.Changed)
	}
	return nil
}
