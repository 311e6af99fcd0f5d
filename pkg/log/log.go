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

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/drename/pkg/status"
	"github.com/walteh/drename/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// NoReplacementsMessage is shown when a run rewrote nothing
const NoReplacementsMessage = "No possible replacements found."

// 📦 RunInfo describes a run for logging
type RunInfo struct {
	Root   string // Directory or file being processed
	Old    string // Old spec as given
	New    string // New spec as given
	DryRun bool   // Whether nothing will be written
}

// 📊 Tally counts reported entries by outcome
type Tally struct {
	Entries int
	Changed int
	Failed  int
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	current *RunInfo
	tally   Tally
}

// 🏭 New creates a new logger; structured output goes to stderr
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	return NewWithZerolog(console, zlog)
}

// 🏭 NewWithZerolog creates a logger mirroring to an existing zerolog logger
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context, along with its zerolog logger so
// that zerolog.Ctx works downstream
func NewContext(ctx context.Context, l *Logger) context.Context {
	ctx = l.zlog.WithContext(ctx)
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 StartRun prints the run header and resets the tally
func (l *Logger) StartRun(ctx context.Context, info RunInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.current = &info
	l.tally = Tally{}

	fmt.Fprintf(l.console, "[renaming %s]\n", color.New(color.FgCyan).Sprint(info.Root))

	line := fmt.Sprintf("%s %s %s %s",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(info.Old),
		color.New(color.Faint).Sprint("→"),
		color.New(color.FgYellow).Sprint(info.New))
	if info.DryRun {
		line += " " + color.New(color.Faint).Sprint("(dry run)")
	}
	fmt.Fprintln(l.console, line)

	l.zlog.Info().
		Str("root", info.Root).
		Str("old", info.Old).
		Str("new", info.New).
		Bool("dry_run", info.DryRun).
		Msg("starting run")
}

// 📝 ReportEntry prints one processed entry as a row
func (l *Logger) ReportEntry(ctx context.Context, entry status.Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tally.Entries++
	errs := entry.Errors()
	switch {
	case len(errs) > 0:
		l.tally.Failed++
	case entry.Changed():
		l.tally.Changed++
	}

	fmt.Fprintln(l.console, status.FormatEntryRow(entry))

	ev := l.zlog.Debug().
		Str("old_path", entry.RelOldPath()).
		Str("new_path", entry.RelNewPath()).
		Str("kind", entry.Kind.String()).
		Str("content", entry.Content.String()).
		Str("rename", entry.Rename.String()).
		Int("replacements", entry.Replacements)
	if len(errs) > 0 {
		ev = ev.Strs("errors", errs)
	}
	ev.Msg("entry")
}

// 📝 EndRun logs the tally of the current run and returns it
func (l *Logger) EndRun(ctx context.Context) Tally {
	l.mu.Lock()
	defer l.mu.Unlock()

	tally := l.tally
	if l.current == nil {
		return tally
	}

	l.zlog.Info().
		Str("root", l.current.Root).
		Int("entries", tally.Entries).
		Int("changed", tally.Changed).
		Int("failed", tally.Failed).
		Msg("run complete")

	l.current = nil
	return tally
}

// 📊 Summary prints the replacement table, or a notice when it is empty
func (l *Logger) Summary(log []text.Replacement) error {
	if len(log) == 0 {
		l.Warning(NoReplacementsMessage)
		return nil
	}

	table, err := status.RenderReplacementTable(log)
	if err != nil {
		return errors.Errorf("rendering summary: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, table)
	l.zlog.Debug().Int("replacements", len(log)).Msg("summary")
	return nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("drename")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
