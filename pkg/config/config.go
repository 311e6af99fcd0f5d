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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// DefaultFileNames are looked up, in order, by Discover
var DefaultFileNames = []string{
	".drename.yaml",
	".drename.yml",
	".drename.json",
	".drename.hcl",
}

// 📚 Config holds the settings a run can take from a file. Command line
// flags win over every field.
type Config struct {
	// Ignore holds doublestar globs, relative to the root, skipped entirely
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`
	// DryRun reports outcomes without touching the file system
	DryRun bool `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`
	// Force skips the pending-changes check
	Force bool `json:"force,omitempty" yaml:"force,omitempty" hcl:"force,optional"`
	// NoSummary hides the replacement table printed after a run
	NoSummary bool `json:"no_summary,omitempty" yaml:"no_summary,omitempty" hcl:"no_summary,optional"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Discover loads the first of DefaultFileNames found in root (or in the
// directory holding root, when root is a file). It returns the defaults and an
// empty path when there is none.
func Discover(ctx context.Context, root string) (*Config, string, error) {
	dir := root
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		dir = filepath.Dir(root)
	}

	for _, name := range DefaultFileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		cfg, err := Load(ctx, path)
		if err != nil {
			return nil, path, err
		}
		return cfg, path, nil
	}

	zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("no configuration file found")
	return Default(), "", nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	patterns := make([]string, 0, len(cfg.Ignore))
	for _, pattern := range cfg.Ignore {
		pattern = filepath.ToSlash(strings.TrimSpace(pattern))
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid ignore pattern: %q", pattern)
		}
		patterns = append(patterns, pattern)
	}
	cfg.Ignore = patterns
	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("ignore=%v dry_run=%t force=%t no_summary=%t", cfg.Ignore, cfg.DryRun, cfg.Force, cfg.NoSummary)
}
