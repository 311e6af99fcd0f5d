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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DRENAME_TEST_DIR", "generated")

	tests := []struct {
		name        string
		file        string
		config      string
		wantErr     bool
		errContains string
		want        *Config
	}{
		{
			name: "yaml",
			file: ".drename.yaml",
			config: `
ignore:
  - vendor/**
  - "*.lock"
dry_run: true
no_summary: true
`,
			want: &Config{Ignore: []string{"vendor/**", "*.lock"}, DryRun: true, NoSummary: true},
		},
		{
			name:   "yml_empty",
			file:   ".drename.yml",
			config: "",
			want:   &Config{Ignore: []string{}},
		},
		{
			name:        "yaml_unknown_field",
			file:        ".drename.yaml",
			config:      "ignroe: [a]\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:   "json",
			file:   ".drename.json",
			config: `{"ignore": ["dist/**"], "force": true}`,
			want:   &Config{Ignore: []string{"dist/**"}, Force: true},
		},
		{
			name:        "json_unknown_field",
			file:        ".drename.json",
			config:      `{"destination": "x"}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name: "hcl",
			file: ".drename.hcl",
			config: `
ignore     = ["vendor/**", "${env.DRENAME_TEST_DIR}/**"]
force      = true
no_summary = false
`,
			want: &Config{Ignore: []string{"vendor/**", "generated/**"}, Force: true},
		},
		{
			name:        "hcl_syntax_error",
			file:        ".drename.hcl",
			config:      `ignore = [`,
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name:        "hcl_unknown_attribute",
			file:        ".drename.hcl",
			config:      `clean = true`,
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name:        "invalid_glob",
			file:        ".drename.yaml",
			config:      "ignore: [\"[abc\"]\n",
			wantErr:     true,
			errContains: "invalid ignore pattern",
		},
		{
			name:        "no_parser",
			file:        ".drename.toml",
			config:      "force = true",
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0644))

			cfg, err := Load(ctx, path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), ".drename.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDiscover(t *testing.T) {
	ctx := context.Background()

	t.Run("none", func(t *testing.T) {
		cfg, path, err := Discover(ctx, t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, path)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("first_name_wins", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".drename.json"), []byte(`{"force": true}`), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".drename.yml"), []byte("dry_run: true\n"), 0644))

		cfg, path, err := Discover(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ".drename.yml"), path)
		assert.True(t, cfg.DryRun)
		assert.False(t, cfg.Force)
	})

	t.Run("file_root", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "main.go")
		require.NoError(t, os.WriteFile(file, nil, 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".drename.hcl"), []byte("force = true\n"), 0644))

		cfg, path, err := Discover(ctx, file)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ".drename.hcl"), path)
		assert.True(t, cfg.Force)
	})

	t.Run("broken_file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".drename.yaml"), []byte("force: [\n"), 0644))

		_, path, err := Discover(ctx, dir)
		require.Error(t, err)
		assert.Equal(t, filepath.Join(dir, ".drename.yaml"), path)
	})
}

func TestValidate(t *testing.T) {
	cfg := &Config{Ignore: []string{" vendor/** ", "", "*.lock"}}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"vendor/**", "*.lock"}, cfg.Ignore)
}

func TestGetParser(t *testing.T) {
	tests := []struct {
		file string
		want Parser
	}{
		{file: "a.yaml", want: &YAMLParser{}},
		{file: "a.yml", want: &YAMLParser{}},
		{file: "a.json", want: &JSONParser{}},
		{file: "a.hcl", want: &HCLParser{}},
		{file: "a.toml", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got := GetParser(tt.file)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}
