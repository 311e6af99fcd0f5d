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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/drename/pkg/log"
	"github.com/walteh/drename/pkg/text"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func readTree(t *testing.T, root, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(content)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCmd(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	tests := []struct {
		name        string
		files       map[string]string
		args        func(root string) []string
		wantErr     error
		errContains string
		validate    func(t *testing.T, root, stdout string)
	}{
		{
			name: "renames_contents_and_paths",
			files: map[string]string{
				"user_name/user_name.go": "type UserName struct{ userName string }\nconst USER_NAME = 1\n",
				"README.md":              "the user-name service",
			},
			args: func(root string) []string { return []string{"user/name", "account/id", root} },
			validate: func(t *testing.T, root, stdout string) {
				assert.Equal(t, "type AccountId struct{ accountId string }\nconst ACCOUNT_ID = 1\n", readTree(t, root, "account_id/account_id.go"))
				assert.Equal(t, "the account-id service", readTree(t, root, "README.md"))
				assert.NoDirExists(t, filepath.Join(root, "user_name"))
				assert.Contains(t, stdout, "USER_NAME")
				assert.Contains(t, stdout, "ACCOUNT_ID")
				assert.Contains(t, stdout, "✅")
			},
		},
		{
			name:  "dry_run",
			files: map[string]string{"user.txt": "user"},
			args:  func(root string) []string { return []string{"user", "account", root, "--dry"} },
			validate: func(t *testing.T, root, stdout string) {
				assert.Equal(t, "user", readTree(t, root, "user.txt"))
				assert.NoFileExists(t, filepath.Join(root, "account.txt"))
				assert.Contains(t, stdout, "dry run")
			},
		},
		{
			name:  "no_summary",
			files: map[string]string{"a.txt": "nothing here"},
			args:  func(root string) []string { return []string{"user", "account", root, "--no-summary"} },
			validate: func(t *testing.T, root, stdout string) {
				assert.NotContains(t, stdout, log.NoReplacementsMessage)
			},
		},
		{
			name:  "empty_log",
			files: map[string]string{"a.txt": "nothing here"},
			args:  func(root string) []string { return []string{"user", "account", root} },
			validate: func(t *testing.T, root, stdout string) {
				assert.Contains(t, stdout, log.NoReplacementsMessage)
			},
		},
		{
			name: "config_file_ignore",
			files: map[string]string{
				".drename.yaml":    "ignore:\n  - vendor\n",
				"vendor/user.go":   "user",
				"cmd/user/main.go": "user",
			},
			args: func(root string) []string { return []string{"user", "account", root} },
			validate: func(t *testing.T, root, stdout string) {
				assert.Equal(t, "user", readTree(t, root, "vendor/user.go"))
				assert.Equal(t, "account", readTree(t, root, "cmd/account/main.go"))
			},
		},
		{
			name:  "explicit_config_flag",
			files: map[string]string{"user.txt": "user", "conf/settings.json": `{"dry_run": true}`},
			args: func(root string) []string {
				return []string{"user", "account", root, "-c", filepath.Join(root, "conf", "settings.json")}
			},
			validate: func(t *testing.T, root, stdout string) {
				assert.Equal(t, "user", readTree(t, root, "user.txt"))
			},
		},
		{
			name:    "identical_specs",
			files:   map[string]string{"user.txt": "user"},
			args:    func(root string) []string { return []string{"user", "user", root} },
			wantErr: text.ErrIdenticalSpec,
		},
		{
			name:    "empty_token",
			files:   map[string]string{"user.txt": "user"},
			args:    func(root string) []string { return []string{"user//name", "account", root} },
			wantErr: text.ErrEmptySpec,
		},
		{
			name:        "too_few_args",
			args:        func(root string) []string { return []string{"user"} },
			errContains: "accepts between 2 and 3 arg(s)",
		},
		{
			name:        "broken_config",
			files:       map[string]string{".drename.yaml": "unknown: true\n"},
			args:        func(root string) []string { return []string{"user", "account", root} },
			errContains: "loading config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, tt.files)

			stdout, _, err := execute(t, tt.args(root)...)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				return
			case tt.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, root, stdout)
			}
		})
	}
}

func TestRootCmd_Version(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "🚀 drename version info:")
}
