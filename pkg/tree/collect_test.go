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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🔧 writeTree creates files (and their parent directories) under root
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(f), 0644))
	}
}

func relAll(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestCollect(t *testing.T) {
	tests := []struct {
		name   string
		files  []string
		opts   Options
		want   []string
		single bool
	}{
		{
			name:  "files_and_directories",
			files: []string{"a.txt", "user_dir/user_name.go", "user_dir/deep/x.md"},
			want: []string{
				"a.txt",
				"user_dir",
				"user_dir/deep",
				"user_dir/deep/x.md",
				"user_dir/user_name.go",
			},
		},
		{
			name:  "hidden_entries_are_skipped",
			files: []string{".git/config", ".env", "src/.hidden", "src/main.go"},
			want:  []string{"src", "src/main.go"},
		},
		{
			name:  "ignore_globs",
			files: []string{"vendor/lib/a.go", "main.go", "gen/x.pb.go", "gen/y.go"},
			opts:  Options{Ignore: []string{"vendor", "**/*.pb.go"}},
			want:  []string{"gen", "gen/y.go", "main.go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, tt.files...)

			paths, err := Collect(context.Background(), root, tt.opts)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, relAll(t, root, paths))
		})
	}
}

func TestCollect_FileRoot(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "only_user.txt")
	file := filepath.Join(root, "only_user.txt")

	paths, err := Collect(context.Background(), file, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{file}, paths)
}

func TestCollect_MissingRoot(t *testing.T) {
	_, err := Collect(context.Background(), filepath.Join(t.TempDir(), "nope"), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stating root")
}

func TestCollect_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a/b.txt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Collect(ctx, root, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
