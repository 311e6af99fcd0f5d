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
	"cmp"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"
)

// 📋 Task is one collected path with its ordering keys
type Task struct {
	Path   string // Path as collected
	Depth  int    // Number of path components
	Weight int    // len(base name) * delta
}

// 🔄 Order sorts paths by descending (Depth, Weight) so every entry comes
// before its ancestors. Weight only affects presentation among siblings of the
// same depth. Remaining ties sort by descending path so the plan is stable.
func Order(paths []string, delta int) []Task {
	tasks := make([]Task, 0, len(paths))
	for _, path := range paths {
		tasks = append(tasks, Task{
			Path:   path,
			Depth:  Depth(path),
			Weight: utf8.RuneCountInString(filepath.Base(path)) * delta,
		})
	}

	slices.SortFunc(tasks, func(a, b Task) int {
		return cmp.Or(
			cmp.Compare(b.Depth, a.Depth),
			cmp.Compare(b.Weight, a.Weight),
			strings.Compare(b.Path, a.Path),
		)
	})
	return tasks
}

// Depth counts the components of path, including the root of an absolute path
func Depth(path string) int {
	clean := filepath.Clean(path)
	if clean == "." {
		return 0
	}

	depth := 0
	if filepath.IsAbs(clean) {
		depth++
		clean = strings.TrimPrefix(clean, filepath.VolumeName(clean))
		clean = strings.TrimLeft(clean, string(os.PathSeparator))
		if clean == "" {
			return depth
		}
	}
	return depth + len(strings.Split(clean, string(os.PathSeparator)))
}
