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
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/walteh/drename/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎨 Display configuration
const (
	rowIndent = 4  // spaces to indent entry rows
	kindWidth = 15 // Width for entry kind
)

// 🎯 RenderPathDiff highlights what changed between two paths: removed runs in
// red, inserted runs in green. Equal paths are returned as is.
func RenderPathDiff(oldPath, newPath string) string {
	if oldPath == newPath {
		return oldPath
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(oldPath, newPath, false))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString(color.RedString("%s", d.Text))
		case diffmatchpatch.DiffInsert:
			b.WriteString(color.GreenString("%s", d.Text))
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// 🎯 FormatEntryRow formats an entry for display as "kind  path-diff  errors"
func FormatEntryRow(entry Entry) string {
	var prefix string
	errs := entry.Errors()
	switch {
	case len(errs) > 0:
		prefix = color.RedString("✗")
	case entry.Changed():
		prefix = color.GreenString("✓")
	default:
		prefix = color.HiBlackString("-")
	}

	kind := fmt.Sprintf("%-*s", kindWidth, entry.Kind.String())
	if entry.Kind == KindFile {
		kind = color.YellowString("%s", kind)
	} else {
		kind = color.HiBlackString("%s", kind)
	}

	row := fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", rowIndent),
		prefix,
		kind,
		RenderPathDiff(entry.RelOldPath(), entry.RelNewPath()),
	)
	if len(errs) > 0 {
		row += " " + color.RedString("%s", strings.Join(errs, "; "))
	}
	return row
}

// 📊 RenderReplacementTable renders the (old -> new) log as a table
func RenderReplacementTable(log []text.Replacement) (string, error) {
	data := pterm.TableData{{"Old", "New"}}
	for _, r := range log {
		data = append(data, []string{r.Old, r.New})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Errorf("rendering replacement table: %w", err)
	}
	return out, nil
}
