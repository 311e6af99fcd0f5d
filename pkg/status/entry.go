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
	"path/filepath"
)

// 📊 ContentStatus is the outcome of rewriting one entry's content
type ContentStatus int

const (
	ContentUnknown   ContentStatus = iota
	ContentChanged                 // Content was rewritten
	ContentUnchanged               // No match, or the rewrite equals the input
	ContentNotAFile                // Entry is not a regular file
	ContentBinary                  // Null byte in the sniff window, or not UTF-8
	ContentTooLarge                // Larger than MaxFileSize
	ContentFailed                  // Reading or writing failed
)

// String returns a string representation of ContentStatus
func (s ContentStatus) String() string {
	switch s {
	case ContentChanged:
		return "changed"
	case ContentUnchanged:
		return "unchanged"
	case ContentNotAFile:
		return "not a file"
	case ContentBinary:
		return "binary"
	case ContentTooLarge:
		return "too large"
	case ContentFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📊 RenameStatus is the outcome of renaming one entry
type RenameStatus int

const (
	RenameUnknown      RenameStatus = iota
	RenameDone                      // Entry was renamed (or would be, in a dry run)
	RenameNoop                      // New name equals the old one
	RenameTargetExists              // Another entry already has the new name
	RenameFailed                    // The rename itself failed
)

// String returns a string representation of RenameStatus
func (s RenameStatus) String() string {
	switch s {
	case RenameDone:
		return "renamed"
	case RenameNoop:
		return "noop"
	case RenameTargetExists:
		return "conflict"
	case RenameFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 EntryKind classifies an entry for display
type EntryKind int

const (
	KindOther EntryKind = iota
	KindFile
	KindBinaryFile
	KindDirectory
)

// String returns a string representation of EntryKind
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "File"
	case KindBinaryFile:
		return "File (binary)"
	case KindDirectory:
		return "Directory"
	default:
		return "Other"
	}
}

// 📄 Entry is the combined outcome for one collected path
type Entry struct {
	Root         string        // Root the run started from
	OldPath      string        // Path before renaming
	NewPath      string        // Path after renaming (equal to OldPath when unchanged)
	Kind         EntryKind     // What the entry is
	Content      ContentStatus // Content outcome
	ContentErr   error         // Error behind a content failure, if any
	Rename       RenameStatus  // Rename outcome
	RenameErr    error         // Error behind a rename failure, if any
	Replacements int           // Matches rewritten in the content
	DryRun       bool          // Whether nothing was written
}

// RelOldPath returns OldPath relative to Root when possible
func (e Entry) RelOldPath() string {
	return e.rel(e.OldPath)
}

// RelNewPath returns NewPath relative to Root when possible
func (e Entry) RelNewPath() string {
	if e.NewPath == "" {
		return e.RelOldPath()
	}
	return e.rel(e.NewPath)
}

func (e Entry) rel(path string) string {
	if e.Root == "" || e.Root == path {
		return path
	}
	rel, err := filepath.Rel(e.Root, path)
	if err != nil {
		return path
	}
	return rel
}

// Changed reports whether the entry's content or name changed
func (e Entry) Changed() bool {
	return e.Content == ContentChanged || e.Rename == RenameDone
}

// Errors lists the user-facing problems for the entry
func (e Entry) Errors() []string {
	var errs []string
	switch e.Content {
	case ContentTooLarge:
		errs = append(errs, "File size exceeds maximum limit")
	case ContentFailed:
		if e.ContentErr != nil {
			errs = append(errs, e.ContentErr.Error())
		} else {
			errs = append(errs, "content update failed")
		}
	}
	switch e.Rename {
	case RenameTargetExists:
		errs = append(errs, e.RelNewPath()+" (conflict)")
	case RenameFailed:
		errs = append(errs, "OS failed")
	}
	return errs
}
