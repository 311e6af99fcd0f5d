package text

import (
	"context"
	"io"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrEmptySpec is returned when a spec has no tokens or an empty token.
	ErrEmptySpec = errors.Base("empty replacement spec")

	// ErrIdenticalSpec is returned when old and new specs are the same string.
	ErrIdenticalSpec = errors.Base("old and new specs are identical")
)

// Match is one occurrence of the old tokens found in a text
type Match struct {
	// Text is the full matched span, as found in the source
	Text string

	// Index is the rune offset of the span in the scanned text
	Index int

	// Tokens are the captured tokens with their original casing
	Tokens []string

	// Separators are the captured boundaries between tokens; one fewer than
	// Tokens, and empty for single-token specs. A camel-case boundary is "".
	Separators []string
}

// Replacement is one entry of the replacement log
type Replacement struct {
	Old string
	New string
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if the output differs from the input
	WasModified bool

	// ReplacementCount is the number of matches rewritten
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText rewrites every match in content
	ReplaceText(ctx context.Context, content io.Reader) (*ReplacementResult, error)

	// ReplaceString rewrites every match in s
	ReplaceString(s string) (string, error)
}
