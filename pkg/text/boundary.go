package text

import (
	"strings"

	"github.com/dlclark/regexp2"
	"gitlab.com/tozd/go/errors"
)

// SpecSeparator splits a replacement spec into tokens ("user/name").
const SpecSeparator = "/"

// BoundaryPattern matches the gap between two tokens of an identifier: a run of
// '_' or '-' characters, or the zero-width step from a lowercase letter or digit
// to an uppercase letter. Like the rest of the pattern it is compiled with
// IgnoreCase, so "username" and "USERNAME" match user/name as well.
const BoundaryPattern = `([_-]+|(?<=[a-z0-9])(?=[A-Z]))`

// SplitSpec splits a spec into its tokens. Every token must be non-empty.
func SplitSpec(spec string) ([]string, error) {
	if spec == "" {
		return nil, errors.Errorf("%w: spec is empty", ErrEmptySpec)
	}
	tokens := strings.Split(spec, SpecSeparator)
	for i, tok := range tokens {
		if tok == "" {
			return nil, errors.Errorf("%w: token %d of %q is empty", ErrEmptySpec, i, spec)
		}
	}
	return tokens, nil
}

// compilePattern builds (tok0)B(tok1)B...(tokN-1), case-insensitive, where each
// token and each boundary is its own capture group.
func compilePattern(tokens []string) (*regexp2.Regexp, error) {
	groups := make([]string, len(tokens))
	for i, tok := range tokens {
		groups[i] = "(" + regexp2.Escape(tok) + ")"
	}

	re, err := regexp2.Compile(strings.Join(groups, BoundaryPattern), regexp2.IgnoreCase)
	if err != nil {
		return nil, errors.Errorf("compiling token pattern: %w", err)
	}
	return re, nil
}
