package text

import (
	"bytes"
	"context"
	"io"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var _ TextReplacer = (*CaseAwareReplacer)(nil)

// CaseAwareReplacer replaces an old token sequence with a new one wherever it
// appears as an identifier, in any of snake, kebab, camel or upper styles.
//
// A replacer is built once per (old, new) pair and reused for every buffer and
// path segment. It records every distinct (matched text -> generated text) pair
// it produces. It is not safe for concurrent use.
type CaseAwareReplacer struct {
	oldSpec   string
	newSpec   string
	oldTokens []string
	newTokens []string
	delta     int

	pattern *regexp2.Regexp
	cases   *caseCache

	replacements map[string]string
}

// NewCaseAwareReplacer creates a replacer for the given "/"-delimited specs
func NewCaseAwareReplacer(oldSpec, newSpec string) (*CaseAwareReplacer, error) {
	oldTokens, err := SplitSpec(oldSpec)
	if err != nil {
		return nil, errors.Errorf("parsing old spec: %w", err)
	}
	newTokens, err := SplitSpec(newSpec)
	if err != nil {
		return nil, errors.Errorf("parsing new spec: %w", err)
	}

	pattern, err := compilePattern(oldTokens)
	if err != nil {
		return nil, err
	}

	return &CaseAwareReplacer{
		oldSpec:      oldSpec,
		newSpec:      newSpec,
		oldTokens:    oldTokens,
		newTokens:    newTokens,
		delta:        tokenLength(newTokens) - tokenLength(oldTokens),
		pattern:      pattern,
		cases:        newCaseCache(),
		replacements: make(map[string]string),
	}, nil
}

func tokenLength(tokens []string) int {
	n := 0
	for _, tok := range tokens {
		n += utf8.RuneCountInString(tok)
	}
	return n
}

// Identical reports whether the old and new specs are the same string
func (r *CaseAwareReplacer) Identical() bool {
	return r.oldSpec == r.newSpec
}

// Delta is the total token length of the new spec minus that of the old one
func (r *CaseAwareReplacer) Delta() int {
	return r.delta
}

// OldTokens returns a copy of the old spec tokens
func (r *CaseAwareReplacer) OldTokens() []string {
	return slices.Clone(r.oldTokens)
}

// NewTokens returns a copy of the new spec tokens
func (r *CaseAwareReplacer) NewTokens() []string {
	return slices.Clone(r.newTokens)
}

// ReplaceString implements TextReplacer.ReplaceString
func (r *CaseAwareReplacer) ReplaceString(s string) (string, error) {
	out, _, err := r.replace(s)
	return out, err
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *CaseAwareReplacer) ReplaceText(ctx context.Context, content io.Reader) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	modified, count, err := r.replace(string(originalContent))
	if err != nil {
		return nil, err
	}

	result := &ReplacementResult{
		OriginalContent:  originalContent,
		ModifiedContent:  []byte(modified),
		ReplacementCount: count,
	}
	result.WasModified = !bytes.Equal(result.OriginalContent, result.ModifiedContent)

	zerolog.Ctx(ctx).Trace().
		Int("matches", count).
		Bool("modified", result.WasModified).
		Msg("replaced text")

	return result, nil
}

// FindMatches returns every non-overlapping match in s, left to right. It does
// not touch the replacement log.
func (r *CaseAwareReplacer) FindMatches(s string) ([]Match, error) {
	var matches []Match
	m, err := r.pattern.FindStringMatch(s)
	for ; m != nil && err == nil; m, err = r.pattern.FindNextMatch(m) {
		matches = append(matches, r.newMatch(m))
	}
	if err != nil {
		return nil, errors.Errorf("scanning text: %w", err)
	}
	return matches, nil
}

// Replacements returns a snapshot of the replacement log
func (r *CaseAwareReplacer) Replacements() map[string]string {
	return maps.Clone(r.replacements)
}

// ReplacementLog returns the replacement log sorted by matched text
func (r *CaseAwareReplacer) ReplacementLog() []Replacement {
	log := make([]Replacement, 0, len(r.replacements))
	for _, old := range slices.Sorted(maps.Keys(r.replacements)) {
		log = append(log, Replacement{Old: old, New: r.replacements[old]})
	}
	return log
}

func (r *CaseAwareReplacer) replace(s string) (string, int, error) {
	count := 0
	out, err := r.pattern.ReplaceFunc(s, func(m regexp2.Match) string {
		count++
		return r.rewrite(r.newMatch(&m))
	}, -1, -1)
	if err != nil {
		return "", 0, errors.Errorf("scanning text: %w", err)
	}
	return out, count, nil
}

// rewrite generates the replacement for one match and records it
func (r *CaseAwareReplacer) rewrite(m Match) string {
	out := Align(m.Tokens, m.Separators, r.newTokens, r.cases.apply)
	r.replacements[m.Text] = out
	return out
}

// newMatch splits the capture groups of m: odd groups are tokens, even groups
// (from 2) are separators.
func (r *CaseAwareReplacer) newMatch(m *regexp2.Match) Match {
	groups := m.Groups()
	match := Match{
		Text:   m.String(),
		Index:  m.Index,
		Tokens: make([]string, 0, len(r.oldTokens)),
	}
	if len(r.oldTokens) > 1 {
		match.Separators = make([]string, 0, len(r.oldTokens)-1)
	}
	for i := 1; i < len(groups); i++ {
		if i%2 == 1 {
			match.Tokens = append(match.Tokens, groups[i].String())
		} else {
			match.Separators = append(match.Separators, groups[i].String())
		}
	}
	return match
}

// String returns "old -> new" using the raw specs
func (r *CaseAwareReplacer) String() string {
	return strings.Join(r.oldTokens, SpecSeparator) + " -> " + strings.Join(r.newTokens, SpecSeparator)
}
