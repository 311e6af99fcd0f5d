package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchCase returns target styled after sample:
//   - sample all upper (with at least one cased letter): target upper-cased
//   - sample starts upper: target with its first letter upper-cased
//   - otherwise: target with its first letter lower-cased
//
// Only the first letter of target is touched in the last two cases. Samples
// without letters (digits) fall through to the lower-case rule.
func MatchCase(sample, target string) string {
	if target == "" {
		return target
	}
	if isUpper(sample) {
		return strings.ToUpper(target)
	}

	head, size := utf8.DecodeRuneInString(target)
	first, _ := utf8.DecodeRuneInString(sample)
	if sample != "" && unicode.IsUpper(first) {
		return string(unicode.ToUpper(head)) + target[size:]
	}
	return string(unicode.ToLower(head)) + target[size:]
}

func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

type casePair struct {
	sample string
	target string
}

// caseCache memoizes MatchCase for a single replacer. The set of targets is
// bounded by the new spec, so the cache only grows with distinct samples.
type caseCache struct {
	entries map[casePair]string
}

func newCaseCache() *caseCache {
	return &caseCache{entries: make(map[casePair]string)}
}

func (c *caseCache) apply(sample, target string) string {
	key := casePair{sample: sample, target: target}
	if out, ok := c.entries[key]; ok {
		return out
	}
	out := MatchCase(sample, target)
	c.entries[key] = out
	return out
}
