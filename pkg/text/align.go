package text

import "strings"

// CaseFunc styles target after sample.
type CaseFunc func(sample, target string) string

// Align builds the replacement for one match.
//
// Output token i takes its case from parts[i], or from the last part once the
// parts run out. Gap i reuses seps[i], or the last separator once those run out.
// With no separators at all (a single-token match) the new tokens are joined
// directly and only their case marks the word boundaries.
func Align(parts, seps, tokens []string, matchCase CaseFunc) string {
	if matchCase == nil {
		matchCase = MatchCase
	}

	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && len(seps) > 0 {
			b.WriteString(clamp(seps, i-1))
		}
		b.WriteString(matchCase(clamp(parts, i), tok))
	}
	return b.String()
}

// clamp returns list[i], or the last element when i is past the end.
func clamp(list []string, i int) string {
	if len(list) == 0 {
		return ""
	}
	return list[min(i, len(list)-1)]
}
