package text

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestReplacerProperties(t *testing.T) {
	r, err := NewCaseAwareReplacer("user/name", "account/id")
	require.NoError(t, err)

	properties := gopter.NewProperties(nil)

	// Property: text without the first old token is returned unchanged
	properties.Property("identity without old tokens", prop.ForAll(
		func(s string) bool {
			if strings.Contains(strings.ToLower(s), "user") {
				return true
			}
			out, err := r.ReplaceString(s)
			return err == nil && out == s
		},
		gen.AnyString(),
	))

	// Property: an upper-case sample always yields an upper-case result
	properties.Property("upper sample gives upper result", prop.ForAll(
		func(sample, target string) bool {
			return MatchCase(strings.ToUpper(sample)+"X", target) == strings.ToUpper(target)
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	// Property: non-upper samples only ever change the first rune of target
	properties.Property("remainder of target is untouched", prop.ForAll(
		func(sample, target string) bool {
			if isUpper(sample) || target == "" {
				return true
			}
			out := []rune(MatchCase(sample, target))
			in := []rune(target)
			return len(out) == len(in) && string(out[1:]) == string(in[1:])
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	// Property: the first rune follows the sample's first rune
	properties.Property("first rune follows sample", prop.ForAll(
		func(sample, target string) bool {
			if sample == "" || target == "" || isUpper(sample) {
				return true
			}
			first := []rune(MatchCase(sample, target))[0]
			if unicode.IsUpper([]rune(sample)[0]) {
				return first == unicode.ToUpper([]rune(target)[0])
			}
			return first == unicode.ToLower([]rune(target)[0])
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
