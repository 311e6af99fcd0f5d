package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlign(t *testing.T) {
	tests := []struct {
		name   string
		parts  []string
		seps   []string
		tokens []string
		want   string
	}{
		{
			name:   "same_count",
			parts:  []string{"USER", "name"},
			seps:   []string{"-"},
			tokens: []string{"account", "id"},
			want:   "ACCOUNT-id",
		},
		{
			name:   "expansion_clamps_case_and_separator",
			parts:  []string{"the", "Url", "IS"},
			seps:   []string{"_", "-"},
			tokens: []string{"the", "uniform", "resource", "is"},
			want:   "the_Uniform-RESOURCE-IS",
		},
		{
			name:   "contraction_drops_extra_separators",
			parts:  []string{"hyper", "text", "markup", "language"},
			seps:   []string{"__", "_", "_"},
			tokens: []string{"html"},
			want:   "html",
		},
		{
			name:   "contraction_to_two",
			parts:  []string{"A", "b", "c"},
			seps:   []string{"-", "_"},
			tokens: []string{"x", "y"},
			want:   "X-y",
		},
		{
			name:   "camel_separator_is_empty",
			parts:  []string{"User", "Name"},
			seps:   []string{""},
			tokens: []string{"account", "id"},
			want:   "AccountId",
		},
		{
			name:   "single_part_joins_directly",
			parts:  []string{"id"},
			tokens: []string{"identification", "number"},
			want:   "identificationnumber",
		},
		{
			name:   "single_part_capitalized",
			parts:  []string{"Id"},
			tokens: []string{"identification", "number"},
			want:   "IdentificationNumber",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Align(tt.parts, tt.seps, tt.tokens, nil))
		})
	}
}

func TestAlign_UsesCaseFunc(t *testing.T) {
	var samples []string
	got := Align([]string{"a", "b"}, []string{"_"}, []string{"x", "y", "z"}, func(sample, target string) string {
		samples = append(samples, sample)
		return target
	})

	assert.Equal(t, "x_y_z", got)
	assert.Equal(t, []string{"a", "b", "b"}, samples)
}
