package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func filterFixture() []Token {
	return []Token{
		{Name: "glass.blur.24", Value: "blur(24px)", Description: "Backplate blur.", UsedBy: []string{"Float Card", "Halo Input"}},
		{Name: "glass.opacity.65", Value: "0.65", Description: "Material density.", UsedBy: []string{"Float Card"}},
		{Name: "accent.aqua", Value: "#7ee5ff", Description: "Primary action + focus highlight.", UsedBy: []string{"Iced Button", "Focus ring"}},
		{Name: "accent.coral", Value: "#ff9f7a", Description: "Secondary accent for warmth.", UsedBy: []string{"Focus ring"}},
		{Name: "flat", Value: "0", Description: "No dot in the name."},
	}
}

func names(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "zero criteria matches everything",
			criteria: Criteria{},
			want:     []string{"glass.blur.24", "glass.opacity.65", "accent.aqua", "accent.coral", "flat"},
		},
		{
			name:     "all sentinels match everything",
			criteria: Criteria{Group: FilterAll, UsedBy: FilterAll},
			want:     []string{"glass.blur.24", "glass.opacity.65", "accent.aqua", "accent.coral", "flat"},
		},
		{
			name:     "group",
			criteria: Criteria{Group: "accent"},
			want:     []string{"accent.aqua", "accent.coral"},
		},
		{
			name:     "dotless token has empty group",
			criteria: Criteria{Group: ""},
			want:     []string{"glass.blur.24", "glass.opacity.65", "accent.aqua", "accent.coral", "flat"},
		},
		{
			name:     "used by",
			criteria: Criteria{UsedBy: "Focus ring"},
			want:     []string{"accent.aqua", "accent.coral"},
		},
		{
			name:     "query is case insensitive",
			criteria: Criteria{Query: "CORAL"},
			want:     []string{"accent.coral"},
		},
		{
			name:     "query matches values",
			criteria: Criteria{Query: "#7ee5ff"},
			want:     []string{"accent.aqua"},
		},
		{
			name:     "query matches used by tags",
			criteria: Criteria{Query: "halo"},
			want:     []string{"glass.blur.24"},
		},
		{
			name:     "criteria combine with AND",
			criteria: Criteria{Group: "accent", UsedBy: "Focus ring", Query: "warmth"},
			want:     []string{"accent.coral"},
		},
		{
			name:     "no matches",
			criteria: Criteria{Query: "zzz-not-here"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(filterFixture(), tt.criteria)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestGroups(t *testing.T) {
	got := Groups(filterFixture())

	// "flat" has no dot; its empty group is not offered as a choice
	// because an empty criteria group means no restriction.
	assert.Equal(t, []string{"accent", "glass"}, got)
}

func TestUsedByTags(t *testing.T) {
	got := UsedByTags(filterFixture())

	assert.Equal(t, []string{"Float Card", "Focus ring", "Halo Input", "Iced Button"}, got)
}

func TestProperty_FilterIdempotentAndOrderPreserving(t *testing.T) {
	base := filterFixture()
	queries := []string{"", "a", "glass", "#", "ring", "zzz"}
	groups := []string{"", FilterAll, "glass", "accent", "nope"}
	tags := []string{"", FilterAll, "Focus ring", "Float Card", "nope"}

	rapid.Check(t, func(rt *rapid.T) {
		c := Criteria{
			Query:  rapid.SampledFrom(queries).Draw(rt, "query"),
			Group:  rapid.SampledFrom(groups).Draw(rt, "group"),
			UsedBy: rapid.SampledFrom(tags).Draw(rt, "usedBy"),
		}

		once := Filter(base, c)
		twice := Filter(once, c)

		if len(once) != len(twice) {
			rt.Fatalf("filter not idempotent: %d vs %d", len(once), len(twice))
		}

		// Result order must follow base order.
		idx := -1
		for _, tok := range once {
			found := -1
			for i, b := range base {
				if b.Name == tok.Name {
					found = i
					break
				}
			}
			if found <= idx {
				rt.Fatalf("order not preserved at %s", tok.Name)
			}
			idx = found
		}
	})
}
