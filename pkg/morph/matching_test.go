package morph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func matchWords(source, target string) []SurvivorPair {
	src := []rune(source)
	tgt := []rune(target)
	return matchSurvivors(resolveAlignment(src, tgt), src, tgt)
}

func TestMatchSurvivors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		target string
		want   []SurvivorPair
	}{
		{
			name:   "identity",
			source: "cat",
			target: "cat",
			want: []SurvivorPair{
				{SourceIndex: 0, TargetIndex: 0, Char: "c"},
				{SourceIndex: 1, TargetIndex: 1, Char: "a"},
				{SourceIndex: 2, TargetIndex: 2, Char: "t"},
			},
		},
		{
			name:   "adjacent transposition pairs by distance",
			source: "recieve",
			target: "receive",
			want: []SurvivorPair{
				{SourceIndex: 0, TargetIndex: 0, Char: "r"},
				{SourceIndex: 1, TargetIndex: 1, Char: "e"},
				{SourceIndex: 2, TargetIndex: 2, Char: "c"},
				{SourceIndex: 4, TargetIndex: 3, Char: "e"},
				{SourceIndex: 3, TargetIndex: 4, Char: "i"},
				{SourceIndex: 5, TargetIndex: 5, Char: "v"},
				{SourceIndex: 6, TargetIndex: 6, Char: "e"},
			},
		},
		{
			name:   "survivors skip the replaced slot",
			source: "cat",
			target: "cot",
			want: []SurvivorPair{
				{SourceIndex: 0, TargetIndex: 0, Char: "c"},
				{SourceIndex: 2, TargetIndex: 2, Char: "t"},
			},
		},
		{
			name:   "repeated rune prefers the cheaper slot",
			source: "aa",
			target: "axa",
			want: []SurvivorPair{
				{SourceIndex: 0, TargetIndex: 0, Char: "a"},
				{SourceIndex: 1, TargetIndex: 2, Char: "a"},
			},
		},
		{
			name:   "no survivors for disjoint words",
			source: "abc",
			target: "xyz",
			want:   nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := matchWords(tc.source, tc.target)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("survivor pairs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// The matching must be deterministic even though rune buckets live in maps:
// the result is always sorted by target index and identical across runs.
func TestMatchSurvivorsDeterministic(t *testing.T) {
	first := matchWords("repetative", "repetitive")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, matchWords("repetative", "repetitive"))
	}
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].TargetIndex, first[i].TargetIndex)
	}
}

// Every pair must actually carry the same rune on both sides.
func TestMatchSurvivorsCharsAgree(t *testing.T) {
	words := [][2]string{
		{"recieve", "receive"},
		{"banana", "bandana"},
		{"hello", "helo"},
		{"repetative", "repetitive"},
	}
	for _, w := range words {
		src, tgt := []rune(w[0]), []rune(w[1])
		for _, p := range matchWords(w[0], w[1]) {
			assert.Equal(t, p.Char, string(src[p.SourceIndex]), "%s -> %s source side", w[0], w[1])
			assert.Equal(t, p.Char, string(tgt[p.TargetIndex]), "%s -> %s target side", w[0], w[1])
		}
	}
}
