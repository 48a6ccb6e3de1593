package hamming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wordladder/hamming"
)

// TestDistance covers identical words, single and multiple substitutions,
// and the zip semantics for words of unequal length.
func TestDistance(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "cat", "cat", 0},
		{"one substitution", "cat", "cot", 1},
		{"two substitutions", "cat", "cog", 2},
		{"all positions differ", "cat", "dog", 3},
		{"empty words", "", "", 0},
		{"tail beyond shorter is ignored", "cat", "cart", 1},
		{"one side empty", "cat", "", 0},
		{"symmetric", "dog", "cat", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hamming.Distance(tc.a, tc.b))
		})
	}
}

// TestDistance_Unicode verifies positions are counted per rune, not per byte.
func TestDistance_Unicode(t *testing.T) {
	assert.Equal(t, 1, hamming.Distance("héllo", "hallo"), "é vs a is one position")
	assert.Equal(t, 0, hamming.Distance("héllo", "héllo"))
	assert.Equal(t, 2, hamming.Distance("über", "ober"))
}

// TestNeighbors verifies the distance-1 predicate against Distance.
func TestNeighbors(t *testing.T) {
	assert.True(t, hamming.Neighbors("cat", "cot"))
	assert.True(t, hamming.Neighbors("cot", "cog"))
	assert.False(t, hamming.Neighbors("cat", "cat"), "identical words are not neighbors")
	assert.False(t, hamming.Neighbors("cat", "dog"), "distance 3 is not a neighbor")
	assert.False(t, hamming.Neighbors("cat", "cog"), "early exit at second mismatch")
	assert.True(t, hamming.Neighbors("héllo", "hallo"))
}
