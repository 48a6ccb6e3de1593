// Package hamming computes the substitution distance between two words:
// the number of character positions at which they differ.
//
// Words are compared rune by rune, so multi-byte UTF-8 characters count as
// single positions. The two words are zipped; any tail beyond the shorter
// word is ignored, so callers that require strict length equality must
// validate it themselves (ladder.ShortestPath does).
package hamming

import "unicode/utf8"

// Distance returns the number of rune positions at which a and b differ.
// Pure and deterministic, O(min(len(a), len(b))) time, zero allocations.
func Distance(a, b string) int {
	var d int
	for len(a) > 0 && len(b) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			d++
		}
		a, b = a[na:], b[nb:]
	}
	return d
}

// Neighbors reports whether a single substitution transforms a into b,
// i.e. Distance(a, b) == 1. It exits at the second mismatch rather than
// counting to the end; the ladder search calls this once per remaining
// dictionary word on every expansion.
func Neighbors(a, b string) bool {
	var d int
	for len(a) > 0 && len(b) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			d++
			if d > 1 {
				return false
			}
		}
		a, b = a[na:], b[nb:]
	}
	return d == 1
}
