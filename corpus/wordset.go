package corpus

import (
	"sort"
	"unicode/utf8"
)

// WordSet is the working dictionary for a single search: the deduplicated
// set of corpus words of one fixed rune length. The search engine uses it
// simultaneously as the unvisited set and the edge-discovery source,
// removing each word exactly once when it is dequeued.
//
// Scan order is lexicographic and does not shift as words are removed, so
// ties between equally short ladders resolve identically on every run.
type WordSet struct {
	order   []string            // sorted, fixed at construction
	members map[string]struct{} // current membership
}

// WordSet returns the set of corpus words whose rune length equals length,
// duplicates collapsed. The set is freshly built on every call — each
// search owns and mutates its own copy while the Corpus stays untouched.
func (c *Corpus) WordSet(length int) *WordSet {
	members := make(map[string]struct{}, len(c.words))
	order := make([]string, 0, len(c.words))
	for _, w := range c.words {
		if utf8.RuneCountInString(w) != length {
			continue
		}
		if _, dup := members[w]; dup {
			continue
		}
		members[w] = struct{}{}
		order = append(order, w)
	}
	sort.Strings(order)

	return &WordSet{order: order, members: members}
}

// Contains reports whether word is still in the set.
func (s *WordSet) Contains(word string) bool {
	_, ok := s.members[word]
	return ok
}

// Remove deletes word from the set. Removing an absent word is a no-op.
func (s *WordSet) Remove(word string) {
	delete(s.members, word)
}

// Len returns the number of words remaining in the set.
func (s *WordSet) Len() int { return len(s.members) }

// Scan calls fn for each remaining word in lexicographic order, stopping
// early when fn returns false. Words removed before the scan reaches them
// are skipped.
func (s *WordSet) Scan(fn func(word string) bool) {
	for _, w := range s.order {
		if _, ok := s.members[w]; !ok {
			continue
		}
		if !fn(w) {
			return
		}
	}
}

// Words returns the remaining words in lexicographic order.
func (s *WordSet) Words() []string {
	out := make([]string, 0, len(s.members))
	s.Scan(func(w string) bool {
		out = append(out, w)
		return true
	})

	return out
}
