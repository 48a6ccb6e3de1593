// Package corpus loads the word list backing ladder searches and derives
// the per-search working set from it.
//
// What
//
//   - Corpus: a read-only collection of candidate words, built once from an
//     io.Reader (whitespace-separated tokens), a file, or an explicit slice,
//     then shared by any number of searches.
//   - WordSet: the working dictionary for a single search — the deduplicated
//     subset of corpus words of one fixed rune length, supporting membership
//     tests, removal, and lexicographic scanning.
//
// Why
//
//   - The search engine discovers graph edges on demand by scanning the
//     remaining words; it needs a set it can mutate freely without touching
//     the corpus it was derived from.
//   - A Corpus is an explicit value rather than lazily-initialized global
//     state, so initialization happens at a well-defined point and the value
//     is safe to share between concurrent searches — nothing mutates it
//     after construction, and each search builds its own WordSet.
//
// Determinism
//
//	WordSet scans words in lexicographic order, stable under removal. When
//	several shortest ladders exist, the same one is returned on every run.
//
// Usage
//
//	c, err := corpus.LoadFile("/usr/share/dict/words")
//	if err != nil {
//	    // handle corpus.ErrEmptyCorpus or the underlying I/O error
//	}
//	set := c.WordSet(3) // every distinct three-letter word
package corpus
