package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEmptyCorpus is returned when the input contains no word tokens.
var ErrEmptyCorpus = errors.New("corpus: word list contains no words")

// Corpus is a read-only collection of candidate words. Build it once and
// share it freely: nothing mutates a Corpus after construction, so it is
// safe for concurrent readers without locking.
type Corpus struct {
	words []string
}

// New reads whitespace-separated word tokens from r.
// Returns ErrEmptyCorpus if r yields no tokens.
func New(r io.Reader) (*Corpus, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corpus: read word list: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmptyCorpus
	}

	return &Corpus{words: words}, nil
}

// FromWords builds a Corpus from an explicit word slice. Intended for
// synthetic dictionaries in tests and examples; the slice is copied, so the
// caller may keep mutating its own copy.
func FromWords(words ...string) *Corpus {
	c := &Corpus{words: make([]string, len(words))}
	copy(c.words, words)
	return c
}

// LoadFile reads a whitespace-separated word list from path.
func LoadFile(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open word list: %w", err)
	}
	defer func() {
		// Best-effort close for a read-only word list.
		_ = f.Close()
	}()

	return New(f)
}

// Size returns the number of raw tokens in the corpus, duplicates included.
func (c *Corpus) Size() int { return len(c.words) }
