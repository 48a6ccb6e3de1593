// Package ladder performs breadth-first search over a length-filtered word
// set, returning the shortest one-substitution-at-a-time transformation
// between two words.
package ladder

import (
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/wordladder/corpus"
	"github.com/katalvlaran/wordladder/hamming"
)

// queueItem pairs a frontier word with its depth (steps from the start).
type queueItem struct {
	word  string
	depth int
}

// walker encapsulates mutable search state for one ShortestPath call.
type walker struct {
	dict   *corpus.WordSet
	opts   Options
	queue  []queueItem
	parent map[string]string // child word → discovering word; root absent
	end    string
}

// ShortestPath finds the shortest word ladder from start to end, applying
// any number of functional Options. Every step changes exactly one
// character and every intermediate word is a member of c at the shared
// length. Traversal is strictly level-order, so the first ladder reaching
// end is of minimal length — though not necessarily the only one that
// short; ties resolve by the working set's lexicographic scan order.
//
// Returns ErrCorpusNil or ErrOptionViolation for invalid input,
// ErrUnequalLength or ErrNotInDictionary when validation fails,
// ErrNoPath when the frontier exhausts without reaching end, or the
// context's error on cancellation.
func ShortestPath(c *corpus.Corpus, start, end string, opts ...Option) ([]string, error) {
	if c == nil {
		return nil, ErrCorpusNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validation, short-circuiting on first failure: equal length, then
	// start membership, then end membership.
	length := utf8.RuneCountInString(start)
	if length != utf8.RuneCountInString(end) {
		return nil, fmt.Errorf("%w: %q vs %q", ErrUnequalLength, start, end)
	}
	dict := c.WordSet(length)
	if !dict.Contains(start) {
		return nil, fmt.Errorf("%w: %q", ErrNotInDictionary, start)
	}
	if !dict.Contains(end) {
		return nil, fmt.Errorf("%w: %q", ErrNotInDictionary, end)
	}

	// Degenerate ladder: nothing to search.
	if start == end {
		return []string{start}, nil
	}

	w := &walker{
		dict:   dict,
		opts:   o,
		queue:  make([]queueItem, 0, dict.Len()),
		parent: make(map[string]string, dict.Len()),
		end:    end,
	}
	// Seed the frontier with the start word (no parent)
	w.enqueue(start, 0)

	path, err := w.loop()
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, fmt.Errorf("%w: %q -> %q", ErrNoPath, start, end)
	}

	return path, nil
}

// enqueue fires the OnEnqueue hook and appends word to the back of the
// frontier. The discovering parent, if any, has already been recorded.
func (w *walker) enqueue(word string, depth int) {
	w.opts.OnEnqueue(word, depth)
	w.queue = append(w.queue, queueItem{word: word, depth: depth})
}

// loop processes the frontier until the end word is discovered, the queue
// empties, or the context is cancelled. Returns (nil, nil) on exhaustion.
func (w *walker) loop() ([]string, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()

		// Removing the dequeued word splits the set into visited and
		// unvisited, exactly once per word. A removed word can never be
		// rediscovered, which bounds the search, and a word is never
		// scanned as its own neighbor.
		w.dict.Remove(item.word)

		nextDepth := item.depth + 1
		if w.opts.MaxSteps > 0 && nextDepth > w.opts.MaxSteps {
			continue
		}

		if path := w.expand(item.word, nextDepth); path != nil {
			return path, nil
		}
	}

	return nil, nil
}

// dequeue pops the head of the frontier and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.word, item.depth)

	return item
}

// expand scans the remaining dictionary for words one substitution away
// from word and enqueues each newly discovered neighbor at depth. If the
// end word turns up, the finished ladder is returned and the scan stops;
// otherwise expand returns nil.
func (w *walker) expand(word string, depth int) []string {
	var path []string
	w.dict.Scan(func(cand string) bool {
		if !hamming.Neighbors(word, cand) {
			return true
		}
		if _, seen := w.parent[cand]; seen {
			// Already discovered at this or an earlier level.
			return true
		}
		w.parent[cand] = word

		if cand == w.end {
			// Level-order traversal: the first discovery of end closes a
			// minimal ladder. Walk the parent links back to the start.
			path = w.pathTo(cand)
			return false
		}
		w.enqueue(cand, depth)

		return true
	})

	return path
}

// pathTo collects the words from dest up the parent links to the start,
// then reverses them so the ladder reads start → dest.
func (w *walker) pathTo(dest string) []string {
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
