// Package ladder finds the shortest word ladder between two equal-length
// words: a transformation sequence where each step substitutes exactly one
// character and every intermediate word belongs to the dictionary.
//
// What
//
//   - Validates the input pair against a corpus.Corpus: equal rune length,
//     then membership of start, then membership of end.
//   - Runs a level-order (breadth-first) search over the length-filtered
//     working set, discovering edges on demand — no precomputed adjacency.
//   - Returns the ladder as an ordered []string from start to end, or a
//     typed failure carrying the offending word(s).
//   - Supports functional hooks at two stages:
//   - OnEnqueue (a word joins the frontier)
//   - OnDequeue (a word is about to be expanded)
//   - Honors a MaxSteps limit (n>0) or explicit "no limit" (n==0), and
//     context cancellation via WithContext.
//
// Why
//
//   - Level-order traversal guarantees the first ladder reaching the end
//     word is of minimal length among all substitution chains.
//   - The working set doubles as the unvisited set: each word is removed
//     exactly once, on dequeue, which both terminates the search and prunes
//     every later neighbor scan.
//
// Determinism
//
//	The working set scans in lexicographic order, so when several minimal
//	ladders exist the same one is returned on every run.
//
// Complexity (D = filtered dictionary size, L = word length)
//
//   - Time:   O(D² · L)  (each word is removed once and scanned against at
//     most D others before removal)
//   - Memory: O(D)       (frontier, parent links, working set)
//
// Usage
//
//	c := corpus.FromWords("cat", "cot", "cog", "dog", "bat", "bad")
//	path, err := ladder.ShortestPath(c, "cat", "dog")
//	if err != nil {
//	    // handle one of:
//	    // ErrCorpusNil, ErrUnequalLength, ErrNotInDictionary,
//	    // ErrNoPath, ErrOptionViolation, or a context error
//	}
//	fmt.Println(path) // [cat cot cog dog]
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no step limit.
//   - WithContext(ctx):   set a custom context for cancellation.
//   - WithMaxSteps(n):    stop exploring ladders longer than n steps (>0).
//   - WithOnEnqueue(fn):  hook when a word joins the frontier.
//   - WithOnDequeue(fn):  hook before a word is expanded.
//
// Errors
//
//   - ErrCorpusNil        if the corpus pointer is nil.
//   - ErrUnequalLength    if start and end differ in rune length.
//   - ErrNotInDictionary  if either word is absent at the shared length
//     (start checked first).
//   - ErrNoPath           if no substitution chain connects the words.
//   - ErrOptionViolation  if an invalid Option is supplied (e.g. negative
//     MaxSteps).
package ladder
