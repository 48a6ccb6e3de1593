// Package wordladder finds the shortest transformation sequence between two
// words of equal length, where each step changes exactly one character and
// every intermediate word belongs to a fixed dictionary.
//
// 🚀 What is wordladder?
//
//	A small, focused library that brings together:
//		• corpus/  — word-list loading, length filtering and the working word set
//		• hamming/ — substitution distance between equal-length words
//		• ladder/  — the breadth-first ladder search and path reconstruction
//
// ✨ Why choose wordladder?
//
//   - Minimal API, clear naming — one call, ladder.ShortestPath, does the work
//   - Deterministic results — the working set scans lexicographically, so ties
//     between equally short ladders resolve the same way on every run
//   - Pure Go — no cgo, no hidden deps
//   - Extensible — observation hooks (OnEnqueue, OnDequeue) and cancellation
//     via context for custom logic
//
// Quick example:
//
//	c := corpus.FromWords("cat", "cot", "cog", "dog")
//	path, err := ladder.ShortestPath(c, "cat", "dog")
//	// path == []string{"cat", "cot", "cog", "dog"}
//
// A thin CLI lives under cmd/wordladder; all logic stays in the library
// packages above.
//
//	go get github.com/katalvlaran/wordladder
package wordladder
