// Package ladder provides tunable options and error definitions for the
// word-ladder search.
package ladder

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for ladder search. The wrapped message carries the
// offending word(s); match with errors.Is.
var (
	// ErrCorpusNil is returned if a nil corpus pointer is passed.
	ErrCorpusNil = errors.New("ladder: corpus is nil")

	// ErrUnequalLength is returned when the start and end words differ in
	// rune length; no search is attempted.
	ErrUnequalLength = errors.New("ladder: start and end words differ in length")

	// ErrNotInDictionary is returned when either input word is absent from
	// the length-filtered dictionary; no search is attempted. The start
	// word is checked before the end word.
	ErrNotInDictionary = errors.New("ladder: word not in dictionary")

	// ErrNoPath is returned when both words are valid dictionary members
	// but no substitution chain connects them.
	ErrNoPath = errors.New("ladder: no transformation path exists")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")
)

// Option configures ShortestPath behavior via functional arguments.
// If an Option is invalid (e.g. negative step limit), it is recorded
// internally and surfaced as ErrOptionViolation when ShortestPath runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// OnEnqueue is called when a word joins the frontier, with its depth
	// (substitution steps) from the start word.
	OnEnqueue func(word string, depth int)

	// OnDequeue is called immediately before a word is expanded.
	OnDequeue func(word string, depth int)

	// MaxSteps, if > 0, bounds the ladder at that many substitution steps.
	// A value of 0 explicitly disables any limit.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no step limit (MaxSteps == 0)
//   - no-op hooks (OnEnqueue, OnDequeue)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
		MaxSteps:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run when a word joins the frontier.
func WithOnEnqueue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run before a word is expanded.
func WithOnDequeue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxSteps bounds the ladder length in substitution steps.
//
//	n > 0: ladders longer than n steps are not explored
//	n == 0: explicit "no limit"
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no limit"
			o.MaxSteps = 0
		default:
			o.MaxSteps = n
		}
	}
}
