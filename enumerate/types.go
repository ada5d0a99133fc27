// SPDX-License-Identifier: MIT

// Package enumerate drives an opaque boolean predicate to discover its
// variable set and truth table by observation, without knowing in advance
// how many inputs it reads or in what order. See doc.go for the full
// algorithm description.
package enumerate

import (
	"errors"
	"fmt"
)

// Reader is the handle a predicate under enumeration receives. Read(i)
// must be deterministic within one invocation: calling Read with the same
// index twice in the same invocation returns the same value.
type Reader interface {
	Read(index int) bool
}

// Predicate is the boolean function under enumeration. It must be free of
// externally visible side effects — Run may call it up to 2^N times, in
// any order, across any number of goroutine-free, fully sequential
// invocations.
type Predicate func(Reader) bool

// Row is one recorded predicate invocation: the variables it observed (by
// name, "v[<index>]"), the output it produced, and the order in which
// previously-unseen variables were first read on this particular path.
// Observed may be a strict subset of the variables the registry knows
// about as a whole — a predicate that short-circuits does not read every
// variable on every path.
type Row struct {
	Observed map[string]bool
	Output   bool
	Order    []string
}

// Sentinel errors for Run, matching the project's sentinel-error
// convention.
var (
	// ErrInvocationLimitExceeded is returned when WithMaxInvocations is set
	// and the predicate has not drained its worklist within that many
	// calls. It exists to turn a predicate that violates the purity
	// contract (spec section 1 non-goals) into a reported error instead of
	// an unbounded loop.
	ErrInvocationLimitExceeded = errors.New("enumerate: invocation limit exceeded")
)

// Options configures Run, following the project's functional-options
// idiom (see bfs.Option / dfs.Option in the wider example pack).
type Options struct {
	// MaxInvocations, if > 0, bounds the number of times the predicate may
	// be called before Run gives up and returns
	// ErrInvocationLimitExceeded. Zero (the default) means unbounded.
	MaxInvocations int

	// OnInvocation, if set, is called after each predicate invocation with
	// the 1-based invocation count and the row just recorded. It exists
	// purely for observability (progress reporting over large variable
	// counts) and must not mutate anything Run depends on.
	OnInvocation func(count int, row Row)
}

// Option mutates an Options value.
type Option func(*Options)

// WithMaxInvocations sets a circuit breaker on the number of predicate
// invocations Run will perform.
func WithMaxInvocations(n int) Option {
	return func(o *Options) {
		o.MaxInvocations = n
	}
}

// WithOnInvocation installs a progress-observation hook.
func WithOnInvocation(fn func(count int, row Row)) Option {
	return func(o *Options) {
		o.OnInvocation = fn
	}
}

func resolveOptions(opts []Option) Options {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

func varName(index int) string {
	return fmt.Sprintf("v[%d]", index)
}
