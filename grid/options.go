// SPDX-License-Identifier: MIT

// Package grid: functional configuration for DynamicGrid construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - The allocator chosen at construction serves BOTH the spine and every row
//     for the whole lifetime of the grid (Swap moves it together with the storage).
package grid

import "github.com/hashicorp/go-hclog"

// DefaultLoggerName is the sub-logger name used for grid lifecycle events.
const DefaultLoggerName = "grid"

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilAllocator = "grid: WithAllocator: allocator must not be nil"
	panicNilLogger    = "grid: WithLogger: logger must not be nil"
	panicEmptyName    = "grid: WithName: name must not be empty"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option[T any] func(*Options[T])

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option[T]`.
type Options[T any] struct {
	alloc  Allocator[T] // storage source for spine and rows
	logger hclog.Logger // lifecycle events (Trace/Debug)
	name   string       // logger sub-name
}

// WithAllocator substitutes the memory source for the spine and every row.
// Implementation:
//   - Stage 1: reject nil (programmer error).
//   - Stage 2: return a setter that stores the allocator.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The same allocator instance is used for allocation and release; do not
//     share a stateful allocator between goroutines without synchronization.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	if a == nil {
		panic(panicNilAllocator)
	}

	return func(o *Options[T]) { o.alloc = a }
}

// WithLogger routes lifecycle events to l (named via WithName or DefaultLoggerName).
// The default is hclog.NewNullLogger(), so the package is silent unless configured.
func WithLogger[T any](l hclog.Logger) Option[T] {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options[T]) { o.logger = l }
}

// WithName sets the sub-logger name for the grid (default DefaultLoggerName).
func WithName[T any](name string) Option[T] {
	if name == "" {
		panic(panicEmptyName)
	}

	return func(o *Options[T]) { o.name = name }
}

// gatherOptions applies opts over defaults and resolves the named logger.
// Complexity: O(len(opts)).
func gatherOptions[T any](opts ...Option[T]) Options[T] {
	o := Options[T]{
		alloc:  HeapAllocator[T]{},
		logger: hclog.NewNullLogger(),
		name:   DefaultLoggerName,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.logger = o.logger.Named(o.name)

	return o
}
