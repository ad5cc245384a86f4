// Package sequence provides single-pass, one-directional traversal over a
// possibly unbounded source of values, together with lazily-evaluated views
// (Skip, Take, Where) and eager, streaming algorithms (SkipLast, TakeLast,
// Split, Map, Filter).
//
// A Cursor is consumed exactly once; a Sequence hands out Cursors. One-shot
// sequences (anything wrapping an external resource or another cursor) make
// no guarantee that two Cursor calls observe consistent results.
package sequence

// Cursor is a single-use, stateful handle that yields the next element or
// reports end-of-data. Once Move returns false, every later call on the same
// instance returns false. A Cursor is single-owner and must not be shared
// between goroutines.
type Cursor[V any] interface {
	Move() (V, bool)
}

// Sequence produces Cursors over its elements. UnderestimatedCount is a
// cheap, non-destructive lower bound on the element count, used only to
// pre-size result buffers.
type Sequence[V any] interface {
	Cursor() Cursor[V]

	UnderestimatedCount() int
}

// ContiguousStorage is implemented by sequences whose elements live in a
// single backing slice. WithContiguousStorage runs body against that slice
// and returns true, or returns false without calling body when the sequence
// has no contiguous backing.
type ContiguousStorage[V any] interface {
	WithContiguousStorage(body func([]V)) bool
}

// EquatableContainer is implemented by sequences with faster-than-linear
// membership checks. ok reports whether the sequence answered at all.
type EquatableContainer[V any] interface {
	ContainsEquatable(v V) (found bool, ok bool)
}
