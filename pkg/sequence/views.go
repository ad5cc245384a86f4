package sequence

import "github.com/cockroachdb/errors"

// Skip returns a lazy view over s without its first n elements. The view
// owns a single cursor into s: repeated Cursor calls on the view share the
// same draining progress. Skipping is deferred until the view is advanced.
//
// Skip on a view that is already a skip view does not nest; the two limits
// merge into one view over the original inner cursor, so Skip(Skip(s, a), b)
// costs the same as Skip(s, a+b).
func Skip[V any](s Sequence[V], n int) (Sequence[V], error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "Skip(%d)", n)
	}
	if n == 0 {
		return s, nil
	}

	if view, ok := s.(*skipSequence[V]); ok {
		return &skipSequence[V]{
			in:      view.in,
			limit:   view.limit + n,
			dropped: view.dropped,
			hint:    maxInt(0, view.hint-n),
		}, nil
	}

	return &skipSequence[V]{
		in:    s.Cursor(),
		limit: n,
		hint:  maxInt(0, s.UnderestimatedCount()-n),
	}, nil
}

// Take returns a lazy view over at most n elements of s. Take(s, 0) is a
// permanently empty view and never touches s. Take on an existing take view
// merges to the smaller of the two limits without double counting already
// forwarded elements.
func Take[V any](s Sequence[V], n int) (Sequence[V], error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "Take(%d)", n)
	}

	if view, ok := s.(*takeSequence[V]); ok {
		limit := view.limit
		if n < limit {
			limit = n
		}
		taken := view.taken
		if taken > limit {
			taken = limit
		}
		return &takeSequence[V]{
			in:    view.in,
			limit: limit,
			taken: taken,
			hint:  minInt(view.hint, limit),
		}, nil
	}

	if n == 0 {
		return Empty[V](), nil
	}

	return &takeSequence[V]{
		in:    s.Cursor(),
		limit: n,
		hint:  minInt(s.UnderestimatedCount(), n),
	}, nil
}

// skipSequence is its own cursor: the view is one-shot and every Cursor call
// observes the shared state.
type skipSequence[V any] struct {
	in      Cursor[V]
	limit   int
	dropped int
	hint    int
}

func (s *skipSequence[V]) Cursor() Cursor[V] {
	return s
}

func (s *skipSequence[V]) UnderestimatedCount() int {
	return s.hint
}

func (s *skipSequence[V]) Move() (V, bool) {
	for s.dropped < s.limit {
		if _, ok := s.in.Move(); !ok {
			// inner drained mid-skip; the end state is terminal
			s.dropped = s.limit
			return *new(V), false
		}
		s.dropped++
	}

	v, ok := s.in.Move()
	if ok && s.hint > 0 {
		s.hint--
	}
	return v, ok
}

type takeSequence[V any] struct {
	in    Cursor[V]
	limit int
	taken int
	hint  int
}

func (s *takeSequence[V]) Cursor() Cursor[V] {
	return s
}

func (s *takeSequence[V]) UnderestimatedCount() int {
	return s.hint
}

func (s *takeSequence[V]) Move() (V, bool) {
	if s.taken >= s.limit {
		return *new(V), false
	}

	v, ok := s.in.Move()
	if !ok {
		s.taken = s.limit
		return *new(V), false
	}

	s.taken++
	if s.hint > 0 {
		s.hint--
	}
	return v, true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
