package sequence

// Where returns a lazy view over the elements of s that satisfy pred.
func Where[V any](s Sequence[V], pred func(V) bool) Sequence[V] {
	return SequenceFrom(func() Cursor[V] {
		return &WhereCursor[V]{
			In:        s.Cursor(),
			Predicate: pred,
		}
	})
}

// TakeWhile returns a lazy view over the leading run of elements of s that
// satisfy pred. The first failing element is consumed but not yielded.
func TakeWhile[V any](s Sequence[V], pred func(V) bool) Sequence[V] {
	return SequenceFrom(func() Cursor[V] {
		return &TakeWhileCursor[V]{
			In:        s.Cursor(),
			Predicate: pred,
		}
	})
}

// SkipWhile returns a lazy view over s without its leading run of elements
// satisfying pred.
func SkipWhile[V any](s Sequence[V], pred func(V) bool) Sequence[V] {
	return SequenceFrom(func() Cursor[V] {
		return &SkipWhileCursor[V]{
			In:        s.Cursor(),
			Predicate: pred,
		}
	})
}

// FollowedBy returns a lazy view over the elements of s followed by the
// elements of each rest, in order.
func FollowedBy[V any](s Sequence[V], rest ...Sequence[V]) Sequence[V] {
	all := append([]Sequence[V]{s}, rest...)
	return SequenceFrom(func() Cursor[V] {
		cursors := make([]Cursor[V], len(all))
		for i, seq := range all {
			cursors[i] = seq.Cursor()
		}
		return &ChainCursor[V]{Cursors: cursors}
	})
}

type WhereCursor[V any] struct {
	In        Cursor[V]
	Predicate func(V) bool
}

func (c *WhereCursor[V]) Move() (V, bool) {
	for v, ok := c.In.Move(); ok; v, ok = c.In.Move() {
		if c.Predicate(v) {
			return v, true
		}
	}
	return *new(V), false
}

type TakeWhileCursor[V any] struct {
	In        Cursor[V]
	Predicate func(V) bool
	done      bool
}

func (c *TakeWhileCursor[V]) Move() (V, bool) {
	if c.done {
		return *new(V), false
	}
	if v, ok := c.In.Move(); ok && c.Predicate(v) {
		return v, true
	}
	c.done = true
	return *new(V), false
}

type SkipWhileCursor[V any] struct {
	In        Cursor[V]
	Predicate func(V) bool
	started   bool
}

func (c *SkipWhileCursor[V]) Move() (V, bool) {
	if !c.started {
		for v, ok := c.In.Move(); ok; v, ok = c.In.Move() {
			if !c.Predicate(v) {
				c.started = true
				return v, true
			}
		}
		c.started = true
		return *new(V), false
	}
	return c.In.Move()
}

type ChainCursor[V any] struct {
	Cursors []Cursor[V]
	idx     int
}

func (c *ChainCursor[V]) Move() (V, bool) {
	for c.idx < len(c.Cursors) {
		if v, ok := c.Cursors[c.idx].Move(); ok {
			return v, true
		}
		c.idx++
	}
	return *new(V), false
}
