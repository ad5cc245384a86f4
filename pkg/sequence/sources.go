package sequence

// Empty returns a sequence with no elements.
func Empty[V any]() Sequence[V] {
	return SequenceFrom(func() Cursor[V] {
		return &EmptyCursor[V]{}
	})
}

// FromFunc returns a sequence whose elements are generator(0) through
// generator(length-1).
func FromFunc[V any](generator func(idx int) V, length int) Sequence[V] {
	return &BaseSequence[V]{
		builder: func() Cursor[V] {
			return &FuncCursor[V]{
				Generator: generator,
				Length:    length,
			}
		},
		count: func() int { return length },
	}
}

// FromSlice returns a multi-pass sequence backed by slice. The slice is not
// copied; it is shared with the caller.
func FromSlice[V any](slice []V) Sequence[V] {
	return &sliceSequence[V]{slice: slice}
}

// FromCursor returns a one-shot sequence around an already-started cursor.
// Every Cursor call hands back the same underlying cursor, so draining one
// traversal drains them all.
func FromCursor[V any](c Cursor[V]) Sequence[V] {
	return &cursorSequence[V]{c: c}
}

// SetOf returns a sequence over the distinct items in insertion order. It
// answers membership checks through its index instead of a linear scan.
func SetOf[V comparable](items ...V) Sequence[V] {
	s := &setSequence[V]{index: make(map[V]struct{}, len(items))}
	for _, v := range items {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = struct{}{}
		s.ordered = append(s.ordered, v)
	}
	return s
}

type EmptyCursor[V any] struct{}

func (*EmptyCursor[V]) Move() (V, bool) {
	return *new(V), false
}

type FuncCursor[V any] struct {
	Generator func(idx int) V
	Length    int
	idx       int
}

func (g *FuncCursor[V]) Move() (V, bool) {
	if g.idx >= g.Length {
		return *new(V), false
	}
	v := g.Generator(g.idx)
	g.idx++
	return v, true
}

type SliceCursor[V any] struct {
	Slice []V
	idx   int
}

func (s *SliceCursor[V]) Move() (V, bool) {
	if s.idx >= len(s.Slice) {
		return *new(V), false
	}
	v := s.Slice[s.idx]
	s.idx++
	return v, true
}

type sliceSequence[V any] struct {
	slice []V
}

func (s *sliceSequence[V]) Cursor() Cursor[V] {
	return &SliceCursor[V]{Slice: s.slice}
}

func (s *sliceSequence[V]) UnderestimatedCount() int {
	return len(s.slice)
}

func (s *sliceSequence[V]) WithContiguousStorage(body func([]V)) bool {
	body(s.slice)
	return true
}

type cursorSequence[V any] struct {
	c Cursor[V]
}

func (s *cursorSequence[V]) Cursor() Cursor[V] {
	return s.c
}

func (s *cursorSequence[V]) UnderestimatedCount() int {
	return 0
}

type setSequence[V comparable] struct {
	ordered []V
	index   map[V]struct{}
}

func (s *setSequence[V]) Cursor() Cursor[V] {
	return &SliceCursor[V]{Slice: s.ordered}
}

func (s *setSequence[V]) UnderestimatedCount() int {
	return len(s.ordered)
}

func (s *setSequence[V]) ContainsEquatable(v V) (bool, bool) {
	_, found := s.index[v]
	return found, true
}
