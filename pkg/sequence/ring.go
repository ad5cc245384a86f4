package sequence

// ringBuffer is the fixed-capacity circular store behind SkipLast and
// TakeLast. It retains the most recent up-to-cap pushes; the write index
// rotates modulo cap once full. It never escapes this package.
type ringBuffer[V any] struct {
	slots []V
	write int
	count int
}

func newRingBuffer[V any](capacity int) *ringBuffer[V] {
	return &ringBuffer[V]{
		slots: make([]V, capacity),
	}
}

// push stores v. When the buffer is already full it returns the evicted
// oldest element and full == true.
func (r *ringBuffer[V]) push(v V) (evicted V, full bool) {
	if r.count == len(r.slots) {
		evicted = r.slots[r.write]
		full = true
	} else {
		r.count++
	}
	r.slots[r.write] = v
	r.write = (r.write + 1) % len(r.slots)
	return evicted, full
}

// collect returns the retained elements oldest to newest. While the buffer
// is not yet full the oldest element sits at slot zero; once full it sits at
// the write index, wrapping around to just before it.
func (r *ringBuffer[V]) collect() []V {
	out := make([]V, 0, r.count)
	start := 0
	if r.count == len(r.slots) {
		start = r.write
	}
	for i := 0; i < r.count; i++ {
		out = append(out, r.slots[(start+i)%len(r.slots)])
	}
	return out
}
