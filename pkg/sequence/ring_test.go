package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingBufferEviction(t *testing.T) {
	r := newRingBuffer[int](3)

	for _, v := range []int{1, 2, 3} {
		_, full := r.push(v)
		assert.False(t, full)
	}

	evicted, full := r.push(4)
	assert.True(t, full)
	assert.Equal(t, 1, evicted)

	evicted, full = r.push(5)
	assert.True(t, full)
	assert.Equal(t, 2, evicted)
}

func TestRingBufferCollectPartial(t *testing.T) {
	r := newRingBuffer[int](4)
	r.push(1)
	r.push(2)

	assert.Equal(t, []int{1, 2}, r.collect())
}

func TestRingBufferCollectAfterWrap(t *testing.T) {
	r := newRingBuffer[int](3)
	for v := 1; v <= 5; v++ {
		r.push(v)
	}

	// oldest-to-newest, starting at the write index
	assert.Equal(t, []int{3, 4, 5}, r.collect())
}

func TestRingBufferCollectExactlyFull(t *testing.T) {
	r := newRingBuffer[int](3)
	for v := 1; v <= 3; v++ {
		r.push(v)
	}

	assert.Equal(t, []int{1, 2, 3}, r.collect())
}
