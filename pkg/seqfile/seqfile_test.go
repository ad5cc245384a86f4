package seqfile_test

import (
	"os"
	"path"
	"testing"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnjamespj/TraverseKit/pkg/seqfile"
	"github.com/johnjamespj/TraverseKit/pkg/sequence"
)

type event struct {
	ID   int
	Name string
}

func newTestStore(t *testing.T, dir string) *seqfile.Store {
	t.Helper()

	config := seqfile.DefaultStoreConfig(dir)
	// tiny blocks so every test exercises multi-block segments
	config.MaxBlockSize = 128

	store, err := seqfile.NewStore(config)
	require.NoError(t, err)
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t, t.TempDir())
	defer store.Close()

	input := make([]event, 100)
	for i := range input {
		input[i] = event{ID: i, Name: "event"}
	}

	id, err := seqfile.Spill(store, sequence.FromSlice(input))
	require.NoError(t, err)
	assert.Equal(t, []string{id}, store.Segments())

	s, err := seqfile.Open[event](store, id)
	require.NoError(t, err)

	assert.Equal(t, 100, s.UnderestimatedCount())
	assert.Equal(t, input, sequence.ToSlice(s))

	// segments are multi-pass: a fresh traversal starts over
	assert.Equal(t, input, sequence.ToSlice(s))
}

func TestStoreSegmentWorksWithViews(t *testing.T) {
	store := newTestStore(t, t.TempDir())
	defer store.Close()

	id, err := seqfile.Spill(store, sequence.FromFunc(func(idx int) int { return idx }, 50))
	require.NoError(t, err)

	s, err := seqfile.Open[int](store, id)
	require.NoError(t, err)

	tail, err := sequence.TakeLast(s, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{47, 48, 49}, tail)
}

func TestStoreSpillOneShotSequence(t *testing.T) {
	store := newTestStore(t, t.TempDir())
	defer store.Close()

	src := sequence.FromSlice([]int{1, 2, 3, 4})
	view, err := sequence.Skip(src, 1)
	require.NoError(t, err)

	id, err := seqfile.Spill(store, view)
	require.NoError(t, err)

	s, err := seqfile.Open[int](store, id)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, sequence.ToSlice(s))
}

func TestStoreManifestSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store := newTestStore(t, dir)
	id, err := seqfile.Spill(store, sequence.FromSlice([]int{1, 2, 3}))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened := newTestStore(t, dir)
	defer reopened.Close()

	assert.Equal(t, []string{id}, reopened.Segments())

	s, err := seqfile.Open[int](reopened, id)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, sequence.ToSlice(s))
}

func TestStoreRemove(t *testing.T) {
	store := newTestStore(t, t.TempDir())
	defer store.Close()

	id, err := seqfile.Spill(store, sequence.FromSlice([]int{1}))
	require.NoError(t, err)

	require.NoError(t, store.Remove(id))
	assert.Empty(t, store.Segments())

	_, err = seqfile.Open[int](store, id)
	assert.ErrorIs(t, err, seqfile.ErrUnknownSegment)

	err = store.Remove(id)
	assert.ErrorIs(t, err, seqfile.ErrUnknownSegment)
}

func TestWriterReaderWithoutStore(t *testing.T) {
	filename := path.Join(t.TempDir(), "segment.seq")

	count, err := seqfile.WriteAll(filename, seqfile.None, 64, sequence.FromFunc(func(idx int) int {
		return idx * 2
	}, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(20), count)

	file, err := os.Open(filename)
	require.NoError(t, err)
	defer file.Close()

	cache, err := lru.New2Q[string, []byte](16)
	require.NoError(t, err)

	reader, err := seqfile.NewReader[int]("direct", file, seqfile.None, cache)
	require.NoError(t, err)
	assert.Equal(t, int64(20), reader.Count())

	got := sequence.ToSlice(reader.Sequence())
	want := make([]int, 20)
	for i := range want {
		want[i] = i * 2
	}
	assert.Equal(t, want, got)
}

func TestWriterRefusesExistingFile(t *testing.T) {
	filename := path.Join(t.TempDir(), "segment.seq")
	require.NoError(t, os.WriteFile(filename, []byte("x"), 0644))

	_, err := seqfile.NewWriter[int](filename, seqfile.Lz4, 64)
	assert.ErrorIs(t, err, seqfile.ErrSegmentExists)
}

func TestEmptySegment(t *testing.T) {
	store := newTestStore(t, t.TempDir())
	defer store.Close()

	id, err := seqfile.Spill(store, sequence.Empty[int]())
	require.NoError(t, err)

	s, err := seqfile.Open[int](store, id)
	require.NoError(t, err)
	assert.Equal(t, 0, s.UnderestimatedCount())
	assert.Equal(t, []int{}, sequence.ToSlice(s))
}
