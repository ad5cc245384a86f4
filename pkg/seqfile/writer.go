// Package seqfile persists finite sequences as immutable segment files so
// that one-shot traversals can be replayed. Elements are msgpack-encoded,
// framed with an md5 checksum, packed into compressed blocks, and indexed by
// a footer; readers serve the file back as a sequence, with blocks going
// through a shared cache.
package seqfile

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack"

	"github.com/johnjamespj/TraverseKit/pkg/sequence"
	"github.com/johnjamespj/TraverseKit/pkg/util"
)

var (
	ErrSegmentExists  = errors.New("segment file already exists")
	ErrSegmentCorrupt = errors.New("segment file is corrupt")
)

type BlockIndexEntry struct {
	Offset int64
	Size   int
}

// Writer streams elements into a segment file. Append buffers framed
// elements into the current block; a block is compressed and written out
// once it reaches maxBlockSize. Finish seals the file with the footer.
type Writer[V any] struct {
	file         *os.File
	compressor   Compressor
	maxBlockSize int

	block      bytes.Buffer
	blockIndex []*BlockIndexEntry
	fileOffset int64
	count      int64
}

func NewWriter[V any](filename string, algorithm *Algorithm, maxBlockSize int) (*Writer[V], error) {
	if _, err := os.Stat(filename); !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(ErrSegmentExists, "%s", filename)
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	return &Writer[V]{
		file:         file,
		compressor:   algorithm.compressor,
		maxBlockSize: maxBlockSize,
	}, nil
}

func (w *Writer[V]) Append(v V) error {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encoding element")
	}

	w.block.Write(util.HashBytes(b))
	w.block.Write(util.Uint64ToBytes(uint64(len(b))))
	w.block.Write(b)
	w.count++

	if w.block.Len() >= w.maxBlockSize {
		return w.flushBlock()
	}
	return nil
}

func (w *Writer[V]) Count() int64 {
	return w.count
}

// Finish flushes the last block, writes the footer and the 8-byte trailer
// holding the footer offset, and closes the file.
func (w *Writer[V]) Finish() error {
	if w.block.Len() > 0 {
		if err := w.flushBlock(); err != nil {
			return err
		}
	}

	footerOffset := w.fileOffset

	enc := msgpack.NewEncoder(w.file)
	if err := enc.EncodeInt64(w.count); err != nil {
		return err
	}
	if err := enc.EncodeArrayLen(len(w.blockIndex)); err != nil {
		return err
	}
	for _, entry := range w.blockIndex {
		if err := enc.EncodeInt64(entry.Offset); err != nil {
			return err
		}
		if err := enc.EncodeInt64(int64(entry.Size)); err != nil {
			return err
		}
	}

	if _, err := w.file.Write(util.Uint64ToBytes(uint64(footerOffset))); err != nil {
		return err
	}
	return w.file.Close()
}

func (w *Writer[V]) flushBlock() error {
	compressed, err := w.compressor.Compress(w.block.Bytes())
	if err != nil {
		return errors.Wrap(err, "compressing block")
	}

	if _, err := w.file.Write(compressed); err != nil {
		return err
	}

	w.blockIndex = append(w.blockIndex, &BlockIndexEntry{
		Offset: w.fileOffset,
		Size:   len(compressed),
	})
	w.fileOffset += int64(len(compressed))
	w.block.Reset()
	return nil
}

// WriteAll drains s into a new segment file at filename.
func WriteAll[V any](filename string, algorithm *Algorithm, maxBlockSize int, s sequence.Sequence[V]) (int64, error) {
	w, err := NewWriter[V](filename, algorithm, maxBlockSize)
	if err != nil {
		return 0, err
	}

	cur := s.Cursor()
	for v, ok := cur.Move(); ok; v, ok = cur.Move() {
		if err := w.Append(v); err != nil {
			w.file.Close()
			return 0, err
		}
	}

	if err := w.Finish(); err != nil {
		return 0, err
	}
	return w.count, nil
}
