package seqfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vmihailenco/msgpack"

	"github.com/johnjamespj/TraverseKit/pkg/sequence"
	"github.com/johnjamespj/TraverseKit/pkg/util"
)

// Reader serves a sealed segment file back as a sequence. Blocks are
// fetched through the shared cache keyed by "<segmentID>.<blockIdx>", so
// several readers over the same store share decompressed blocks.
type Reader[V any] struct {
	segmentID    string
	file         *os.File
	decompressor Decompressor

	count      int64
	blockIndex []*BlockIndexEntry
	blockCache *lru.TwoQueueCache[string, []byte]
}

func NewReader[V any](segmentID string, file *os.File, algorithm *Algorithm, cache *lru.TwoQueueCache[string, []byte]) (*Reader[V], error) {
	r := &Reader[V]{
		segmentID:    segmentID,
		file:         file,
		decompressor: algorithm.decompressor,
		blockCache:   cache,
	}
	if err := r.readFooter(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reader[V]) readFooter() error {
	end, err := r.file.Seek(-8, io.SeekEnd)
	if err != nil {
		return errors.Wrap(ErrSegmentCorrupt, err.Error())
	}

	trailer := make([]byte, 8)
	if _, err := io.ReadFull(r.file, trailer); err != nil {
		return errors.Wrap(ErrSegmentCorrupt, err.Error())
	}

	footerOffset := int64(util.BytesToUint64(trailer))
	if footerOffset < 0 || footerOffset > end {
		return errors.Wrapf(ErrSegmentCorrupt, "footer offset %d out of range", footerOffset)
	}

	if _, err := r.file.Seek(footerOffset, io.SeekStart); err != nil {
		return err
	}

	dec := msgpack.NewDecoder(r.file)
	count, err := dec.DecodeInt64()
	if err != nil {
		return errors.Wrap(ErrSegmentCorrupt, err.Error())
	}
	r.count = count

	blockIndexLen, err := dec.DecodeArrayLen()
	if err != nil {
		return errors.Wrap(ErrSegmentCorrupt, err.Error())
	}

	r.blockIndex = make([]*BlockIndexEntry, blockIndexLen)
	for i := 0; i < blockIndexLen; i++ {
		offset, err := dec.DecodeInt64()
		if err != nil {
			return errors.Wrap(ErrSegmentCorrupt, err.Error())
		}
		size, err := dec.DecodeInt64()
		if err != nil {
			return errors.Wrap(ErrSegmentCorrupt, err.Error())
		}
		r.blockIndex[i] = &BlockIndexEntry{
			Offset: offset,
			Size:   int(size),
		}
	}
	return nil
}

func (r *Reader[V]) Count() int64 {
	return r.count
}

// Sequence returns a multi-pass view over the segment. Each Cursor call
// starts a fresh traversal from the first block.
func (r *Reader[V]) Sequence() sequence.Sequence[V] {
	return &segmentSequence[V]{reader: r}
}

func (r *Reader[V]) readBlock(idx int) ([]byte, error) {
	cacheKey := fmt.Sprintf("%s.%d", r.segmentID, idx)
	if b, ok := r.blockCache.Get(cacheKey); ok {
		return b, nil
	}

	entry := r.blockIndex[idx]
	b := make([]byte, entry.Size)
	if _, err := r.file.ReadAt(b, entry.Offset); err != nil {
		return nil, errors.Wrapf(err, "reading block %d of %s", idx, r.segmentID)
	}

	b, err := r.decompressor.Decompress(b)
	if err != nil {
		return nil, errors.Wrapf(err, "decompressing block %d of %s", idx, r.segmentID)
	}

	r.blockCache.Add(cacheKey, b)
	return b, nil
}

type segmentSequence[V any] struct {
	reader *Reader[V]
}

func (s *segmentSequence[V]) Cursor() sequence.Cursor[V] {
	return &segmentCursor[V]{reader: s.reader}
}

func (s *segmentSequence[V]) UnderestimatedCount() int {
	return int(s.reader.count)
}

// segmentCursor chains the per-block cursors in file order. A read or
// checksum failure drains the cursor, matching the sticky end-of-data
// contract.
type segmentCursor[V any] struct {
	reader *Reader[V]
	block  int
	cur    *blockCursor[V]
}

func (c *segmentCursor[V]) Move() (V, bool) {
	for {
		if c.cur != nil {
			if v, ok := c.cur.Move(); ok {
				return v, true
			}
			c.cur = nil
		}

		if c.block >= len(c.reader.blockIndex) {
			return *new(V), false
		}

		b, err := c.reader.readBlock(c.block)
		if err != nil {
			c.block = len(c.reader.blockIndex)
			return *new(V), false
		}
		c.block++
		c.cur = &blockCursor[V]{reader: bytes.NewReader(b)}
	}
}

type blockCursor[V any] struct {
	reader *bytes.Reader
}

func (b *blockCursor[V]) Move() (V, bool) {
	hash := make([]byte, 16)
	if _, err := io.ReadFull(b.reader, hash); err != nil {
		return *new(V), false
	}

	sizeBytes := make([]byte, 8)
	if _, err := io.ReadFull(b.reader, sizeBytes); err != nil {
		return *new(V), false
	}
	size := util.BytesToUint64(sizeBytes)

	data := make([]byte, size)
	if _, err := io.ReadFull(b.reader, data); err != nil {
		return *new(V), false
	}

	if !bytes.Equal(util.HashBytes(data), hash) {
		return *new(V), false
	}

	var v V
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return *new(V), false
	}
	return v, true
}
