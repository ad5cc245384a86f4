package seqfile

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4"
)

type Compressor interface {
	Compress([]byte) ([]byte, error)
}

type Decompressor interface {
	Decompress([]byte) ([]byte, error)
}

// Algorithm pairs a block compressor with its decompressor.
type Algorithm struct {
	compressor   Compressor
	decompressor Decompressor
}

var (
	None = &Algorithm{
		compressor:   &noCompression{},
		decompressor: &noCompression{},
	}
	Lz4 = &Algorithm{
		compressor:   &lz4Compressor{},
		decompressor: &lz4Decompressor{},
	}
)

type noCompression struct{}

func (*noCompression) Compress(p []byte) ([]byte, error) {
	return p, nil
}

func (*noCompression) Decompress(p []byte) ([]byte, error) {
	return p, nil
}

type lz4Compressor struct{}

func (*lz4Compressor) Compress(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(p); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type lz4Decompressor struct{}

func (*lz4Decompressor) Decompress(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, lz4.NewReader(bytes.NewReader(p))); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
