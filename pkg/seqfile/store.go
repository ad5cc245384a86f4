package seqfile

import (
	"fmt"
	"os"
	"path"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/johnjamespj/TraverseKit/pkg/sequence"
)

var ErrUnknownSegment = errors.New("segment is not in the manifest")

type StoreConfig struct {
	Dir               string
	MaxBlockSize      int
	MaxOpenFiles      int
	MaxBlockCacheSize int
	Compression       *Algorithm
	Logger            *zap.Logger
}

func DefaultStoreConfig(dir string) *StoreConfig {
	return &StoreConfig{
		Dir:               dir,
		MaxBlockSize:      64 * 1024,
		MaxOpenFiles:      64,
		MaxBlockCacheSize: 8 * 1024 * 1024,
		Compression:       Lz4,
	}
}

// Store is a directory of segment files plus the manifest naming them. It
// shares one decompressed-block cache and one file-handle cache across all
// readers it opens; evicted handles are closed.
type Store struct {
	config      *StoreConfig
	manifest    *Manifest
	blockCache  *lru.TwoQueueCache[string, []byte]
	fileHandles *lru.Cache[string, *os.File]
	logger      *zap.Logger
}

func NewStore(config *StoreConfig) (*Store, error) {
	if err := os.MkdirAll(path.Join(config.Dir, "segments"), 0755); err != nil {
		return nil, err
	}

	manifest, err := NewManifest(config.Dir)
	if err != nil {
		return nil, err
	}

	fileHandles, err := lru.NewWithEvict[string, *os.File](config.MaxOpenFiles, func(key string, value *os.File) {
		value.Close()
	})
	if err != nil {
		return nil, err
	}

	blockCache, err := lru.New2Q[string, []byte](config.MaxBlockCacheSize / config.MaxBlockSize)
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store{
		config:      config,
		manifest:    manifest,
		blockCache:  blockCache,
		fileHandles: fileHandles,
		logger:      logger,
	}, nil
}

func (s *Store) Segments() []string {
	return s.manifest.Segments()
}

func (s *Store) Remove(id string) error {
	if !s.manifest.Has(id) {
		return errors.Wrapf(ErrUnknownSegment, "%s", id)
	}

	s.fileHandles.Remove(id)
	s.manifest.Remove(id)
	if err := s.manifest.Save(); err != nil {
		return err
	}

	s.logger.Info("removed segment", zap.String("segment", id))
	return os.Remove(s.segmentPath(id))
}

func (s *Store) Close() error {
	s.fileHandles.Purge()
	return s.manifest.Close()
}

func (s *Store) segmentPath(id string) string {
	return path.Join(s.config.Dir, "segments", fmt.Sprintf("segment.%s.seq", id))
}

func (s *Store) openSegment(id string) (*os.File, error) {
	if file, ok := s.fileHandles.Get(id); ok {
		return file, nil
	}

	file, err := os.Open(s.segmentPath(id))
	if err != nil {
		return nil, err
	}
	s.fileHandles.Add(id, file)
	return file, nil
}

// Spill drains seq into a fresh segment and returns its id. The source is
// consumed; a one-shot sequence cannot be traversed again afterwards, but
// the segment can be opened any number of times.
func Spill[V any](s *Store, seq sequence.Sequence[V]) (string, error) {
	id := uuid.New().String()
	count, err := WriteAll(s.segmentPath(id), s.config.Compression, s.config.MaxBlockSize, seq)
	if err != nil {
		return "", err
	}

	s.manifest.Add(id)
	if err := s.manifest.Save(); err != nil {
		return "", err
	}

	s.logger.Info("spilled segment",
		zap.String("segment", id),
		zap.Int64("elements", count))
	return id, nil
}

// Open returns a multi-pass sequence over the segment named by id.
func Open[V any](s *Store, id string) (sequence.Sequence[V], error) {
	if !s.manifest.Has(id) {
		return nil, errors.Wrapf(ErrUnknownSegment, "%s", id)
	}

	file, err := s.openSegment(id)
	if err != nil {
		return nil, err
	}

	reader, err := NewReader[V](id, file, s.config.Compression, s.blockCache)
	if err != nil {
		return nil, err
	}
	return reader.Sequence(), nil
}
