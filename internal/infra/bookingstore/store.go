package bookingstore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gather-venues/internal/domain/booking"
	"gather-venues/internal/infra"
	"gather-venues/internal/pkg/config"
)

// bookingsFile plays the role of the single fixed storage key.
const bookingsFile = "gather_venues_bookings.json"

// Store is the append-only persisted booking collection.
type Store interface {
	Append(ctx context.Context, record *booking.Record) error
	LoadAll(ctx context.Context) ([]*booking.Record, error)
}

// FileStore keeps all records as one JSON array in a single file,
// mirroring a key-value store: writes replace the whole array
// (read-modify-write, not an atomic append), unreadable or corrupt data
// reads as an empty list. The mutex serializes writers; the single-user
// model promises only one flow commits at a time, but the HTTP host may
// interleave requests.
type FileStore struct {
	path   string
	mu     sync.Mutex
	logger *slog.Logger
}

func NewFileStore(cfg config.StoreConfig, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindStorageFailure, "failed to create store directory", err)
	}
	return &FileStore{
		path:   filepath.Join(cfg.Dir, bookingsFile),
		logger: logger,
	}, nil
}

func (s *FileStore) Append(_ context.Context, record *booking.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.readAll()
	records = append(records, record)

	data, err := json.Marshal(records)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to encode bookings", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to write bookings", err)
	}
	return nil
}

func (s *FileStore) LoadAll(_ context.Context) ([]*booking.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll(), nil
}

// readAll treats missing or malformed data as "no bookings": decode
// failure is logged, never fatal.
func (s *FileStore) readAll() []*booking.Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read bookings, treating as empty", "error", err)
		}
		return []*booking.Record{}
	}

	var records []*booking.Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("corrupt bookings data, treating as empty", "error", err)
		return []*booking.Record{}
	}
	if records == nil {
		return []*booking.Record{}
	}
	return records
}
