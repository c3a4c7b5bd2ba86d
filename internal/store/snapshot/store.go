package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fekuna/omnipos-register-service/internal/store"
	"go.uber.org/zap"
)

type Config struct {
	// SnapshotPath is the durable document. SeedPath is consulted only when
	// the snapshot does not exist yet; it may be empty.
	SnapshotPath string
	SeedPath     string
}

// Store keeps the whole document in memory and mirrors it to a single JSON
// file on every successful mutation. One file, one writer, last write wins.
type Store struct {
	mu     sync.Mutex
	path   string
	doc    store.Document
	logger *zap.Logger
}

// Open loads the snapshot. If it does not exist the seed document is loaded
// and written back as the initial snapshot. Failures are returned to the
// caller rather than masked; deciding to start empty is the caller's call.
func Open(cfg *Config, logger *zap.Logger) (*Store, error) {
	s := &Store{path: cfg.SnapshotPath, logger: logger}

	data, err := os.ReadFile(cfg.SnapshotPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &s.doc); err != nil {
			return nil, fmt.Errorf("decode snapshot %s: %w", cfg.SnapshotPath, err)
		}
		s.doc.Normalize()
		fields := append([]zap.Field{zap.String("path", cfg.SnapshotPath)}, s.countFields()...)
		logger.Info("snapshot loaded", fields...)
		return s, nil

	case os.IsNotExist(err):
		if cfg.SeedPath == "" {
			return nil, fmt.Errorf("no snapshot at %s and no seed configured", cfg.SnapshotPath)
		}
		seed, serr := os.ReadFile(cfg.SeedPath)
		if serr != nil {
			return nil, fmt.Errorf("no snapshot at %s, read seed: %w", cfg.SnapshotPath, serr)
		}
		if err := json.Unmarshal(seed, &s.doc); err != nil {
			return nil, fmt.Errorf("decode seed %s: %w", cfg.SeedPath, err)
		}
		s.doc.Normalize()
		if err := s.persist(); err != nil {
			return nil, fmt.Errorf("write initial snapshot: %w", err)
		}
		fields := append([]zap.Field{zap.String("seed", cfg.SeedPath)}, s.countFields()...)
		logger.Info("snapshot seeded", fields...)
		return s, nil

	default:
		return nil, fmt.Errorf("read snapshot %s: %w", cfg.SnapshotPath, err)
	}
}

// NewEmpty builds a store over an empty document and persists it best-effort.
// Used when the caller chooses to run without durable history after a failed
// Open, and by tests.
func NewEmpty(cfg *Config, logger *zap.Logger) *Store {
	s := &Store{path: cfg.SnapshotPath, logger: logger}
	s.doc.Normalize()
	if err := s.persist(); err != nil {
		logger.Warn("could not write empty snapshot", zap.Error(err))
	}
	return s
}

func (s *Store) View(fn func(doc *store.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.doc)
}

// Update runs fn against the live document and rewrites the snapshot when fn
// succeeds. If fn errors the document is untouched by contract (mutating
// callbacks must fail before writing).
func (s *Store) Update(fn func(doc *store.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.doc); err != nil {
		return err
	}
	return s.persist()
}

// Flush rewrites the snapshot without mutating the document.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist()
}

// Backup copies the current document to a date-suffixed file next to the
// snapshot.
func (s *Store) Backup() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(&s.doc, "", "  ")
	if err != nil {
		return "", err
	}
	dst := fmt.Sprintf("%s.bak-%s", s.path, time.Now().Format("20060102"))
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup %s: %w", dst, err)
	}
	s.logger.Info("snapshot backed up", zap.String("path", dst))
	return dst, nil
}

// persist rewrites the whole document. Temp file plus rename keeps a crash
// mid-write from truncating the previous snapshot. Caller holds the lock.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(&s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func (s *Store) countFields() []zap.Field {
	return []zap.Field{
		zap.Int("customers", len(s.doc.Customers)),
		zap.Int("products", len(s.doc.Products)),
		zap.Int("services", len(s.doc.Services)),
		zap.Int("transactions", len(s.doc.Transactions)),
		zap.Int("service_tickets", len(s.doc.ServiceTickets)),
	}
}
