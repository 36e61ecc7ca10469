package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/luxenails/nail-booking-backend/internal/pkg/apperror"
)

// FileStore is the default ledger: one JSON array of bookings in a single
// file, rewritten in full on every append so it stays human-inspectable.
// A missing file is an empty ledger and is materialized on first write.
//
// All writes run under one mutex, so the conflict check, the append and the
// flush form a single critical section. The in-memory cache is only updated
// after the flush succeeds: a failed write leaves both file and cache on the
// previous committed state.
type FileStore struct {
	path string

	mu       sync.RWMutex
	loaded   bool
	bookings []*Booking
	lastID   int64
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Create(ctx context.Context, b *Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return apperror.Wrap(err, http.StatusInternalServerError, "failed to read bookings")
	}

	for _, existing := range s.bookings {
		if existing.Date == b.Date && existing.Time == b.Time {
			return ErrSlotTaken
		}
	}

	b.ID = s.nextIDLocked()
	b.CreatedAt = time.Now().UTC()

	next := make([]*Booking, len(s.bookings), len(s.bookings)+1)
	copy(next, s.bookings)
	next = append(next, cloneBooking(b))

	if err := s.flush(next); err != nil {
		return apperror.Wrap(err, http.StatusInternalServerError, "failed to save booking")
	}

	s.bookings = next
	s.lastID = b.ID
	return nil
}

func (s *FileStore) List(ctx context.Context) ([]*Booking, error) {
	return s.snapshot(func(b *Booking) bool { return true })
}

func (s *FileStore) ListByDate(ctx context.Context, date string) ([]*Booking, error) {
	return s.snapshot(func(b *Booking) bool { return b.Date == date })
}

// snapshot returns cloned records matching keep, loading the file on first use.
func (s *FileStore) snapshot(keep func(*Booking) bool) ([]*Booking, error) {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return filterClone(s.bookings, keep), nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(); err != nil {
		return nil, apperror.Wrap(err, http.StatusInternalServerError, "failed to read bookings")
	}
	return filterClone(s.bookings, keep), nil
}

// loadLocked reads the ledger file once. Caller must hold the write lock.
func (s *FileStore) loadLocked() error {
	if s.loaded {
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.bookings = nil
			s.loaded = true
			return nil
		}
		return fmt.Errorf("read bookings file: %w", err)
	}

	var bookings []*Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return fmt.Errorf("parse bookings file %s: %w", s.path, err)
	}

	for _, b := range bookings {
		if b.ID > s.lastID {
			s.lastID = b.ID
		}
	}

	s.bookings = bookings
	s.loaded = true
	return nil
}

// nextIDLocked assigns unix-millisecond IDs, bumped past the last one so IDs
// stay strictly monotonic even when two bookings land in the same millisecond.
func (s *FileStore) nextIDLocked() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	return id
}

// flush writes the whole ledger to a temp file and renames it into place, so
// a crash mid-write never leaves a truncated bookings file behind.
func (s *FileStore) flush(bookings []*Booking) error {
	if bookings == nil {
		bookings = []*Booking{}
	}

	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal bookings: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp bookings file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write bookings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close bookings file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace bookings file: %w", err)
	}
	return nil
}

func cloneBooking(b *Booking) *Booking {
	c := *b
	return &c
}

func filterClone(bookings []*Booking, keep func(*Booking) bool) []*Booking {
	out := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if keep(b) {
			out = append(out, cloneBooking(b))
		}
	}
	return out
}
