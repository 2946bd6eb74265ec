package blob

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrReleased is returned when a handle is read or released after its
// single permitted release. Reading after release is a sequencing bug in
// the caller, so it fails loudly instead of returning stale bytes.
var ErrReleased = errors.New("blob: handle already released")

// ErrNotFound is returned for handles the store never issued.
var ErrNotFound = errors.New("blob: handle not found")

// Resource is one stored upload, alive between acquisition and release.
type Resource struct {
	ID         uuid.UUID
	Name       string
	MIME       string
	Data       []byte
	AcquiredAt time.Time
}

// Store holds scoped binary resources for the lifetime of the hosting
// session. Each resource is acquired on upload and invalidated exactly
// once, on the later of approval-flow completion and view teardown.
type Store struct {
	mu       sync.Mutex
	alive    map[uuid.UUID]*Resource
	released map[uuid.UUID]struct{}
	logger   *logrus.Logger
}

func NewStore(logger *logrus.Logger) *Store {
	return &Store{
		alive:    make(map[uuid.UUID]*Resource),
		released: make(map[uuid.UUID]struct{}),
		logger:   logger,
	}
}

// Put acquires a new resource and returns its handle.
func (s *Store) Put(name, mime string, data []byte) uuid.UUID {
	res := &Resource{
		ID:         uuid.New(),
		Name:       name,
		MIME:       mime,
		Data:       data,
		AcquiredAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.alive[res.ID] = res
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"component": "blob",
		"blob_id":   res.ID,
		"size":      len(data),
	}).Info("Binary resource acquired")
	return res.ID
}

// Open returns the resource for a live handle.
func (s *Store) Open(id uuid.UUID) (*Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, gone := s.released[id]; gone {
		return nil, fmt.Errorf("blob: open %s: %w", id, ErrReleased)
	}
	res, ok := s.alive[id]
	if !ok {
		return nil, fmt.Errorf("blob: open %s: %w", id, ErrNotFound)
	}
	return res, nil
}

// Release invalidates a handle. A second release fails with ErrReleased
// so double-teardown bugs surface instead of passing silently.
func (s *Store) Release(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, gone := s.released[id]; gone {
		return fmt.Errorf("blob: release %s: %w", id, ErrReleased)
	}
	if _, ok := s.alive[id]; !ok {
		return fmt.Errorf("blob: release %s: %w", id, ErrNotFound)
	}

	delete(s.alive, id)
	s.released[id] = struct{}{}

	s.logger.WithFields(logrus.Fields{
		"component": "blob",
		"blob_id":   id,
	}).Info("Binary resource released")
	return nil
}

// ReleaseAll invalidates every live handle. Used on shutdown so nothing
// leaks past session teardown.
func (s *Store) ReleaseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range s.alive {
		delete(s.alive, id)
		s.released[id] = struct{}{}
	}
}

// Live returns the number of currently held resources.
func (s *Store) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.alive)
}
