package schedule

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lazy8055/psych-care/internal/models"
)

// MemoryStore is the in-process Store used by embedding clients and tests.
// A single RWMutex serializes the check-then-write sequence of Insert and
// gives ViewDay its snapshot guarantee.
type MemoryStore struct {
	mu     sync.RWMutex
	byID   map[string]models.Appointment
	active map[string]map[TimeSlot]string // date -> slot -> appointment id
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:   make(map[string]models.Appointment),
		active: make(map[string]map[TimeSlot]string),
	}
}

func (s *MemoryStore) Insert(ctx context.Context, ap *models.Appointment) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := TimeSlot(ap.Slot)
	if id, taken := s.active[ap.Date][slot]; taken && id != "" {
		return nil, ConflictError{Date: ap.Date, Slot: slot}
	}

	stored := *ap
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.Status == "" {
		stored.Status = string(InitialStatus())
	}
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.byID[stored.ID] = stored
	if s.active[stored.Date] == nil {
		s.active[stored.Date] = make(map[TimeSlot]string)
	}
	s.active[stored.Date][slot] = stored.ID

	out := stored
	return &out, nil
}

func (s *MemoryStore) Cancel(ctx context.Context, id string, now time.Time) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.byID[id]
	if !ok {
		return nil, NotFoundError{ID: id}
	}
	if err := CanCancel(Status(ap.Status)); err != nil {
		var se StateError
		if errors.As(err, &se) {
			se.ID = id
			return nil, se
		}
		return nil, err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	ap.UpdatedAt = now
	s.byID[id] = ap
	delete(s.active[ap.Date], TimeSlot(ap.Slot))

	out := ap
	return &out, nil
}

func (s *MemoryStore) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeForDateLocked(date), nil
}

func (s *MemoryStore) ListAll(ctx context.Context) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, 0, len(s.byID))
	for _, ap := range s.byID {
		out = append(out, ap)
	}
	sortByDateSlot(out)
	return out, nil
}

func (s *MemoryStore) ViewDay(ctx context.Context, date string, fn func(active []models.Appointment) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.activeForDateLocked(date))
}

// caller must hold at least the read lock.
func (s *MemoryStore) activeForDateLocked(date string) []models.Appointment {
	ids := s.active[date]
	out := make([]models.Appointment, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.byID[id])
	}
	sortBySlot(out)
	return out
}

var _ Store = (*MemoryStore)(nil)
