package memory

import (
	"context"
	"errors"
	"sync"

	"checkin-tracker/internal/domain/checkins"
)

var ErrDuplicateID = errors.New("event already exists")

// checkinRepo guarda los eventos en orden de inserción. Solo append.
type checkinRepo struct {
	mu    sync.RWMutex
	items []checkins.CheckInEvent
	ids   map[string]struct{}
}

func NewCheckinRepo() checkins.Repository {
	return &checkinRepo{
		ids: make(map[string]struct{}),
	}
}

func (r *checkinRepo) Append(ctx context.Context, e checkins.CheckInEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := r.ids[e.ID]; exists {
		return ErrDuplicateID
	}

	r.items = append(r.items, e)
	r.ids[e.ID] = struct{}{}
	return nil
}

func (r *checkinRepo) All(ctx context.Context) ([]checkins.CheckInEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]checkins.CheckInEvent, len(r.items))
	copy(out, r.items)
	return out, nil
}
