package checkins

import (
	"context"
	"strings"
	"sync"
)

// Observer recibe cada evento después de que quedó guardado.
// Se llama con el lock del store tomado: no debe llamar a Append.
type Observer interface {
	OnAppend(e CheckInEvent)
}

type ObserverFunc func(e CheckInEvent)

func (f ObserverFunc) OnAppend(e CheckInEvent) { f(e) }

// Store serializa las escrituras (single writer) sobre un Repository
// y notifica a los observers en el mismo orden de los appends.
type Store struct {
	mu        sync.Mutex
	repo      Repository
	observers []Observer
}

func NewStore(repo Repository, observers ...Observer) *Store {
	s := &Store{repo: repo}
	for _, o := range observers {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
	return s
}

// Subscribe agrega un observer. Solo recibe appends posteriores.
func (s *Store) Subscribe(o Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Append es el commit point: después de esto no hay undo.
func (s *Store) Append(ctx context.Context, e CheckInEvent) error {
	if strings.TrimSpace(e.ID) == "" || strings.TrimSpace(e.FriendlyName) == "" || e.Timestamp.IsZero() {
		return ErrInvalidEvent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Append(ctx, e.clone()); err != nil {
		return err
	}

	for _, o := range s.observers {
		o.OnAppend(e.clone())
	}
	return nil
}

func (s *Store) All(ctx context.Context) ([]CheckInEvent, error) {
	items, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CheckInEvent, 0, len(items))
	for _, e := range items {
		out = append(out, e.clone())
	}
	return out, nil
}
