package memory

import (
	"context"
	"sync"
	"time"

	"checkin-tracker/internal/ports/location"
)

var (
	_ location.Provider   = (*Provider)(nil)
	_ location.FixAwaiter = (*Provider)(nil)
)

// Provider guarda el último fix reportado por el dispositivo.
// Reemplaza al cache global de ubicación: se inyecta donde haga falta.
type Provider struct {
	mu       sync.Mutex
	fix      *location.Coordinate
	fixAt    time.Time
	requests int
	changed  chan struct{}

	now func() time.Time
}

func NewProvider() *Provider {
	return &Provider{
		changed: make(chan struct{}),
		now:     time.Now,
	}
}

// Update registra un fix nuevo y despierta a quien esté esperando.
func (p *Provider) Update(c location.Coordinate) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.fix = &c
	p.fixAt = p.now()

	close(p.changed)
	p.changed = make(chan struct{})
}

// RequestLocation solo cuenta el pedido: el fix llega por Update.
func (p *Provider) RequestLocation(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests++
}

func (p *Provider) LastKnown(ctx context.Context) (location.Coordinate, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fix == nil {
		return location.Coordinate{}, false
	}
	return *p.fix, true
}

// AwaitFix espera un fix con timestamp posterior a `after` o hasta que ctx termine.
func (p *Provider) AwaitFix(ctx context.Context, after time.Time) (location.Coordinate, bool) {
	for {
		p.mu.Lock()
		if p.fix != nil && p.fixAt.After(after) {
			c := *p.fix
			p.mu.Unlock()
			return c, true
		}
		ch := p.changed
		p.mu.Unlock()

		select {
		case <-ctx.Done():
			return location.Coordinate{}, false
		case <-ch:
		}
	}
}

func (p *Provider) Requests() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests
}
