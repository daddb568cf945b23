package memory

import (
	"context"
	"testing"
	"time"

	"checkin-tracker/internal/ports/location"
)

func TestProvider_LastKnown(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	if _, ok := p.LastKnown(ctx); ok {
		t.Fatalf("expected no fix initially")
	}

	p.Update(location.Coordinate{Latitude: -33.8, Longitude: 151.2})

	c, ok := p.LastKnown(ctx)
	if !ok || c.Latitude != -33.8 || c.Longitude != 151.2 {
		t.Fatalf("unexpected fix: %+v ok=%v", c, ok)
	}
}

func TestProvider_RequestLocationCounts(t *testing.T) {
	p := NewProvider()
	p.RequestLocation(context.Background())
	p.RequestLocation(context.Background())
	if p.Requests() != 2 {
		t.Fatalf("Requests() = %d, want 2", p.Requests())
	}
}

func TestProvider_AwaitFix_WaitsForNewerFix(t *testing.T) {
	p := NewProvider()

	base := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	current := base
	p.now = func() time.Time { return current }

	// Fix viejo: no sirve para un pedido hecho en base.
	p.Update(location.Coordinate{Latitude: 1, Longitude: 1})

	go func() {
		time.Sleep(10 * time.Millisecond)
		p.mu.Lock()
		current = base.Add(time.Second)
		p.mu.Unlock()
		p.Update(location.Coordinate{Latitude: 2, Longitude: 2})
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c, ok := p.AwaitFix(ctx, base)
	if !ok {
		t.Fatalf("expected fresh fix")
	}
	if c.Latitude != 2 {
		t.Fatalf("expected the newer fix, got %+v", c)
	}
}

func TestProvider_AwaitFix_Timeout(t *testing.T) {
	p := NewProvider()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, ok := p.AwaitFix(ctx, time.Now()); ok {
		t.Fatalf("expected no fix before timeout")
	}
}
