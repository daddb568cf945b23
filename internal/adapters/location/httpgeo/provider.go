package httpgeo

import (
	"context"
	"net/http"
	"sync"
	"time"

	"checkin-tracker/internal/adapters/location/memory"
	"checkin-tracker/internal/platform/httpclient"
	"checkin-tracker/internal/platform/logger"
	"checkin-tracker/internal/ports/location"
)

var (
	_ location.Provider   = (*Provider)(nil)
	_ location.FixAwaiter = (*Provider)(nil)
)

// fixResponse es lo que devuelve el servicio remoto de ubicación.
type fixResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Provider pide la ubicación a un endpoint HTTP. RequestLocation no bloquea:
// el fetch corre en background y el resultado queda en un cache en memoria.
type Provider struct {
	client *httpclient.Client
	cache  *memory.Provider
	log    logger.Logger

	mu       sync.Mutex
	inflight bool
	wg       sync.WaitGroup
}

func New(baseURL string, timeout time.Duration, log logger.Logger) (*Provider, error) {
	c, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Provider{
		client: c,
		cache:  memory.NewProvider(),
		log:    log.With(map[string]any{"component": "httpgeo"}),
	}, nil
}

// RequestLocation dispara un fetch si no hay otro en curso.
// Usa context.Background: cancelar el request que lo originó no corta el fetch.
func (p *Provider) RequestLocation(_ context.Context) {
	p.mu.Lock()
	if p.inflight {
		p.mu.Unlock()
		return
	}
	p.inflight = true
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.inflight = false
			p.mu.Unlock()
		}()

		ctx, cancel := context.WithTimeout(context.Background(), p.client.HTTP.Timeout)
		defer cancel()

		var resp fixResponse
		if err := p.client.DoJSON(ctx, http.MethodGet, "", nil, &resp); err != nil {
			p.log.Warn("location fetch failed", map[string]any{"error": err.Error()})
			return
		}
		if resp.Latitude == nil || resp.Longitude == nil {
			p.log.Warn("location fetch returned partial fix", nil)
			return
		}
		p.cache.Update(location.Coordinate{Latitude: *resp.Latitude, Longitude: *resp.Longitude})
	}()
}

func (p *Provider) LastKnown(ctx context.Context) (location.Coordinate, bool) {
	return p.cache.LastKnown(ctx)
}

func (p *Provider) AwaitFix(ctx context.Context, after time.Time) (location.Coordinate, bool) {
	return p.cache.AwaitFix(ctx, after)
}

// Update acepta fixes reportados por el dispositivo además de los del endpoint.
func (p *Provider) Update(c location.Coordinate) {
	p.cache.Update(c)
}

// Wait espera a que terminen los fetch en curso (shutdown/tests).
func (p *Provider) Wait() {
	p.wg.Wait()
}
