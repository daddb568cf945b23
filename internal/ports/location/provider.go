package location

import (
	"context"
	"time"
)

// Coordinate es un par lat/lon. Se usa siempre como valor completo
// (o *Coordinate nil cuando no hay ubicación).
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Provider entrega la última ubicación conocida del dispositivo.
type Provider interface {
	// RequestLocation pide una ubicación nueva. Fire-and-forget: no espera el fix.
	RequestLocation(ctx context.Context)

	// LastKnown devuelve el último fix disponible (snapshot), si existe.
	LastKnown(ctx context.Context) (Coordinate, bool)
}

// FixAwaiter es opcional: providers que pueden esperar un fix más nuevo que `after`.
type FixAwaiter interface {
	AwaitFix(ctx context.Context, after time.Time) (Coordinate, bool)
}
