package checkins

import "context"

// Repository es append-only: no hay update ni delete.
// All devuelve los eventos en orden de inserción.
type Repository interface {
	Append(ctx context.Context, e CheckInEvent) error
	All(ctx context.Context) ([]CheckInEvent, error)
}
