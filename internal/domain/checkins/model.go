package checkins

import (
	"time"

	"checkin-tracker/internal/ports/location"
)

type CheckInEvent struct {
	ID           string
	FriendlyName string
	Timestamp    time.Time

	Notes string

	// Coordinate es nil cuando no había ubicación al normalizar.
	Coordinate *location.Coordinate

	Source Source
}

func (e CheckInEvent) Geotagged() bool {
	return e.Coordinate != nil
}

// clone copia el evento sin compartir el puntero de Coordinate.
func (e CheckInEvent) clone() CheckInEvent {
	if e.Coordinate != nil {
		c := *e.Coordinate
		e.Coordinate = &c
	}
	return e
}
