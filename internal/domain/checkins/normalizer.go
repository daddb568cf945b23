package checkins

import (
	"errors"
	"strings"
	"time"

	"checkin-tracker/internal/ports/location"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("check-in name is empty")
	ErrInvalidEvent = errors.New("invalid check-in event")
)

// Normalizer construye eventos validados. No escribe en el store.
type Normalizer struct {
	now   func() time.Time
	newID func() string
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (n *Normalizer) Normalize(displayName string, hint *location.Coordinate) (CheckInEvent, error) {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return CheckInEvent{}, ErrEmptyName
	}

	e := CheckInEvent{
		ID:           n.newID(),
		FriendlyName: name,
		Timestamp:    n.now(),
	}

	// Lat/lon van juntos o no van.
	if hint != nil {
		c := *hint
		e.Coordinate = &c
	}

	return e, nil
}
