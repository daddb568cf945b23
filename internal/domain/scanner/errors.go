package scanner

import (
	"errors"

	"checkin-tracker/internal/domain/tags"
)

var (
	ErrTooManyTags          = errors.New("more than one tag detected")
	ErrNoTag                = errors.New("no tag detected")
	ErrConnectionFailure    = errors.New("tag connection failed")
	ErrUnconfiguredPoint    = errors.New("tag has not been configured")
	ErrCorruptPayload       = tags.ErrCorruptPayload
	ErrUnsupportedPointKind = tags.ErrUnsupportedKind
	ErrSessionInvalidated   = errors.New("scan session invalidated")
	ErrSessionTimeout       = errors.New("scan session timed out")

	ErrAlreadyStarted = errors.New("scan session already started")
	ErrNotStarted     = errors.New("scan session not started")
	ErrSessionClosed  = errors.New("scan session closed")
)

// Reason devuelve una etiqueta estable para logs/métricas.
func Reason(err error) string {
	switch {
	case err == nil:
		return "completed"
	case errors.Is(err, ErrTooManyTags):
		return "too_many_tags"
	case errors.Is(err, ErrNoTag):
		return "no_tag"
	case errors.Is(err, ErrConnectionFailure):
		return "connection_failure"
	case errors.Is(err, ErrUnconfiguredPoint):
		return "unconfigured_point"
	case errors.Is(err, ErrCorruptPayload):
		return "corrupt_payload"
	case errors.Is(err, ErrUnsupportedPointKind):
		return "unsupported_point_kind"
	case errors.Is(err, ErrSessionTimeout):
		return "timeout"
	case errors.Is(err, ErrSessionInvalidated):
		return "invalidated"
	default:
		return "cancelled"
	}
}
