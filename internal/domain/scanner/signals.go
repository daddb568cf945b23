package scanner

import (
	"errors"
	"strings"

	"checkin-tracker/internal/domain/tags"
)

// Signal es un evento externo del lector que mueve la máquina de estados.
type Signal interface {
	isSignal()
}

// TagsDetected: el lector vio Count tags en el campo.
type TagsDetected struct{ Count int }

// Connected: resultado de conectar al tag detectado.
type Connected struct{ Err error }

// PayloadRead: resultado de leer el mensaje NDEF.
type PayloadRead struct {
	Message *tags.Message
	Err     error
}

// Invalidated: el hardware cerró la sesión (cancelación del usuario, error de sesión).
type Invalidated struct{ Reason string }

func (TagsDetected) isSignal() {}
func (Connected) isSignal()    {}
func (PayloadRead) isSignal()  {}
func (Invalidated) isSignal()  {}

// Completion es el callback de fin de scan tal como lo reporta el lector:
// (tagCount, message) o un error de sesión.
type Completion struct {
	TagCount     int
	ConnectError string
	ReadError    string
	Message      *tags.Message
	SessionError string
}

// Signals traduce el callback a la secuencia de señales equivalente.
func (c Completion) Signals() []Signal {
	if msg := strings.TrimSpace(c.SessionError); msg != "" {
		return []Signal{Invalidated{Reason: msg}}
	}

	out := []Signal{TagsDetected{Count: c.TagCount}}
	if c.TagCount != 1 {
		return out
	}

	if msg := strings.TrimSpace(c.ConnectError); msg != "" {
		return append(out, Connected{Err: errors.New(msg)})
	}
	out = append(out, Connected{})

	var readErr error
	if msg := strings.TrimSpace(c.ReadError); msg != "" {
		readErr = errors.New(msg)
	}
	return append(out, PayloadRead{Message: c.Message, Err: readErr})
}
