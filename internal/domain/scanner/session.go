package scanner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"checkin-tracker/internal/domain/tags"
)

type State int

const (
	Idle State = iota
	Scanning
	AwaitingConnection
	AwaitingPayload
	Completed
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Scanning:
		return "scanning"
	case AwaitingConnection:
		return "awaiting_connection"
	case AwaitingPayload:
		return "awaiting_payload"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

func (s State) Terminal() bool {
	return s == Completed || s == Aborted
}

// Messages son los textos que se muestran al invalidar la sesión.
type Messages struct {
	TooManyTags       string
	NoTag             string
	ConnectionFailure string
	Unconfigured      string
	CorruptPayload    string
	UnsupportedKind   string
	Timeout           string
	Completed         string
}

var DefaultMessages = Messages{
	TooManyTags:       "More than 1 tag is detected. Please remove all tags and try again.",
	NoTag:             "No tag detected. Please try again.",
	ConnectionFailure: "Unable to connect to tag.",
	Unconfigured:      "This check-in point has not been configured.",
	CorruptPayload:    "This check-in point is corrupt.",
	UnsupportedKind:   "This check-in point is not supported.",
	Timeout:           "Scan timed out.",
	Completed:         "Checked in.",
}

type Config struct {
	Messages Messages
	// Timeout invalida la sesión si no llega a un estado terminal. 0 = sin timeout.
	Timeout time.Duration
}

// Outcome es el resultado final de una sesión.
type Outcome struct {
	State     State
	Candidate tags.Candidate
	Err       error
	Message   string
}

// Session modela una interacción de scan como máquina de estados:
// Idle -> Scanning -> AwaitingConnection -> AwaitingPayload -> Completed,
// con Aborted alcanzable desde cualquier estado no terminal.
// Las señales llegan por canal y se procesan en una sola goroutine.
type Session struct {
	cfg Config
	now func() time.Time

	signals chan Signal
	done    chan struct{}

	mu        sync.RWMutex
	state     State
	startedAt time.Time
	outcome   Outcome
}

func NewSession(cfg Config) *Session {
	if cfg.Messages == (Messages{}) {
		cfg.Messages = DefaultMessages
	}
	return &Session{
		cfg:     cfg,
		now:     time.Now,
		signals: make(chan Signal),
		done:    make(chan struct{}),
		state:   Idle,
	}
}

// Begin pasa a Scanning y arranca el loop. ctx acota toda la sesión.
func (s *Session) Begin(ctx context.Context) error {
	s.mu.Lock()
	if s.state != Idle {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.state = Scanning
	s.startedAt = s.now()
	s.mu.Unlock()

	go s.run(ctx)
	return nil
}

// Send entrega una señal al loop. Devuelve ErrSessionClosed si la sesión ya terminó.
func (s *Session) Send(ctx context.Context, sig Signal) error {
	if s.State() == Idle {
		return ErrNotStarted
	}
	select {
	case <-s.done:
		return ErrSessionClosed
	default:
	}

	select {
	case s.signals <- sig:
		return nil
	case <-s.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Deliver manda todas las señales de un Completion y corta en cuanto la sesión cierra.
func (s *Session) Deliver(ctx context.Context, c Completion) error {
	for _, sig := range c.Signals() {
		err := s.Send(ctx, sig)
		if err == ErrSessionClosed {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Wait bloquea hasta que la sesión llega a Completed o Aborted.
func (s *Session) Wait(ctx context.Context) (Outcome, error) {
	if s.State() == Idle {
		return Outcome{}, ErrNotStarted
	}
	select {
	case <-s.done:
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.outcome, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) StartedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.startedAt
}

func (s *Session) run(ctx context.Context) {
	defer close(s.done)

	var timeout <-chan time.Time
	if s.cfg.Timeout > 0 {
		t := time.NewTimer(s.cfg.Timeout)
		defer t.Stop()
		timeout = t.C
	}

	for {
		select {
		case <-ctx.Done():
			s.finish(s.abort(ctx.Err(), ""))
			return
		case <-timeout:
			s.finish(s.abort(ErrSessionTimeout, s.cfg.Messages.Timeout))
			return
		case sig := <-s.signals:
			next, out := s.transition(s.State(), sig)
			if out != nil {
				s.finish(*out)
				return
			}
			s.mu.Lock()
			s.state = next
			s.mu.Unlock()
		}
	}
}

func (s *Session) finish(out Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = out.State
	s.outcome = out
}

// transition aplica una señal. Devuelve un Outcome cuando la sesión termina.
// Señales fuera de orden se ignoran.
func (s *Session) transition(cur State, sig Signal) (State, *Outcome) {
	msgs := s.cfg.Messages

	if inv, ok := sig.(Invalidated); ok {
		out := s.abort(fmt.Errorf("%w: %s", ErrSessionInvalidated, inv.Reason), inv.Reason)
		return Aborted, &out
	}

	switch cur {
	case Scanning:
		d, ok := sig.(TagsDetected)
		if !ok {
			return cur, nil
		}
		switch {
		case d.Count > 1:
			out := s.abort(ErrTooManyTags, msgs.TooManyTags)
			return Aborted, &out
		case d.Count < 1:
			out := s.abort(ErrNoTag, msgs.NoTag)
			return Aborted, &out
		}
		return AwaitingConnection, nil

	case AwaitingConnection:
		c, ok := sig.(Connected)
		if !ok {
			return cur, nil
		}
		if c.Err != nil {
			out := s.abort(fmt.Errorf("%w: %v", ErrConnectionFailure, c.Err), msgs.ConnectionFailure)
			return Aborted, &out
		}
		return AwaitingPayload, nil

	case AwaitingPayload:
		p, ok := sig.(PayloadRead)
		if !ok {
			return cur, nil
		}
		out := s.evaluatePayload(p)
		return out.State, &out
	}

	return cur, nil
}

func (s *Session) evaluatePayload(p PayloadRead) Outcome {
	msgs := s.cfg.Messages

	if p.Err != nil {
		return s.abort(fmt.Errorf("%w: %v", ErrConnectionFailure, p.Err), msgs.ConnectionFailure)
	}
	if p.Message.IsEmpty() {
		return s.abort(ErrUnconfiguredPoint, msgs.Unconfigured)
	}

	rec := p.Message.First()
	switch tags.KindOf(rec) {
	case tags.KindEmpty:
		return s.abort(ErrUnconfiguredPoint, msgs.Unconfigured)
	case tags.KindURI, tags.KindMedia, tags.KindExternal:
		return s.abort(ErrUnsupportedPointKind, msgs.UnsupportedKind)
	}

	c, err := tags.Decode(rec)
	if err != nil {
		return s.abort(err, msgs.CorruptPayload)
	}

	return Outcome{
		State:     Completed,
		Candidate: c,
		Message:   msgs.Completed,
	}
}

func (s *Session) abort(err error, msg string) Outcome {
	return Outcome{State: Aborted, Err: err, Message: msg}
}
