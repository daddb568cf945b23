package checkins

import (
	"context"
	"errors"
	"strings"
	"time"

	"checkin-tracker/internal/domain/scanner"
	"checkin-tracker/internal/platform/logger"
	"checkin-tracker/internal/platform/metrics"
	"checkin-tracker/internal/ports/location"
)

type Options struct {
	// Location puede ser nil: los eventos quedan sin coordenadas.
	Location location.Provider

	// FixWait > 0 espera hasta ese tiempo un fix posterior al pedido
	// (solo si el provider implementa location.FixAwaiter). 0 = acepta el último conocido.
	FixWait time.Duration

	Scan scanner.Config

	Logger  logger.Logger
	Metrics *metrics.Metrics
}

type Service struct {
	store *Store
	norm  *Normalizer

	loc     location.Provider
	fixWait time.Duration
	scanCfg scanner.Config

	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(store *Store, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store:   store,
		norm:    NewNormalizer(),
		loc:     opts.Location,
		fixWait: opts.FixWait,
		scanCfg: opts.Scan,
		log:     log.With(map[string]any{"component": "checkins"}),
		metrics: opts.Metrics,
		now:     time.Now,
	}
}

type ManualInput struct {
	Name  string
	Notes string
}

// CheckIn registra una entrada manual. Nombre vacío => ErrEmptyName y nada se guarda.
func (s *Service) CheckIn(ctx context.Context, in ManualInput) (CheckInEvent, error) {
	requestedAt := s.RequestLocation(ctx)

	e, err := s.record(ctx, in.Name, in.Notes, SourceManual, requestedAt)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			s.log.Debug("blank manual check-in ignored", nil)
		}
		return CheckInEvent{}, err
	}
	return e, nil
}

// BeginScan pide ubicación (fire-and-forget) y arranca una sesión de scan.
func (s *Service) BeginScan(ctx context.Context) (*scanner.Session, error) {
	s.RequestLocation(ctx)

	sess := scanner.NewSession(s.scanCfg)
	if err := sess.Begin(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}

// CompleteScan espera el fin de la sesión y, si terminó bien, normaliza y guarda.
// Un scan abortado nunca produce evento.
func (s *Service) CompleteScan(ctx context.Context, sess *scanner.Session) (CheckInEvent, scanner.Outcome, error) {
	out, err := sess.Wait(ctx)
	if err != nil {
		return CheckInEvent{}, scanner.Outcome{}, err
	}

	s.metrics.ObserveScan(scanner.Reason(out.Err))

	if out.State != scanner.Completed {
		s.log.Warn("scan aborted", map[string]any{
			"reason":  scanner.Reason(out.Err),
			"error":   errString(out.Err),
			"message": out.Message,
		})
		return CheckInEvent{}, out, out.Err
	}

	e, err := s.record(ctx, out.Candidate.DisplayName, "", SourceTag, sess.StartedAt())
	if err != nil {
		return CheckInEvent{}, out, err
	}
	return e, out, nil
}

// RequestLocation dispara un pedido de ubicación y devuelve el instante del pedido.
func (s *Service) RequestLocation(ctx context.Context) time.Time {
	at := s.now()
	if s.loc != nil {
		s.loc.RequestLocation(ctx)
	}
	return at
}

func (s *Service) All(ctx context.Context) ([]CheckInEvent, error) {
	return s.store.All(ctx)
}

// History: más reciente primero. limit <= 0 => sin límite.
func (s *Service) History(ctx context.Context, limit int) ([]CheckInEvent, error) {
	items, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	out := History(items)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Service) MapPoints(ctx context.Context, layout string) ([]MapPoint, error) {
	items, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	return MapPoints(items, layout), nil
}

func (s *Service) record(ctx context.Context, name, notes string, src Source, requestedAt time.Time) (CheckInEvent, error) {
	// Validar el nombre antes de tocar la ubicación.
	if strings.TrimSpace(name) == "" {
		return CheckInEvent{}, ErrEmptyName
	}

	e, err := s.norm.Normalize(name, s.locationHint(ctx, requestedAt))
	if err != nil {
		return CheckInEvent{}, err
	}
	e.Notes = strings.TrimSpace(notes)
	e.Source = src

	if err := s.store.Append(ctx, e); err != nil {
		s.log.Error("append failed", map[string]any{"error": err.Error(), "source": string(src)})
		return CheckInEvent{}, err
	}

	s.metrics.ObserveAppend(string(src), e.Geotagged())
	s.log.Info("check-in recorded", map[string]any{
		"event_id":  e.ID,
		"source":    string(src),
		"geotagged": e.Geotagged(),
	})
	return e, nil
}

func (s *Service) locationHint(ctx context.Context, requestedAt time.Time) *location.Coordinate {
	if s.loc == nil {
		return nil
	}

	if s.fixWait > 0 {
		if aw, ok := s.loc.(location.FixAwaiter); ok {
			wctx, cancel := context.WithTimeout(ctx, s.fixWait)
			c, ok := aw.AwaitFix(wctx, requestedAt)
			cancel()
			if ok {
				return &c
			}
		}
	}

	if c, ok := s.loc.LastKnown(ctx); ok {
		return &c
	}
	return nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
