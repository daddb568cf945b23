package kafka

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"checkin-tracker/internal/domain/checkins"
	"checkin-tracker/internal/platform/logger"

	kafkago "github.com/segmentio/kafka-go"
)

var _ checkins.Observer = (*Publisher)(nil)

// emitTimeout acota cada write asíncrono.
const emitTimeout = 5 * time.Second

// MessageWriter es lo que usa Publisher de *kafka.Writer (permite fakes en tests).
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher es un observer del store que publica cada check-in en un topic.
// Best-effort: OnAppend no bloquea al writer del store y los errores solo se loguean.
type Publisher struct {
	writer MessageWriter
	log    logger.Logger
	wg     sync.WaitGroup
}

type eventMessage struct {
	ID           string    `json:"id"`
	FriendlyName string    `json:"friendly_name"`
	Timestamp    time.Time `json:"timestamp"`
	Notes        string    `json:"notes,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	Source       string    `json:"source"`
}

// NewPublisher devuelve nil si no hay brokers o topic (publicación deshabilitada).
func NewPublisher(brokers []string, topic string, log logger.Logger) *Publisher {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		BatchTimeout: 50 * time.Millisecond,
	}
	return NewPublisherWithWriter(w, log)
}

func NewPublisherWithWriter(w MessageWriter, log logger.Logger) *Publisher {
	if log == nil {
		log = logger.Nop()
	}
	return &Publisher{
		writer: w,
		log:    log.With(map[string]any{"component": "kafka-publisher"}),
	}
}

func (p *Publisher) OnAppend(e checkins.CheckInEvent) {
	if p == nil || p.writer == nil {
		return
	}

	payload, err := json.Marshal(toMessage(e))
	if err != nil {
		p.log.Error("marshal check-in", map[string]any{"error": err.Error(), "event_id": e.ID})
		return
	}

	// Key = id: el hash balancer manda cada evento siempre a la misma partición.
	msg := kafkago.Message{Key: []byte(e.ID), Value: payload}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), emitTimeout)
		defer cancel()
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			p.log.Warn("publish check-in failed", map[string]any{"error": err.Error(), "event_id": e.ID})
		}
	}()
}

// Close espera los writes en curso y cierra el writer.
func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	p.wg.Wait()
	return p.writer.Close()
}

func toMessage(e checkins.CheckInEvent) eventMessage {
	m := eventMessage{
		ID:           e.ID,
		FriendlyName: e.FriendlyName,
		Timestamp:    e.Timestamp.UTC(),
		Notes:        e.Notes,
		Source:       string(e.Source),
	}
	if e.Coordinate != nil {
		lat, lon := e.Coordinate.Latitude, e.Coordinate.Longitude
		m.Latitude = &lat
		m.Longitude = &lon
	}
	return m
}
