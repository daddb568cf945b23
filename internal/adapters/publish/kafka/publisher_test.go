package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"checkin-tracker/internal/domain/checkins"
	"checkin-tracker/internal/ports/location"

	kafkago "github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func TestPublisher_OnAppend_WritesJSON(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisherWithWriter(w, nil)

	ts := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	p.OnAppend(checkins.CheckInEvent{
		ID:           "e-1",
		FriendlyName: "Park",
		Timestamp:    ts,
		Coordinate:   &location.Coordinate{Latitude: -33.8, Longitude: 151.2},
		Source:       checkins.SourceTag,
	})

	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !w.closed {
		t.Fatalf("expected writer closed")
	}
	if len(w.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.msgs))
	}
	if string(w.msgs[0].Key) != "e-1" {
		t.Fatalf("key = %q, want e-1", w.msgs[0].Key)
	}

	var got eventMessage
	if err := json.Unmarshal(w.msgs[0].Value, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.FriendlyName != "Park" || got.Source != "tag" || !got.Timestamp.Equal(ts) {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.Latitude == nil || *got.Latitude != -33.8 || got.Longitude == nil || *got.Longitude != 151.2 {
		t.Fatalf("unexpected coordinates: %+v", got)
	}
}

func TestPublisher_OnAppend_NoCoordinates(t *testing.T) {
	m := toMessage(checkins.CheckInEvent{ID: "e-2", FriendlyName: "Gym", Timestamp: time.Now()})
	if m.Latitude != nil || m.Longitude != nil {
		t.Fatalf("expected no coordinates, got %+v", m)
	}
}

func TestPublisher_WriteErrorIsSwallowed(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := NewPublisherWithWriter(w, nil)

	p.OnAppend(checkins.CheckInEvent{ID: "e-3", FriendlyName: "Cafe", Timestamp: time.Now()})
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if len(w.msgs) != 0 {
		t.Fatalf("expected no messages recorded")
	}
}

func TestNewPublisher_DisabledWithoutBrokers(t *testing.T) {
	if p := NewPublisher(nil, "checkins", nil); p != nil {
		t.Fatalf("expected nil publisher without brokers")
	}
	var p *Publisher
	p.OnAppend(checkins.CheckInEvent{ID: "x"})
	if err := p.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
}
