//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"checkin-tracker/internal/domain/checkins"
	"checkin-tracker/internal/ports/location"

	"github.com/google/uuid"
)

// Correr con: CHECKIN_TEST_DSN=postgres://... go test -tags integration ./internal/adapters/storage/postgres/
// Vacía checkin_events: usar una base descartable.
func openTestRepo(t *testing.T) *CheckinsRepo {
	t.Helper()

	dsn := os.Getenv("CHECKIN_TEST_DSN")
	if dsn == "" {
		t.Skip("CHECKIN_TEST_DSN not set")
	}

	ctx := context.Background()
	db, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.ExecContext(ctx, `TRUNCATE checkin_events RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return NewCheckinsRepo(db)
}

func TestCheckinsRepo_AllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	base := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	in := []checkins.CheckInEvent{
		// timestamps decrecientes: el orden sale de seq, no de occurred_at
		{ID: uuid.NewString(), FriendlyName: "Park", Timestamp: base, Source: checkins.SourceManual,
			Coordinate: &location.Coordinate{Latitude: -33.8, Longitude: 151.2}},
		{ID: uuid.NewString(), FriendlyName: "Cellar", Timestamp: base.Add(-time.Hour), Source: checkins.SourceTag},
		{ID: uuid.NewString(), FriendlyName: "Beach", Timestamp: base.Add(-2 * time.Hour), Notes: "windy", Source: checkins.SourceManual,
			Coordinate: &location.Coordinate{Latitude: 0, Longitude: 0}},
	}
	for _, e := range in {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("Append(%s): %v", e.FriendlyName, err)
		}
	}

	got, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("expected %d events, got %d", len(in), len(got))
	}
	for i := range in {
		if got[i].ID != in[i].ID {
			t.Fatalf("position %d: got %s, want %s", i, got[i].FriendlyName, in[i].FriendlyName)
		}
		if !got[i].Timestamp.Equal(in[i].Timestamp) || got[i].Source != in[i].Source || got[i].Notes != in[i].Notes {
			t.Fatalf("position %d: unexpected event %+v", i, got[i])
		}
	}

	if got[0].Coordinate == nil || got[0].Coordinate.Latitude != -33.8 || got[0].Coordinate.Longitude != 151.2 {
		t.Fatalf("expected coordinate on first event, got %+v", got[0].Coordinate)
	}
	if got[1].Coordinate != nil {
		t.Fatalf("expected NULL lat/lon to read back as nil, got %+v", got[1].Coordinate)
	}
	// (0,0) es una coordenada válida, no "sin ubicación"
	if got[2].Coordinate == nil {
		t.Fatalf("expected zero coordinate to survive the round trip")
	}
}

func TestCheckinsRepo_RejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	e := checkins.CheckInEvent{ID: uuid.NewString(), FriendlyName: "Park", Timestamp: time.Now(), Source: checkins.SourceManual}
	if err := repo.Append(ctx, e); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := repo.Append(ctx, e); err == nil {
		t.Fatalf("expected unique violation on duplicate id")
	}

	got, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
}
