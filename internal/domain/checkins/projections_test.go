package checkins

import (
	"testing"
	"time"

	"checkin-tracker/internal/ports/location"
)

func TestHistory_DescendingAndStable(t *testing.T) {
	base := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	in := []CheckInEvent{
		event("old", base, nil),
		event("tie-1", base.Add(time.Hour), nil),
		event("newest", base.Add(2*time.Hour), nil),
		event("tie-2", base.Add(time.Hour), nil),
	}

	got := History(in)

	want := []string{"newest", "tie-1", "tie-2", "old"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}

	// Proyección no destructiva.
	if in[0].ID != "old" || in[2].ID != "newest" {
		t.Fatalf("History mutated its input")
	}
}

func TestMapPoints_OnlyGeotagged(t *testing.T) {
	ts := time.Date(2025, 12, 22, 15, 4, 0, 0, time.UTC)
	in := []CheckInEvent{
		{ID: "a", FriendlyName: "Park", Timestamp: ts, Coordinate: &location.Coordinate{Latitude: -33.8, Longitude: 151.2}},
		{ID: "b", FriendlyName: "Basement", Timestamp: ts},
		{ID: "c", FriendlyName: "Beach", Timestamp: ts, Coordinate: &location.Coordinate{Latitude: -33.9, Longitude: 151.3}},
	}

	got := MapPoints(in, "")

	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].EventID != "a" || got[1].EventID != "c" {
		t.Fatalf("unexpected points: %+v", got)
	}
	if got[0].Label != "Park, at Dec 22, 2025 3:04 PM" {
		t.Fatalf("unexpected label: %q", got[0].Label)
	}
	if got[1].Coordinate.Longitude != 151.3 {
		t.Fatalf("unexpected coordinate: %+v", got[1].Coordinate)
	}
}

func TestMapPoints_CustomLayout(t *testing.T) {
	ts := time.Date(2025, 12, 22, 15, 4, 0, 0, time.UTC)
	in := []CheckInEvent{
		{ID: "a", FriendlyName: "Park", Timestamp: ts, Coordinate: &location.Coordinate{}},
	}

	got := MapPoints(in, time.Kitchen)
	if got[0].Label != "Park, at 3:04PM" {
		t.Fatalf("unexpected label: %q", got[0].Label)
	}
}
