package checkins

import (
	"fmt"
	"sort"

	"checkin-tracker/internal/ports/location"
)

// DefaultMapTimeLayout se usa en las etiquetas del mapa.
const DefaultMapTimeLayout = "Jan 2, 2006 3:04 PM"

// History devuelve una copia ordenada por timestamp desc (más reciente primero).
// Con timestamps iguales se respeta el orden de inserción.
func History(events []CheckInEvent) []CheckInEvent {
	out := make([]CheckInEvent, len(events))
	copy(out, events)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

type MapPoint struct {
	EventID    string
	Label      string
	Coordinate location.Coordinate
}

// MapPoints filtra a eventos con coordenadas y arma la etiqueta "{nombre}, at {hora}".
func MapPoints(events []CheckInEvent, layout string) []MapPoint {
	if layout == "" {
		layout = DefaultMapTimeLayout
	}

	out := make([]MapPoint, 0, len(events))
	for _, e := range events {
		if !e.Geotagged() {
			continue
		}
		out = append(out, MapPoint{
			EventID:    e.ID,
			Label:      fmt.Sprintf("%s, at %s", e.FriendlyName, e.Timestamp.Format(layout)),
			Coordinate: *e.Coordinate,
		})
	}
	return out
}
