package postgres

import (
	"context"
	"database/sql"

	"checkin-tracker/internal/domain/checkins"
	"checkin-tracker/internal/ports/location"
)

// schema: seq conserva el orden de inserción; lat/lon son todo-o-nada.
const checkinsSchema = `
	CREATE TABLE IF NOT EXISTS checkin_events (
		seq           BIGSERIAL PRIMARY KEY,
		id            UUID NOT NULL UNIQUE,
		friendly_name TEXT NOT NULL CHECK (btrim(friendly_name) <> ''),
		occurred_at   TIMESTAMPTZ NOT NULL,
		notes         TEXT NOT NULL DEFAULT '',
		latitude      DOUBLE PRECISION,
		longitude     DOUBLE PRECISION,
		source        TEXT NOT NULL,
		CHECK ((latitude IS NULL) = (longitude IS NULL))
	)
`

var _ checkins.Repository = (*CheckinsRepo)(nil)

type CheckinsRepo struct {
	db *sql.DB
}

func NewCheckinsRepo(db *sql.DB) *CheckinsRepo {
	return &CheckinsRepo{db: db}
}

// EnsureSchema crea la tabla si no existe.
func (r *CheckinsRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, checkinsSchema)
	return err
}

func (r *CheckinsRepo) Append(ctx context.Context, e checkins.CheckInEvent) error {
	var lat, lon sql.NullFloat64
	if e.Coordinate != nil {
		lat = sql.NullFloat64{Float64: e.Coordinate.Latitude, Valid: true}
		lon = sql.NullFloat64{Float64: e.Coordinate.Longitude, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO checkin_events (
			id, friendly_name, occurred_at,
			notes, latitude, longitude,
			source
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		e.ID,
		e.FriendlyName,
		e.Timestamp,
		e.Notes,
		lat,
		lon,
		string(e.Source),
	)
	return err
}

func (r *CheckinsRepo) All(ctx context.Context) ([]checkins.CheckInEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, friendly_name, occurred_at,
			notes, latitude, longitude,
			source
		FROM checkin_events
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]checkins.CheckInEvent, 0)
	for rows.Next() {
		var e checkins.CheckInEvent
		var lat, lon sql.NullFloat64
		var source string

		if err := rows.Scan(
			&e.ID,
			&e.FriendlyName,
			&e.Timestamp,
			&e.Notes,
			&lat,
			&lon,
			&source,
		); err != nil {
			return nil, err
		}

		if lat.Valid && lon.Valid {
			e.Coordinate = &location.Coordinate{Latitude: lat.Float64, Longitude: lon.Float64}
		}
		e.Source = checkins.Source(source)

		out = append(out, e)
	}

	return out, rows.Err()
}
