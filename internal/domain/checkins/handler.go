package checkins

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"checkin-tracker/internal/domain/scanner"
	"checkin-tracker/internal/domain/tags"
	"checkin-tracker/internal/ports/location"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

const maxHistoryLimit = 500

type HandlerOptions struct {
	// StrictEmptyName: nombre vacío => 400. Por defecto se ignora en silencio (204).
	StrictEmptyName bool
	// MapTimeLayout para las etiquetas del mapa. Vacío => DefaultMapTimeLayout.
	MapTimeLayout string
}

// LocationUpdater recibe fixes reportados por el dispositivo.
type LocationUpdater interface {
	Update(c location.Coordinate)
}

func RegisterRoutes(r chi.Router, svc *Service, opts HandlerOptions) {
	r.Route("/checkins", func(cr chi.Router) {
		cr.Post("/", createCheckInHandler(svc, opts))
		cr.Get("/", listHistoryHandler(svc))
		cr.Get("/raw", listAllHandler(svc))
		cr.Get("/map", mapPointsHandler(svc, opts))
	})

	r.Post("/scans", scanHandler(svc))
}

// RegisterLocationRoutes expone PUT /location para que el dispositivo reporte su fix.
func RegisterLocationRoutes(r chi.Router, u LocationUpdater) {
	if u == nil {
		return
	}
	r.Put("/location", updateLocationHandler(u))
}

// createCheckInRequest es el cuerpo de un check-in manual.
type createCheckInRequest struct {
	Name  string `json:"name" validate:"max=200"`
	Notes string `json:"notes" validate:"max=2000"`
}

type coordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// checkInResponse representa un check-in devuelto por la API.
type checkInResponse struct {
	ID           string              `json:"id"`
	FriendlyName string              `json:"friendly_name"`
	Timestamp    time.Time           `json:"timestamp"`
	Notes        string              `json:"notes,omitempty"`
	Coordinate   *coordinateResponse `json:"coordinate,omitempty"`
	Source       Source              `json:"source"`
}

type mapPointResponse struct {
	EventID   string  `json:"event_id"`
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type recordRequest struct {
	TNF     uint8  `json:"tnf" validate:"lte=7"`
	Type    string `json:"type"`
	ID      string `json:"id"`
	Payload []byte `json:"payload"` // base64
}

type messageRequest struct {
	Records []recordRequest `json:"records" validate:"dive"`
}

// scanRequest es el callback de fin de scan del lector.
type scanRequest struct {
	TagCount     int             `json:"tag_count" validate:"gte=0"`
	ConnectError string          `json:"connect_error"`
	ReadError    string          `json:"read_error"`
	SessionError string          `json:"session_error"`
	Message      *messageRequest `json:"message"`
}

type scanResponse struct {
	State   string           `json:"state"`
	Reason  string           `json:"reason"`
	Message string           `json:"message"`
	Fields  []string         `json:"fields,omitempty"`
	Event   *checkInResponse `json:"event,omitempty"`
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// createCheckInHandler godoc
// @Summary Check-in manual
// @Description Registra un check-in con el nombre ingresado. Usa la última ubicación conocida si existe. Un nombre vacío se ignora (204) salvo en modo estricto (400).
// @Tags checkins
// @Accept json
// @Produce json
// @Param payload body createCheckInRequest true "Nombre y notas opcionales"
// @Success 201 {object} checkInResponse
// @Success 204 "nombre vacío ignorado"
// @Failure 400 {string} string "invalid json / validation / empty name (strict)"
// @Failure 500 {string} string "internal error"
// @Router /checkins [post]
func createCheckInHandler(svc *Service, opts HandlerOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCheckInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		e, err := svc.CheckIn(r.Context(), ManualInput{Name: req.Name, Notes: req.Notes})
		if err != nil {
			if errors.Is(err, ErrEmptyName) {
				if opts.StrictEmptyName {
					http.Error(w, "name must not be empty", http.StatusBadRequest)
					return
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toCheckInResponse(e))
	}
}

// listHistoryHandler godoc
// @Summary Historial de check-ins
// @Description Lista los check-ins del más reciente al más antiguo.
// @Tags checkins
// @Produce json
// @Param limit query int false "Máximo de eventos (1-500). Sin límite si se omite"
// @Success 200 {array} checkInResponse
// @Failure 400 {string} string "invalid limit"
// @Failure 500 {string} string "internal error"
// @Router /checkins [get]
func listHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > maxHistoryLimit {
				http.Error(w, "limit must be an integer between 1 and 500", http.StatusBadRequest)
				return
			}
			limit = n
		}

		items, err := svc.History(r.Context(), limit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toCheckInResponses(items))
	}
}

// listAllHandler godoc
// @Summary Check-ins en orden de inserción
// @Tags checkins
// @Produce json
// @Success 200 {array} checkInResponse
// @Failure 500 {string} string "internal error"
// @Router /checkins/raw [get]
func listAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.All(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toCheckInResponses(items))
	}
}

// mapPointsHandler godoc
// @Summary Puntos de mapa
// @Description Solo check-ins con coordenadas. La etiqueta es "{nombre}, at {hora}".
// @Tags checkins
// @Produce json
// @Success 200 {array} mapPointResponse
// @Failure 500 {string} string "internal error"
// @Router /checkins/map [get]
func mapPointsHandler(svc *Service, opts HandlerOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		points, err := svc.MapPoints(r.Context(), opts.MapTimeLayout)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]mapPointResponse, 0, len(points))
		for _, p := range points {
			out = append(out, mapPointResponse{
				EventID:   p.EventID,
				Label:     p.Label,
				Latitude:  p.Coordinate.Latitude,
				Longitude: p.Coordinate.Longitude,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// scanHandler godoc
// @Summary Resultado de un scan de tag
// @Description Recibe el callback del lector (cantidad de tags + mensaje NDEF o error de sesión), corre la sesión de scan y registra el check-in si el payload es válido. Un scan abortado no crea eventos.
// @Tags scans
// @Accept json
// @Produce json
// @Param payload body scanRequest true "Callback del lector; payload de records en base64"
// @Success 201 {object} scanResponse
// @Failure 400 {string} string "invalid json / validation"
// @Failure 422 {object} scanResponse "scan abortado"
// @Failure 500 {string} string "internal error"
// @Router /scans [post]
func scanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		sess, err := svc.BeginScan(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if err := sess.Deliver(r.Context(), req.completion()); err != nil {
			http.Error(w, "scan cancelled", http.StatusRequestTimeout)
			return
		}

		e, out, err := svc.CompleteScan(r.Context(), sess)
		resp := scanResponse{
			State:   out.State.String(),
			Reason:  scanner.Reason(out.Err),
			Message: out.Message,
			Fields:  out.Candidate.Fields,
		}
		if err != nil {
			if out.State == scanner.Aborted {
				writeJSON(w, http.StatusUnprocessableEntity, resp)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		ev := toCheckInResponse(e)
		resp.Event = &ev
		writeJSON(w, http.StatusCreated, resp)
	}
}

// updateLocationHandler godoc
// @Summary Reportar ubicación
// @Description El dispositivo reporta su último fix. Latitud y longitud van juntas.
// @Tags location
// @Accept json
// @Param payload body locationRequest true "Fix actual"
// @Success 204
// @Failure 400 {string} string "invalid json / validation"
// @Router /location [put]
func updateLocationHandler(u LocationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req locationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		u.Update(location.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude})
		w.WriteHeader(http.StatusNoContent)
	}
}

func (req scanRequest) completion() scanner.Completion {
	c := scanner.Completion{
		TagCount:     req.TagCount,
		ConnectError: req.ConnectError,
		ReadError:    req.ReadError,
		SessionError: req.SessionError,
	}
	if req.Message != nil {
		msg := &tags.Message{Records: make([]tags.Record, 0, len(req.Message.Records))}
		for _, rec := range req.Message.Records {
			msg.Records = append(msg.Records, tags.Record{
				TNF:     tags.TNF(rec.TNF),
				Type:    []byte(rec.Type),
				ID:      []byte(rec.ID),
				Payload: rec.Payload,
			})
		}
		c.Message = msg
	}
	return c
}

func toCheckInResponse(e CheckInEvent) checkInResponse {
	out := checkInResponse{
		ID:           e.ID,
		FriendlyName: e.FriendlyName,
		Timestamp:    e.Timestamp,
		Notes:        e.Notes,
		Source:       e.Source,
	}
	if e.Coordinate != nil {
		out.Coordinate = &coordinateResponse{
			Latitude:  e.Coordinate.Latitude,
			Longitude: e.Coordinate.Longitude,
		}
	}
	return out
}

func toCheckInResponses(items []CheckInEvent) []checkInResponse {
	out := make([]checkInResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toCheckInResponse(e))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
