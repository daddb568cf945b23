package router

import (
	"database/sql"
	"net/http"
	"time"

	locmem "checkin-tracker/internal/adapters/location/memory"
	mem "checkin-tracker/internal/adapters/storage/memory"
	pg "checkin-tracker/internal/adapters/storage/postgres"
	_ "checkin-tracker/internal/docs"
	"checkin-tracker/internal/domain/checkins"
	"checkin-tracker/internal/domain/scanner"
	"checkin-tracker/internal/middleware"
	"checkin-tracker/internal/platform/logger"
	"checkin-tracker/internal/platform/metrics"
	"checkin-tracker/internal/ports/location"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger // nil => Nop

	// Registry para /metrics. nil => registry propio del router.
	Registry *prometheus.Registry

	// Location nil => provider in-memory alimentado por PUT /location.
	Location location.Provider
	// LocationUpdater habilita PUT /location. Si Location es nil se usa el provider in-memory.
	LocationUpdater checkins.LocationUpdater

	// Observers reciben cada evento agregado (ej. publicación a Kafka).
	Observers []checkins.Observer

	Handler checkins.HandlerOptions
	Scan    scanner.Config
	FixWait time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := metrics.New(reg)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log, m))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler(reg))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var repo checkins.Repository
	if opts.DB != nil {
		repo = pg.NewCheckinsRepo(opts.DB)
	} else {
		repo = mem.NewCheckinRepo()
	}

	loc, updater := opts.Location, opts.LocationUpdater
	if loc == nil {
		p := locmem.NewProvider()
		loc, updater = p, p
	}

	store := checkins.NewStore(repo, opts.Observers...)
	svc := checkins.NewService(store, checkins.Options{
		Location: loc,
		FixWait:  opts.FixWait,
		Scan:     opts.Scan,
		Logger:   log,
		Metrics:  m,
	})

	checkins.RegisterRoutes(r, svc, opts.Handler)
	checkins.RegisterLocationRoutes(r, updater)

	return r
}
