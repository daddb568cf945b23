package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors del servicio. Un *Metrics nil es válido (no-op).
type Metrics struct {
	checkinsTotal *prometheus.CounterVec
	scansTotal    *prometheus.CounterVec
	storeSize     prometheus.Gauge
	httpDuration  *prometheus.HistogramVec
}

// New registra los collectors en reg. Usar un registry propio en tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		checkinsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "checkin",
			Name:      "events_appended_total",
			Help:      "Check-in events appended to the store",
		}, []string{"source", "geotagged"}),
		scansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "checkin",
			Name:      "scan_sessions_total",
			Help:      "Finished scan sessions by outcome reason",
		}, []string{"reason"}),
		storeSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "checkin",
			Name:      "store_events",
			Help:      "Events held by the store since process start",
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "checkin",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(m.checkinsTotal, m.scansTotal, m.storeSize, m.httpDuration)
	return m
}

func (m *Metrics) ObserveAppend(source string, geotagged bool) {
	if m == nil {
		return
	}
	m.checkinsTotal.WithLabelValues(source, strconv.FormatBool(geotagged)).Inc()
	m.storeSize.Inc()
}

func (m *Metrics) ObserveScan(reason string) {
	if m == nil {
		return
	}
	m.scansTotal.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler expone el registry en formato Prometheus.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
