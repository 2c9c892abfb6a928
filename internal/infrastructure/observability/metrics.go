// Package observability owns the Prometheus metrics of the API.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of the service.
type Metrics struct {
	// Registry owns these metrics. Exposed so the /metrics endpoint can
	// serve it.
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	pdfRendered     prometheus.Counter
	logosUploaded   prometheus.Counter
}

// NewMetrics creates a dedicated Prometheus registry and registers the
// application metrics in it. A private registry avoids "duplicate
// collector" panics when NewMetrics runs more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "paintpro_request_duration_seconds",
				Help:    "Duration of HTTP requests by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paintpro_requests_total",
				Help: "Total HTTP requests by route and status class.",
			},
			[]string{"method", "route", "status"},
		),
		pdfRendered: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "paintpro_invoice_pdfs_total",
				Help: "Total invoice PDFs rendered.",
			},
		),
		logosUploaded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "paintpro_logo_uploads_total",
				Help: "Total accepted logo uploads.",
			},
		),
	}
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
	m.requestsTotal.WithLabelValues(method, route, status).Inc()
}

// IncrPDFRendered counts a rendered invoice PDF.
func (m *Metrics) IncrPDFRendered() { m.pdfRendered.Inc() }

// IncrLogoUploaded counts an accepted logo upload.
func (m *Metrics) IncrLogoUploaded() { m.logosUploaded.Inc() }
