package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados posibles de un envío de notificación.
const (
	ResultSent    = "sent"
	ResultFailed  = "failed"
	ResultSkipped = "skipped"
)

// Metrics agrupa los contadores del servicio.
// Usa un registry propio (no el global) para poder crear varias instancias en tests.
type Metrics struct {
	registry *prometheus.Registry

	ReportsCreated  prometheus.Counter
	StatusChanges   *prometheus.CounterVec
	Notifications   *prometheus.CounterVec
	ReportsByStatus *prometheus.GaugeVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		ReportsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "animal_rescue_reports_created_total",
			Help: "Total number of animal reports submitted",
		}),
		StatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "animal_rescue_status_changes_total",
			Help: "Report status changes, by new status",
		}, []string{"status"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "animal_rescue_notifications_total",
			Help: "Notification dispatch attempts, by kind and result",
		}, []string{"kind", "result"}),
		ReportsByStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "animal_rescue_reports_by_status",
			Help: "Current number of reports per status",
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.ReportsCreated,
		m.StatusChanges,
		m.Notifications,
		m.ReportsByStatus,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) IncrementReportsCreated() {
	if m == nil {
		return
	}
	m.ReportsCreated.Inc()
}

func (m *Metrics) IncrementStatusChange(status string) {
	if m == nil {
		return
	}
	m.StatusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveNotification(kind, result string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(kind, result).Inc()
}

// SetReportsByStatus reemplaza el snapshot completo del gauge.
func (m *Metrics) SetReportsByStatus(counts map[string]int) {
	if m == nil {
		return
	}
	m.ReportsByStatus.Reset()
	for status, n := range counts {
		m.ReportsByStatus.WithLabelValues(status).Set(float64(n))
	}
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
