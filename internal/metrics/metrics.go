package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics, or one
// built without a registerer, records nothing.
type Metrics struct {
	validations     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
	importedRows    *prometheus.CounterVec
}

// New registers the service metrics on the provided registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	validations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "voucher_validations_total",
		Help: "Voucher validations by outcome.",
	}, []string{"result"})
	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_lookups_total",
		Help: "Cache lookups by cache name and result.",
	}, []string{"cache", "result"})
	importedRows := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "voucher_import_rows_total",
		Help: "Voucher import rows by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(validations, requestDuration, cacheLookups, importedRows)
	return &Metrics{
		validations:     validations,
		requestDuration: requestDuration,
		cacheLookups:    cacheLookups,
		importedRows:    importedRows,
	}
}

// RecordValidation increments the validation counter for an outcome.
func (m *Metrics) RecordValidation(outcome string) {
	if m == nil || m.validations == nil {
		return
	}
	m.validations.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveRequest records the duration of an HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil || m.requestDuration == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, normalizeLabel(route), strconv.Itoa(status)).Observe(duration.Seconds())
}

// RecordCacheLookup counts a cache hit or miss.
func (m *Metrics) RecordCacheLookup(cache string, hit bool) {
	if m == nil || m.cacheLookups == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(normalizeLabel(cache), result).Inc()
}

// RecordImport adds the row counts of one voucher import.
func (m *Metrics) RecordImport(inserted, updated, skipped int) {
	if m == nil || m.importedRows == nil {
		return
	}
	m.importedRows.WithLabelValues("inserted").Add(float64(inserted))
	m.importedRows.WithLabelValues("updated").Add(float64(updated))
	m.importedRows.WithLabelValues("skipped").Add(float64(skipped))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
