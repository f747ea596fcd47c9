package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	cg "github.com/status-im/geckoterminal-client/geckoterminal_common"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "geckoterminal_client_"

var (
	// Requests to the GeckoTerminal API per operation and status
	// Cardinality: ~42 (14 operations × 3 statuses)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "requests_total",
			Help: "Total number of HTTP requests to the GeckoTerminal API",
		},
		[]string{"operation", "status"},
	)

	// Request latency per operation
	// Cardinality: ~14 (number of operations)
	RequestLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "request_latency_seconds",
			Help: "HTTP request latency by operation",
		},
		[]string{"operation"},
	)

	// Records produced by the last call of each operation
	// Cardinality: ~14 (number of operations)
	RecordsReturnedGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "records_returned",
			Help: "Number of flat records returned by the last call",
		},
		[]string{"operation"},
	)
)

// MetricsWriter records client metrics under a service name used in logs
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// OnRequest implements geckoterminal_common.IHttpStatusHandler
func (mw *MetricsWriter) OnRequest(op cg.Operation, status string, duration time.Duration) {
	RequestsTotal.WithLabelValues(string(op), status).Inc()
	RequestLatencyHistogram.WithLabelValues(string(op)).Observe(duration.Seconds())
}

// RecordRecordsReturned records how many records an operation produced
func (mw *MetricsWriter) RecordRecordsReturned(op cg.Operation, count int) {
	RecordsReturnedGauge.WithLabelValues(string(op)).Set(float64(count))
	log.Printf("Metrics: %s %s returned %d records", mw.serviceName, op, count)
}
