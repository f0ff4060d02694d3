package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionMutations *prometheus.CounterVec
	reportsGenerated     *prometheus.CounterVec
	reportDuration       prometheus.Histogram
	shareTokensMinted    prometheus.Counter
	shareDecodeFailures  prometheus.Counter
	sharedViewEntered    prometheus.Counter
	backupImports        *prometheus.CounterVec
	insightRequests      *prometheus.CounterVec
	insightDuration      prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionMutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_mutations_total",
				Help: "Total number of transaction mutations by operation and status",
			},
			[]string{"operation", "status"},
		),
		reportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of reports generated by timeframe",
			},
			[]string{"timeframe"},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_milliseconds",
				Help:    "Report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		shareTokensMinted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "share_tokens_minted_total",
				Help: "Total number of share tokens minted",
			},
		),
		shareDecodeFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "share_decode_failures_total",
				Help: "Total number of share tokens that failed to decode",
			},
		),
		sharedViewEntered: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "shared_view_entered_total",
				Help: "Total number of shared read-only view activations",
			},
		),
		backupImports: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backup_imports_total",
				Help: "Total number of backup imports by status",
			},
			[]string{"status"},
		),
		insightRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insight_requests_total",
				Help: "Total number of insight requests by outcome",
			},
			[]string{"outcome"},
		),
		insightDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insight_request_duration_milliseconds",
				Help:    "Insight request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction.mutation":
		m.transactionMutations.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case "report.generated":
		if timeframe := tags["timeframe"]; timeframe != "" {
			m.reportsGenerated.WithLabelValues(timeframe).Inc()
		}
	case "share.minted":
		m.shareTokensMinted.Inc()
	case "share.decode.failed":
		m.shareDecodeFailures.Inc()
	case "share.view.entered":
		m.sharedViewEntered.Inc()
	case "backup.import":
		if status := tags["status"]; status != "" {
			m.backupImports.WithLabelValues(status).Inc()
		}
	case "insight.request":
		if outcome := tags["outcome"]; outcome != "" {
			m.insightRequests.WithLabelValues(outcome).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report.generation":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	case "insight.request":
		m.insightDuration.Observe(float64(duration.Milliseconds()))
	}
}
