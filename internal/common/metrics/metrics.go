package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "outreach"

	EngineSubsystem  = "engine"
	ControlSubsystem = "control"
)

// Общие метрики для всех сервисов.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of outgoing HTTP requests",
		},
		[]string{"service", "method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "endpoint"},
	)
)

// Метрики движка.
var (
	PassesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: EngineSubsystem,
			Name:      "passes_total",
			Help:      "Total number of scheduled passes by component",
		},
		[]string{"pass", "status"},
	)

	PassDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: EngineSubsystem,
			Name:      "pass_duration_seconds",
			Help:      "Scheduled pass duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"pass"},
	)

	MessagesFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: EngineSubsystem,
			Name:      "messages_fetched_total",
			Help:      "Total number of channel messages fetched by delta state",
		},
		[]string{"state"},
	)

	CursorAnomaliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: EngineSubsystem,
			Name:      "cursor_anomalies_total",
			Help:      "Total number of cursor synchronization anomalies",
		},
		[]string{"type"},
	)

	CandidatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: EngineSubsystem,
			Name:      "candidates_total",
			Help:      "Total number of intake outcomes",
		},
		[]string{"outcome"},
	)

	MessagesSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: EngineSubsystem,
			Name:      "messages_sent_total",
			Help:      "Total number of outreach send attempts by strategy",
		},
		[]string{"strategy", "status"},
	)

	SendBudgetRemaining = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: EngineSubsystem,
			Name:      "send_budget_remaining",
			Help:      "Sends left in the current one-minute window",
		},
	)

	ProviderStatusesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: EngineSubsystem,
			Name:      "provider_statuses_total",
			Help:      "Total number of platform statuses routed to remediation",
		},
		[]string{"kind"},
	)

	JobsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: EngineSubsystem,
			Name:      "jobs_processed_total",
			Help:      "Total number of processed jobs by kind",
		},
		[]string{"kind", "status"},
	)

	AlertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: EngineSubsystem,
			Name:      "alerts_total",
			Help:      "Total number of operator alerts",
		},
		[]string{"kind", "status"},
	)
)

// Метрики управляющего бота.
var (
	ControlCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: ControlSubsystem,
			Name:      "commands_total",
			Help:      "Total number of control commands processed",
		},
		[]string{"command", "status"},
	)
)

func statusLabel(ok bool) string {
	if ok {
		return "success"
	}

	return "error"
}

func RecordHTTPRequest(service, method, endpoint string, statusCode int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(service, method, endpoint, statusLabel(statusCode > 0 && statusCode < 400)).Inc()
	HTTPRequestDuration.WithLabelValues(service, method, endpoint).Observe(duration.Seconds())
}

func RecordPass(pass string, err error, duration time.Duration) {
	PassesTotal.WithLabelValues(pass, statusLabel(err == nil)).Inc()
	PassDuration.WithLabelValues(pass).Observe(duration.Seconds())
}

func RecordMessagesFetched(state string, count int) {
	MessagesFetchedTotal.WithLabelValues(state).Add(float64(count))
}

func RecordCursorAnomaly(anomalyType string) {
	CursorAnomaliesTotal.WithLabelValues(anomalyType).Inc()
}

func RecordCandidate(outcome string) {
	CandidatesTotal.WithLabelValues(outcome).Inc()
}

func RecordSend(strategy string, ok bool) {
	MessagesSentTotal.WithLabelValues(strategy, statusLabel(ok)).Inc()
}

func UpdateSendBudget(remaining int64) {
	SendBudgetRemaining.Set(float64(remaining))
}

func RecordStatus(kind string) {
	ProviderStatusesTotal.WithLabelValues(kind).Inc()
}

func RecordJob(kind string, ok bool) {
	JobsProcessedTotal.WithLabelValues(kind, statusLabel(ok)).Inc()
}

func RecordAlert(kind string, ok bool) {
	AlertsTotal.WithLabelValues(kind, statusLabel(ok)).Inc()
}

func RecordControlCommand(command string, ok bool) {
	ControlCommandsTotal.WithLabelValues(command, statusLabel(ok)).Inc()
}
