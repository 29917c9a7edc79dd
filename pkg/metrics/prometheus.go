// Package metrics provides Prometheus metrics for the GULLY contest-view service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core Business Metrics - the simulated live session
	eventsSampled    *prometheus.CounterVec
	ticksSkipped     prometheus.Counter
	boardRefreshes   prometheus.Counter
	sessionResets    prometheus.Counter
	tickErrors       *prometheus.CounterVec
	tickDuration     *prometheus.HistogramVec

	// Stream Metrics - bounded feed sizes
	feedSize     *prometheus.GaugeVec
	boardEntries prometheus.Gauge

	// Notification Metrics
	notificationsShown     prometheus.Counter
	notificationsDismissed prometheus.Counter
	notificationsUnread    prometheus.Gauge
	popupActive            prometheus.Gauge

	// Mini-game Metrics
	quizAnswers       *prometheus.CounterVec
	predictionAnswers *prometheus.CounterVec
	minigameEarnings  prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Aggregate Quality Metrics
	aggregateErrors *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gully",
		subsystem:        "contest",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.eventsSampled = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "events_sampled_total",
			Help:      "Total number of synthetic events drawn, by kind",
		},
		[]string{"kind"},
	)

	m.ticksSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ticks_skipped_total",
		Help:      "Total number of notification ticks skipped by the density filter",
	})

	m.boardRefreshes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "board_refreshes_total",
		Help:      "Total number of full leaderboard re-samples",
	})

	m.sessionResets = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "session_resets_total",
		Help:      "Total number of contest session resets",
	})

	m.tickErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "tick_errors_total",
			Help:      "Total number of recovered timer-step failures, by step",
		},
		[]string{"step"},
	)

	m.tickDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "tick_duration_milliseconds",
			Help:      "Timer step duration in milliseconds, by step",
			Buckets:   m.histogramBuckets,
		},
		[]string{"step"},
	)

	m.feedSize = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "feed_size",
			Help:      "Current number of retained entries per bounded stream",
		},
		[]string{"stream"},
	)

	m.boardEntries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "board_entries",
		Help:      "Number of entries in the current leaderboard snapshot",
	})

	m.notificationsShown = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "notifications_shown_total",
		Help:      "Total number of notifications promoted to the active popup",
	})

	m.notificationsDismissed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "notifications_dismissed_total",
		Help:      "Total number of notifications hard-deleted by the user",
	})

	m.notificationsUnread = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "notifications_unread",
		Help:      "Current number of unread notifications",
	})

	m.popupActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "popup_active",
		Help:      "Whether a notification popup is currently displayed (0 or 1)",
	})

	m.quizAnswers = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "quiz_answers_total",
			Help:      "Total number of quiz answers, by outcome",
		},
		[]string{"outcome"},
	)

	m.predictionAnswers = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "prediction_answers_total",
			Help:      "Total number of prediction answers, by outcome",
		},
		[]string{"outcome"},
	)

	m.minigameEarnings = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "minigame_earnings",
		Help:      "Accumulated mini-game reward total for the session",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.aggregateErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "aggregate_errors_total",
			Help:      "Total number of isolated aggregate-computation failures, by kind",
		},
		[]string{"kind"},
	)
}

// RecordEventSampled increments the sampled-events counter for a kind.
func RecordEventSampled(kind string) {
	globalManager.eventsSampled.WithLabelValues(kind).Inc()
}

// RecordTickSkipped increments the skipped-ticks counter.
func RecordTickSkipped() {
	globalManager.ticksSkipped.Inc()
}

// RecordBoardRefresh increments the leaderboard refresh counter.
func RecordBoardRefresh() {
	globalManager.boardRefreshes.Inc()
}

// RecordSessionReset increments the session resets counter.
func RecordSessionReset() {
	globalManager.sessionResets.Inc()
}

// RecordTickError increments the recovered-step-failure counter for a step.
func RecordTickError(step string) {
	globalManager.tickErrors.WithLabelValues(step).Inc()
}

// RecordTickDuration records a timer step duration in milliseconds.
func RecordTickDuration(step string, ms float64) {
	globalManager.tickDuration.WithLabelValues(step).Observe(ms)
}

// UpdateFeedSize sets the retained length of a bounded stream.
func UpdateFeedSize(stream string, size int) {
	globalManager.feedSize.WithLabelValues(stream).Set(float64(size))
}

// UpdateBoardEntries sets the current leaderboard snapshot size.
func UpdateBoardEntries(count int) {
	globalManager.boardEntries.Set(float64(count))
}

// RecordNotificationShown increments the shown-popup counter.
func RecordNotificationShown() {
	globalManager.notificationsShown.Inc()
}

// RecordNotificationDismissed increments the dismissed counter.
func RecordNotificationDismissed() {
	globalManager.notificationsDismissed.Inc()
}

// UpdateUnreadNotifications sets the current unread count.
func UpdateUnreadNotifications(count int) {
	globalManager.notificationsUnread.Set(float64(count))
}

// UpdatePopupActive sets whether a popup is currently displayed.
func UpdatePopupActive(active bool) {
	if active {
		globalManager.popupActive.Set(1)
		return
	}
	globalManager.popupActive.Set(0)
}

// RecordQuizAnswer increments the quiz answers counter for an outcome.
func RecordQuizAnswer(outcome string) {
	globalManager.quizAnswers.WithLabelValues(outcome).Inc()
}

// RecordPredictionAnswer increments the prediction answers counter for an outcome.
func RecordPredictionAnswer(outcome string) {
	globalManager.predictionAnswers.WithLabelValues(outcome).Inc()
}

// UpdateMinigameEarnings sets the accumulated reward gauge.
func UpdateMinigameEarnings(total float64) {
	globalManager.minigameEarnings.Set(total)
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordAggregateError records an isolated aggregate-computation failure.
func RecordAggregateError(kind string) {
	globalManager.aggregateErrors.WithLabelValues(kind).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
