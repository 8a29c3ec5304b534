package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pledgefit_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pledgefit_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	WorkoutLogsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pledgefit_workout_logs_total",
			Help: "Total number of workout logs accepted",
		},
	)

	CooldownRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pledgefit_cooldown_rejections_total",
			Help: "Total number of log attempts rejected by the cooldown",
		},
	)

	ActivationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pledgefit_activations_total",
			Help: "Total number of subscriptions activated",
		},
		[]string{"plan"},
	)

	EligibilityLossesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pledgefit_eligibility_losses_total",
			Help: "Total number of subscriptions that lost refund eligibility",
		},
	)

	SettlementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pledgefit_settlements_total",
			Help: "Total number of settled subscriptions",
		},
		[]string{"outcome"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pledgefit_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pledgefit_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordWorkoutLog() {
	WorkoutLogsTotal.Inc()
}

func RecordCooldownRejection() {
	CooldownRejectionsTotal.Inc()
}

func RecordActivation(plan string) {
	ActivationsTotal.WithLabelValues(plan).Inc()
}

func RecordEligibilityLoss() {
	EligibilityLossesTotal.Inc()
}

func RecordSettlement(outcome string) {
	SettlementsTotal.WithLabelValues(outcome).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
