package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector is what handlers and workers report to.
type MetricsCollector interface {
	RecordHTTPRequest(statusCode int, duration time.Duration)
	RecordDoseTaken()
	RecordReminderCancelled()
	RecordCodeSent(purpose string)
	RecordCodesCleared(count int64)
}

type Collector struct {
	httpRequests      *prometheus.CounterVec
	requestDuration   prometheus.Histogram
	dosesTaken        prometheus.Counter
	remindersCanceled prometheus.Counter
	codesSent         *prometheus.CounterVec
	codesCleared      prometheus.Counter
}

// NewCollector creates collector and registers its metrics in reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "starhealth_http_requests_total",
			Help: "Number of served HTTP requests by status code",
		}, []string{"status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "starhealth_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		dosesTaken: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "starhealth_doses_taken_total",
			Help: "Number of reminders marked as taken",
		}),
		remindersCanceled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "starhealth_reminders_cancelled_total",
			Help: "Number of reminders cancelled by users",
		}),
		codesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "starhealth_codes_sent_total",
			Help: "Number of verification codes sent by purpose",
		}, []string{"purpose"}),
		codesCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "starhealth_expired_codes_cleared_total",
			Help: "Number of expired verification codes removed by the sweeper",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.requestDuration,
		c.dosesTaken,
		c.remindersCanceled,
		c.codesSent,
		c.codesCleared,
	)
	return c
}

func (c *Collector) RecordHTTPRequest(statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	c.requestDuration.Observe(duration.Seconds())
}

func (c *Collector) RecordDoseTaken() {
	c.dosesTaken.Inc()
}

func (c *Collector) RecordReminderCancelled() {
	c.remindersCanceled.Inc()
}

func (c *Collector) RecordCodeSent(purpose string) {
	c.codesSent.WithLabelValues(purpose).Inc()
}

func (c *Collector) RecordCodesCleared(count int64) {
	c.codesCleared.Add(float64(count))
}

// Noop discards everything. Used when metrics are not wired.
type Noop struct{}

func (Noop) RecordHTTPRequest(int, time.Duration) {}
func (Noop) RecordDoseTaken()                     {}
func (Noop) RecordReminderCancelled()             {}
func (Noop) RecordCodeSent(string)                {}
func (Noop) RecordCodesCleared(int64)             {}

// Handler serves the registry in prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
