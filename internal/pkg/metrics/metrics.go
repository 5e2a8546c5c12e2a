package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Initiations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stkpush_initiations_total",
			Help: "STK push initiations by outcome",
		},
		[]string{"outcome"},
	)
	Webhooks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stkpush_webhooks_total",
			Help: "Provider webhooks by result",
		},
		[]string{"result"},
	)
	UpstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stkpush_upstream_request_duration_seconds",
			Help:    "Latency of STK push calls to the provider",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"status"},
	)
	RateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stkpush_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)
)

func init() {
	prometheus.MustRegister(Initiations)
	prometheus.MustRegister(Webhooks)
	prometheus.MustRegister(UpstreamLatency)
	prometheus.MustRegister(RateLimited)
}

// RecordInitiation counts one initiation under outcome, e.g. "forwarded" or "RequestTimeout"
func RecordInitiation(outcome string) {
	Initiations.WithLabelValues(outcome).Inc()
}

// RecordWebhook counts one webhook under result, e.g. "created" or "InvalidSignature"
func RecordWebhook(result string) {
	Webhooks.WithLabelValues(result).Inc()
}

// RecordRateLimited counts a request rejected on endpoint
func RecordRateLimited(endpoint string) {
	RateLimited.WithLabelValues(endpoint).Inc()
}

// ObserveUpstream records a provider call; statusCode 0 means no response arrived
func ObserveUpstream(statusCode int, elapsed time.Duration) {
	label := "error"
	if statusCode > 0 {
		label = strconv.Itoa(statusCode)
	}
	UpstreamLatency.WithLabelValues(label).Observe(elapsed.Seconds())
}

// Handler exposes the default registry for Echo
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
