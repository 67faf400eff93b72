package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "octofit"

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	recomputeCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "leaderboard",
		Name:      "recompute_runs_total",
		Help:      "Number of leaderboard recomputations, labeled by outcome.",
	}, []string{"status"})

	recomputeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "leaderboard",
		Name:      "recompute_duration_seconds",
		Help:      "Time spent reading activities, ranking users and replacing the leaderboard.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
	})

	leaderboardSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "leaderboard",
		Name:      "entries",
		Help:      "Number of entries written by the most recent successful recomputation.",
	})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, labeled by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(recomputeCounter, recomputeDuration, leaderboardSize, httpRequests, httpDuration)
}

// RecordRecompute учитывает один запуск пересчета. size обновляется только при успехе
func RecordRecompute(status string, elapsed time.Duration, size int) {
	recomputeCounter.WithLabelValues(status).Inc()
	recomputeDuration.Observe(elapsed.Seconds())
	if status == StatusSuccess {
		leaderboardSize.Set(float64(size))
	}
}

func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
