// Package observability holds the prometheus collectors for the workout tracker.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_tracker",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, by method, route template and status.",
	}, []string{"method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "workout_tracker",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by method and route template.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	workoutsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "workout_tracker",
		Name:      "workouts_created_total",
		Help:      "Workouts successfully inserted.",
	})
	workoutsDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "workout_tracker",
		Name:      "workouts_deleted_total",
		Help:      "Workouts successfully deleted.",
	})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, workoutsCreated, workoutsDeleted)
}

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordWorkoutCreated increments the created counter.
func RecordWorkoutCreated() {
	workoutsCreated.Inc()
}

// RecordWorkoutDeleted increments the deleted counter.
func RecordWorkoutDeleted() {
	workoutsDeleted.Inc()
}
