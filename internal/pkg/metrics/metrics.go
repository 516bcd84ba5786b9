package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScheduleWrites counts store mutations by operation and by whether the
	// database confirmed the write or the store degraded to the local shadow.
	ScheduleWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portaria_schedule_writes_total",
		Help: "Schedule store writes by operation and outcome.",
	}, []string{"operation", "outcome"})

	PendingSchedules = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "portaria_pending_schedules",
		Help: "Number of schedules currently awaiting review.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portaria_http_requests_total",
		Help: "HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})
)
