// Package metrics exposes Prometheus collectors on a private registry.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "youthlife"

type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	TasksCompletedTotal *prometheus.CounterVec
	ExpGainedTotal      prometheus.Counter
	LevelUpsTotal       prometheus.Counter

	CoachRequestsTotal   *prometheus.CounterVec
	CoachRequestDuration *prometheus.HistogramVec

	SchedulerRunsTotal *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		}, []string{"method", "route", "status_code"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		TasksCompletedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "progression",
			Name:      "tasks_completed_total",
			Help:      "Rewarded task completions.",
		}, []string{"theme"}),
		ExpGainedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "progression",
			Name:      "exp_gained_total",
			Help:      "Experience granted by task completions.",
		}),
		LevelUpsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "progression",
			Name:      "level_ups_total",
			Help:      "Completions that crossed a level threshold.",
		}),
		CoachRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "coach",
			Name:      "requests_total",
			Help:      "Coach requests by kind and outcome.",
		}, []string{"kind", "status"}),
		CoachRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "coach",
			Name:      "request_duration_seconds",
			Help:      "Coach request duration in seconds.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		}, []string{"kind"}),
		SchedulerRunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "runs_total",
			Help:      "Scheduled job runs by job and outcome.",
		}, []string{"job", "status"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.TasksCompletedTotal,
		m.ExpGainedTotal,
		m.LevelUpsTotal,
		m.CoachRequestsTotal,
		m.CoachRequestDuration,
		m.SchedulerRunsTotal,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, route string, status int, took time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(took.Seconds())
}

func (m *Metrics) ObserveReward(theme string, expGain int, levelUp bool) {
	if m == nil {
		return
	}
	m.TasksCompletedTotal.WithLabelValues(theme).Inc()
	m.ExpGainedTotal.Add(float64(expGain))
	if levelUp {
		m.LevelUpsTotal.Inc()
	}
}

func (m *Metrics) ObserveCoach(kind string, err error, took time.Duration) {
	if m == nil {
		return
	}
	m.CoachRequestsTotal.WithLabelValues(kind, outcome(err)).Inc()
	m.CoachRequestDuration.WithLabelValues(kind).Observe(took.Seconds())
}

func (m *Metrics) ObserveSchedulerRun(job string, err error) {
	if m == nil {
		return
	}
	m.SchedulerRunsTotal.WithLabelValues(job, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
