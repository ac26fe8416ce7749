package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/limbo/youthlife/internal/metrics"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gather(t *testing.T, m *metrics.Metrics, name string) []*dto.Metric {
	t.Helper()
	families, err := m.Registry.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f.GetMetric()
		}
	}
	return nil
}

func labelMap(pairs []*dto.LabelPair) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		out[p.GetName()] = p.GetValue()
	}
	return out
}

func TestObserveRequest(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest(http.MethodPatch, "/api/v1/tasks/{id}", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodPatch, "/api/v1/tasks/{id}", http.StatusOK, 30*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	counters := gather(t, m, "youthlife_http_requests_total")
	require.Len(t, counters, 2)
	byRoute := map[string]float64{}
	for _, c := range counters {
		byRoute[labelMap(c.GetLabel())["route"]] = c.GetCounter().GetValue()
	}
	assert.Equal(t, 2.0, byRoute["/api/v1/tasks/{id}"])
	assert.Equal(t, 1.0, byRoute["unmatched"])
}

func TestObserveReward(t *testing.T) {
	m := metrics.New()
	m.ObserveReward("FOCUS", 280, false)
	m.ObserveReward("FOCUS", 30, true)

	completed := gather(t, m, "youthlife_progression_tasks_completed_total")
	require.Len(t, completed, 1)
	assert.Equal(t, "FOCUS", labelMap(completed[0].GetLabel())["theme"])
	assert.Equal(t, 2.0, completed[0].GetCounter().GetValue())
	assert.Equal(t, 310.0, gather(t, m, "youthlife_progression_exp_gained_total")[0].GetCounter().GetValue())
	assert.Equal(t, 1.0, gather(t, m, "youthlife_progression_level_ups_total")[0].GetCounter().GetValue())
}

func TestObserveCoachAndScheduler(t *testing.T) {
	m := metrics.New()
	m.ObserveCoach("morning", nil, time.Second)
	m.ObserveCoach("morning", errors.New("timeout"), time.Second)
	m.ObserveSchedulerRun("day_init", nil)

	statuses := map[string]float64{}
	for _, c := range gather(t, m, "youthlife_coach_requests_total") {
		statuses[labelMap(c.GetLabel())["status"]] = c.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"ok": 1, "error": 1}, statuses)
	runs := gather(t, m, "youthlife_scheduler_runs_total")
	require.Len(t, runs, 1)
	assert.Equal(t, map[string]string{"job": "day_init", "status": "ok"}, labelMap(runs[0].GetLabel()))
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		m.ObserveReward("WRAP", 10, true)
		m.ObserveCoach("evening", nil, time.Second)
		m.ObserveSchedulerRun("day_init", nil)
	})
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.ObserveReward("EXECUTE", 60, false)
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `youthlife_progression_tasks_completed_total{theme="EXECUTE"} 1`)
}
