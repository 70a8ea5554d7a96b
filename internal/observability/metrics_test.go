package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestObserveRunRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewRunCollector(reg)
	if err != nil {
		t.Fatalf("NewRunCollector: %v", err)
	}

	collector.ObserveRun("standalone", 2*time.Millisecond, 12.33, 2644.7, nil)

	if got := testutil.ToFloat64(collector.Runs.WithLabelValues("standalone", "ok")); got != 1 {
		t.Fatalf("costsim_scenario_runs_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.TotalTimeCost.WithLabelValues("standalone")); got != 12.33 {
		t.Fatalf("costsim_scenario_total_time_cost = %v, want 12.33", got)
	}
	if got := testutil.ToFloat64(collector.TotalEnergyCost.WithLabelValues("standalone")); got != 2644.7 {
		t.Fatalf("costsim_scenario_total_energy_cost = %v, want 2644.7", got)
	}

	if count := histogramSampleCount(t, reg, "costsim_scenario_run_duration_seconds", map[string]string{
		"scenario": "standalone",
	}); count != 1 {
		t.Fatalf("costsim_scenario_run_duration_seconds sample_count = %d, want 1", count)
	}
}

func TestObserveRunFailureSkipsTotals(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewRunCollector(reg)
	if err != nil {
		t.Fatalf("NewRunCollector: %v", err)
	}

	collector.ObserveRun("broken", time.Millisecond, 0, 0, errors.New("boom"))

	if got := testutil.ToFloat64(collector.Runs.WithLabelValues("broken", "error")); got != 1 {
		t.Fatalf("error outcome count = %v, want 1", got)
	}
	// No partial totals from failed runs: the gauges must stay untouched.
	if count := testutil.CollectAndCount(collector.TotalTimeCost); count != 0 {
		t.Fatalf("total time gauge has %d children after failed run, want 0", count)
	}
}

func TestMetricsHandlerExposesSweepCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewRunCollector(reg)
	if err != nil {
		t.Fatalf("NewRunCollector: %v", err)
	}
	collector.ObserveSweepPoints("obc_throughput", 25)
	collector.ObserveRun("standalone", time.Millisecond, 12.33, 2644.7, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, metric := range []string{
		"costsim_scenario_runs_total",
		"costsim_scenario_run_duration_seconds",
		"costsim_sweep_points_total",
		"costsim_scenario_total_time_cost",
		"costsim_scenario_total_energy_cost",
	} {
		if !strings.Contains(body, metric) {
			t.Fatalf("expected %q in /metrics output", metric)
		}
	}
	if !strings.Contains(body, "25") {
		t.Fatalf("/metrics output missing sweep point count: %s", body)
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var collector *RunCollector
	collector.ObserveRun("standalone", time.Millisecond, 1, 1, nil)
	collector.ObserveSweepPoints("sweep", 1)
}

func histogramSampleCount(t *testing.T, gatherer prometheus.Gatherer, name string, labels map[string]string) uint64 {
	t.Helper()

	metrics, err := gatherer.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range metrics {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.Metric {
			if matchLabels(m.GetLabel(), labels) && m.GetHistogram() != nil {
				return m.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}

func matchLabels(got []*dto.LabelPair, want map[string]string) bool {
	if len(got) < len(want) {
		return false
	}
	matched := 0
	for _, lp := range got {
		if val, ok := want[lp.GetName()]; ok && val == lp.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}
