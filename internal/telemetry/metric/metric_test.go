package metric

import (
	"net/http/httptest"
	"strings"
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func findMetric(t *testing.T, m *Metrics, name string) *dto.MetricFamily {
	t.Helper()
	families, err := m.Gather().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func TestCounters(t *testing.T) {
	m := New()

	m.AddInserts("coarse", 100)
	m.AddLookups("coarse", 100, 3)
	m.IncRuns("coarse")

	mf := findMetric(t, m, "lockbench_inserts_total")
	if mf == nil {
		t.Fatal("lockbench_inserts_total not registered")
	}
	if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 100 {
		t.Errorf("inserts_total = %v, want 100", got)
	}

	mf = findMetric(t, m, "lockbench_keys_lost_total")
	if mf == nil {
		t.Fatal("lockbench_keys_lost_total not registered")
	}
	if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 3 {
		t.Errorf("keys_lost_total = %v, want 3", got)
	}
}

func TestObservePhase(t *testing.T) {
	m := New()
	m.ObservePhase("spin", PhasePut, 0.25)
	m.ObservePhase("spin", PhaseGet, 0.1)

	mf := findMetric(t, m, "lockbench_phase_seconds")
	if mf == nil {
		t.Fatal("lockbench_phase_seconds not registered")
	}
	if len(mf.GetMetric()) != 2 {
		t.Errorf("phase_seconds series = %d, want 2", len(mf.GetMetric()))
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	// All methods must be safe no-ops on nil.
	m.AddInserts("coarse", 1)
	m.AddLookups("coarse", 1, 0)
	m.ObservePhase("coarse", PhasePut, 1)
	m.IncRuns("coarse")
	if m.Handler() == nil {
		t.Error("Handler() on nil Metrics returned nil")
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.AddInserts("twolevel", 42)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "lockbench_inserts_total") {
		t.Error("metrics output missing lockbench_inserts_total")
	}
}
