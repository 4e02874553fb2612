package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestLeadMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLeadMetrics(reg)
	m.ObserveIntake("site", "created")
	m.ObserveIntake("site", "invalid")
	m.ObserveConsoleMutation("delete")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) != 2 {
		t.Fatalf("expected 2 metric families, got %d", len(families))
	}
}

func TestLeadMetricsNilSafe(t *testing.T) {
	var m *LeadMetrics
	m.ObserveIntake("site", "created")
	m.ObserveConsoleMutation("update")
}
