package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters for the lead intake and console flows.
type LeadMetrics struct {
	intakeTotal   *prometheus.CounterVec
	mutationTotal *prometheus.CounterVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		intakeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "matra",
			Subsystem: "leads",
			Name:      "intake_total",
			Help:      "Total public lead submissions",
		}, []string{"origin", "outcome"}),
		mutationTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "matra",
			Subsystem: "leads",
			Name:      "console_mutation_total",
			Help:      "Total admin console lead mutations",
		}, []string{"operation"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.intakeTotal, m.mutationTotal)
	return m
}

func (m *LeadMetrics) ObserveIntake(origin, outcome string) {
	if m == nil {
		return
	}
	m.intakeTotal.WithLabelValues(origin, outcome).Inc()
}

func (m *LeadMetrics) ObserveConsoleMutation(operation string) {
	if m == nil {
		return
	}
	m.mutationTotal.WithLabelValues(operation).Inc()
}
