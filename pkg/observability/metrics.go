package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Lookup results recorded by ObserveLookup.
const (
	LookupHit  = "hit"
	LookupMiss = "miss"
)

// Metrics groups the Prometheus collectors of a typist pipeline.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	translated *prometheus.CounterVec
	anomalies  *prometheus.CounterVec
	lookups    *prometheus.CounterVec
	dropped    prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves the collectors unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		translated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typist_events_translated_total",
				Help: "Total number of events rewritten into injection commands",
			},
			[]string{"kind"},
		),
		anomalies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typist_translation_anomalies_total",
				Help: "Total number of inconsistent events clamped during translation",
			},
			[]string{"kind"},
		),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typist_match_lookups_total",
				Help: "Total number of match-info lookups by result",
			},
			[]string{"result"},
		),
		dropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "typist_dispatched_events_dropped_total",
				Help: "Total number of dispatched events dropped by the queue limit",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.translated, m.anomalies, m.lookups, m.dropped)
	}
	return m
}

// ObserveTranslation counts an event rewritten from the given kind.
func (m *Metrics) ObserveTranslation(kind string) {
	if m == nil {
		return
	}
	m.translated.WithLabelValues(kind).Inc()
}

// ObserveAnomaly counts an inconsistent event of the given kind.
func (m *Metrics) ObserveAnomaly(kind string) {
	if m == nil {
		return
	}
	m.anomalies.WithLabelValues(kind).Inc()
}

// ObserveLookup counts a match-info lookup.
func (m *Metrics) ObserveLookup(hit bool) {
	if m == nil {
		return
	}
	result := LookupMiss
	if hit {
		result = LookupHit
	}
	m.lookups.WithLabelValues(result).Inc()
}

// ObserveDropped counts dispatched events discarded by the pipeline.
func (m *Metrics) ObserveDropped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.dropped.Add(float64(n))
}
