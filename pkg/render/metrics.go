package render

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts render activity. A nil *Metrics is valid and records
// nothing, so metrics stay optional.
type Metrics struct {
	renders      *prometheus.CounterVec
	nodesCreated prometheus.Counter
	nodesRemoved prometheus.Counter
	textUpdates  prometheus.Counter
	attrUpdates  prometheus.Counter
}

// NewMetrics registers render metrics with the given registerer. Pass
// prometheus.DefaultRegisterer for the process-wide registry.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "renders_total",
			Help:      "Render calls, partitioned by first render vs update.",
		}, []string{"kind"}),
		nodesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "nodes_created_total",
			Help:      "Live nodes materialized.",
		}),
		nodesRemoved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "nodes_removed_total",
			Help:      "Live nodes removed or replaced during reconciliation.",
		}),
		textUpdates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "text_updates_total",
			Help:      "In-place text content updates.",
		}),
		attrUpdates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "attr_updates_total",
			Help:      "Attribute applications and removals during diffing.",
		}),
	}
}

func (m *Metrics) rendered(first bool) {
	if m == nil {
		return
	}
	if first {
		m.renders.WithLabelValues("mount").Inc()
	} else {
		m.renders.WithLabelValues("update").Inc()
	}
}

func (m *Metrics) nodeCreated() {
	if m != nil {
		m.nodesCreated.Inc()
	}
}

func (m *Metrics) nodeRemoved() {
	if m != nil {
		m.nodesRemoved.Inc()
	}
}

func (m *Metrics) textUpdated() {
	if m != nil {
		m.textUpdates.Inc()
	}
}

func (m *Metrics) attrUpdated() {
	if m != nil {
		m.attrUpdates.Inc()
	}
}
