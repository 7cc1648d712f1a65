package simulation

import "github.com/prometheus/client_golang/prometheus"

// metrics holds the Prometheus instruments a Simulation updates as it
// runs. A nil *metrics (the zero value of Simulation.metrics when no
// registerer was supplied) makes every record call a no-op.
type metrics struct {
	moveAttempts *prometheus.CounterVec
	volume       prometheus.Gauge
	fourVertex   prometheus.Gauge
	flippable    prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		moveAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cdt2d_move_attempts_total",
			Help: "Monte Carlo move attempts by kind and outcome.",
		}, []string{"kind", "outcome"}),
		volume: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cdt2d_triangle_volume",
			Help: "Current number of live triangles.",
		}),
		fourVertex: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cdt2d_order_four_vertices",
			Help: "Current number of order-4 (delete-eligible) vertices.",
		}),
		flippable: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cdt2d_flippable_triangles",
			Help: "Current number of flip-eligible triangles.",
		}),
	}
	reg.MustRegister(m.moveAttempts, m.volume, m.fourVertex, m.flippable)
	return m
}

func (m *metrics) recordMove(kind string, accepted bool) {
	if m == nil {
		return
	}
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	m.moveAttempts.WithLabelValues(kind, outcome).Inc()
}

func (m *metrics) recordGauges(volume, fourVertex, flippable int) {
	if m == nil {
		return
	}
	m.volume.Set(float64(volume))
	m.fourVertex.Set(float64(fourVertex))
	m.flippable.Set(float64(flippable))
}
