// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the per-source gauges exported after a run. Each run owns a
// private registry so repeated runs in one process do not collide.
type Metrics struct {
	registry *prometheus.Registry

	maxOccupancy    *prometheus.GaugeVec
	busiestCount    *prometheus.GaugeVec
	busiestDuration *prometheus.GaugeVec
	records         *prometheus.GaugeVec
	skipped         *prometheus.GaugeVec
	traceSamples    *prometheus.GaugeVec
}

// NewMetrics creates the gauges on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		maxOccupancy: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "parkload_max_occupancy",
			Help: "Peak number of simultaneously parked vehicles",
		}, []string{"source"}),
		busiestCount: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "parkload_busiest_intervals",
			Help: "Number of disjoint intervals at peak occupancy",
		}, []string{"source"}),
		busiestDuration: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "parkload_busiest_duration_units",
			Help: "Total length of the peak intervals in input time units",
		}, []string{"source"}),
		records: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "parkload_records",
			Help: "Parking records read from the source",
		}, []string{"source"}),
		skipped: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "parkload_records_skipped",
			Help: "Zero-duration parking records ignored by the sweep",
		}, []string{"source"}),
		traceSamples: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "parkload_trace_samples",
			Help: "Samples in the compacted occupancy trace",
		}, []string{"source"}),
	}
}

// Observe records the outcome of one report.
func (m *Metrics) Observe(r Report, records int) {
	var busy int64
	for _, b := range r.Result.Busiest {
		busy += int64(b.End - b.Start)
	}
	m.maxOccupancy.WithLabelValues(r.Source).Set(float64(r.Result.MaxLoad))
	m.busiestCount.WithLabelValues(r.Source).Set(float64(len(r.Result.Busiest)))
	m.busiestDuration.WithLabelValues(r.Source).Set(float64(busy))
	m.records.WithLabelValues(r.Source).Set(float64(records))
	m.skipped.WithLabelValues(r.Source).Set(float64(r.Result.Skipped))
	m.traceSamples.WithLabelValues(r.Source).Set(float64(len(r.Result.Trace)))
}

// Gatherer exposes the registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the metrics in the node exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
