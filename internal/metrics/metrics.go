// Package metrics counts record operations and store saves for one session.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Entity labels.
const (
	EntityPlan      = "plan"
	EntityEquipment = "equipment"
	EntityMember    = "member"
)

// Recorder holds the session's collectors in its own registry, not the
// global default one.
type Recorder struct {
	registry *prometheus.Registry

	created  *prometheus.CounterVec
	modified *prometheus.CounterVec
	deleted  *prometheus.CounterVec
	saves    *prometheus.CounterVec
	loaded   *prometheus.GaugeVec
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gymdesk_records_created_total",
			Help: "Records created, by entity kind.",
		}, []string{"entity"}),
		modified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gymdesk_records_modified_total",
			Help: "Records modified, by entity kind.",
		}, []string{"entity"}),
		deleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gymdesk_records_deleted_total",
			Help: "Records deleted, by entity kind.",
		}, []string{"entity"}),
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gymdesk_store_saves_total",
			Help: "Store saves, by entity kind and result.",
		}, []string{"entity", "result"}),
		loaded: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gymdesk_records_loaded",
			Help: "Records loaded at startup, by entity kind.",
		}, []string{"entity"}),
	}
	r.registry.MustRegister(r.created, r.modified, r.deleted, r.saves, r.loaded)
	return r
}

// Created counts one created record.
func (r *Recorder) Created(entity string) { r.created.WithLabelValues(entity).Inc() }

// Modified counts one modified record.
func (r *Recorder) Modified(entity string) { r.modified.WithLabelValues(entity).Inc() }

// Deleted counts one deleted record.
func (r *Recorder) Deleted(entity string) { r.deleted.WithLabelValues(entity).Inc() }

// Loaded records how many records a load produced.
func (r *Recorder) Loaded(entity string, n int) { r.loaded.WithLabelValues(entity).Set(float64(n)) }

// Saved counts a save attempt; err decides the result label.
func (r *Recorder) Saved(entity string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.saves.WithLabelValues(entity, result).Inc()
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteFile dumps all metrics in the Prometheus text format, suitable for
// the node exporter textfile collector.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
