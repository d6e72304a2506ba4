package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashgen_sessions_started_total",
		Help: "Dashboard generation runs started.",
	})
	sessionsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashgen_sessions_finished_total",
		Help: "Dashboard generation runs finished, by outcome.",
	}, []string{"outcome"})
	componentsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashgen_components_built_total",
		Help: "Components successfully built and emitted.",
	})
	specsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashgen_specs_dropped_total",
		Help: "Component specs dropped during normalization or build.",
	})
	heuristicFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashgen_heuristic_fallbacks_total",
		Help: "Stages that fell back to heuristic defaults, by stage.",
	}, []string{"stage"})
	stageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashgen_stage_duration_seconds",
		Help:    "Wall time per pipeline stage.",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})
)
