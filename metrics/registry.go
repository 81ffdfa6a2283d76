package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all RWA metrics.
type Registry struct {
	// Model Metrics
	ModelsBuiltTotal  prometheus.Counter
	ModelVariables    *prometheus.GaugeVec
	ModelConstraints  *prometheus.GaugeVec
	ModelNonzeros     prometheus.Gauge
	ModelBuildSeconds prometheus.Histogram

	// Solver Metrics
	SolvesTotal      *prometheus.CounterVec
	SolveDuration    prometheus.Histogram
	SolveNodes       prometheus.Histogram
	SolveObjective   prometheus.Gauge
	SolvesTruncated  prometheus.Counter
	LightpathsRouted prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a Registry backed by a fresh prometheus.Registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initModelMetrics()
	r.initSolverMetrics()

	return r
}

// Gatherer returns the underlying gatherer, e.g. for promhttp.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

func (r *Registry) initModelMetrics() {
	r.ModelsBuiltTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "rwa_models_built_total",
			Help: "Total number of models built",
		},
	)

	r.ModelVariables = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rwa_model_variables",
			Help: "Columns of the last built model per variable family",
		},
		[]string{"family"},
	)

	r.ModelConstraints = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rwa_model_constraints",
			Help: "Rows of the last built model per constraint family",
		},
		[]string{"family"},
	)

	r.ModelNonzeros = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "rwa_model_nonzeros",
			Help: "Constraint nonzeros of the last built model",
		},
	)

	r.ModelBuildSeconds = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rwa_model_build_duration_seconds",
			Help:    "Model build duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10},
		},
	)
}

func (r *Registry) initSolverMetrics() {
	r.SolvesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "rwa_solves_total",
			Help: "Total number of solves by terminal status",
		},
		[]string{"status"},
	)

	r.SolveDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rwa_solve_duration_seconds",
			Help:    "Solve duration in seconds",
			Buckets: []float64{0.01, 0.1, 1, 10, 60, 600},
		},
	)

	r.SolveNodes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rwa_solve_nodes",
			Help:    "Branch-and-bound nodes per solve",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		},
	)

	r.SolveObjective = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "rwa_solve_objective",
			Help: "Objective of the last optimal solve",
		},
	)

	r.SolvesTruncated = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "rwa_solves_truncated_total",
			Help: "Optimal results returned because a limit fired",
		},
	)

	r.LightpathsRouted = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "rwa_lightpaths_routed",
			Help: "Routed lightpaths in the last reported solution",
		},
	)
}
