package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/rwa/model"
	"github.com/katalvlaran/rwa/solver"
)

// RecordModel records a successful build and the model's shape.
func (r *Registry) RecordModel(s model.Stats, duration time.Duration) {
	r.ModelsBuiltTotal.Inc()
	r.ModelBuildSeconds.Observe(duration.Seconds())
	for f, n := range s.Variables {
		r.ModelVariables.WithLabelValues(f.String()).Set(float64(n))
	}
	for _, f := range append(model.CoreFamilies(), model.Custom) {
		r.ModelConstraints.WithLabelValues(f.String()).Set(float64(s.Constraints[f]))
	}
	r.ModelNonzeros.Set(float64(s.Nonzeros))
}

// RecordSolve records a solve outcome.
func (r *Registry) RecordSolve(res *solver.Result) {
	r.SolvesTotal.WithLabelValues(res.Status.String()).Inc()
	r.SolveDuration.Observe(res.Elapsed.Seconds())
	r.SolveNodes.Observe(float64(res.Nodes))
	if res.Status == solver.Optimal {
		r.SolveObjective.Set(res.Objective)
		if res.Truncated {
			r.SolvesTruncated.Inc()
		}
	}
}

// RecordLightpaths sets the number of routed lightpaths.
func (r *Registry) RecordLightpaths(n int) {
	r.LightpathsRouted.Set(float64(n))
}

// WriteText writes every metric family in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
