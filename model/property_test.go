package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/rwa/model"
	"github.com/katalvlaran/rwa/topology"
)

// TestBuildProperties checks the structural invariants of Build over small
// random instances.
func TestBuildProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 25

	properties := gopter.NewProperties(parameters)

	properties.Property("column and row counts follow N and W", prop.ForAll(
		func(n, w int, self bool) bool {
			in, err := topology.Uniform(n, w)
			if err != nil {
				return false
			}
			m, err := model.Build(in, model.WithSelfDemands(self))
			if err != nil {
				return false
			}

			d, transit, f := n*n, n*(n-1)*(n-1), n*n
			if !self {
				d, transit, f = n*(n-1), n*(n-1)*(n-2), n*(n-1)
			}
			s := m.Stats()

			return m.NumVars() == d+d*w+d*w*f &&
				s.Constraints[model.Continuity] == transit*w &&
				s.Constraints[model.FiberCapacity] == w*f &&
				s.Constraints[model.SinkIn] == d*w &&
				s.Constraints[model.Transmitters] == n
		},
		gen.IntRange(1, 4),
		gen.IntRange(1, 3),
		gen.Bool(),
	))

	properties.Property("building twice yields identical models", prop.ForAll(
		func(n, w, capacity int) bool {
			in, err := topology.Ring(n, w, topology.WithFiberCapacity(capacity))
			if err != nil {
				return false
			}
			a, errA := model.Build(in)
			b, errB := model.Build(in)
			if errA != nil || errB != nil {
				return false
			}

			return cmp.Equal(a.Constraints(), b.Constraints()) &&
				cmp.Equal(a.Variables(), b.Variables()) &&
				cmp.Equal(a.Objective(), b.Objective())
		},
		gen.IntRange(3, 4),
		gen.IntRange(1, 2),
		gen.IntRange(0, 2),
	))

	properties.Property("expressions are normalized", prop.ForAll(
		func(n, w int) bool {
			in, err := topology.FullMesh(n, w)
			if err != nil {
				return false
			}
			m, err := model.Build(in)
			if err != nil {
				return false
			}
			for _, c := range m.Constraints() {
				seen := make(map[model.VarID]bool, len(c.Expr))
				for _, term := range c.Expr {
					if term.Coef == 0 || seen[term.Var] {
						return false
					}
					seen[term.Var] = true
				}
			}

			return true
		},
		gen.IntRange(1, 4),
		gen.IntRange(1, 2),
	))

	properties.TestingRun(t)
}
