package model

import (
	"fmt"

	"github.com/katalvlaran/rwa/topology"
)

// Build formulates the RWA integer program for in.
//
// Contract:
//   - in is validated first; shape/domain errors are returned wrapped and
//     match the topology sentinels (ErrNoNodes, ErrShapeMismatch, ...).
//   - The instance is copied; later mutation of in does not affect the model.
//   - Families are emitted in the fixed order documented on the package;
//     within a family, indices vary in row-major order.
//   - Equal inputs produce identical models, identifiers included.
//
// Complexity: O(N⁴·W) time and memory, dominated by the R arena and the
// fiber_capacity family (N² terms per row over N²·W rows).
func Build(in *topology.Instance, opts ...Option) (*Model, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	cfg := newBuildConfig(opts...)

	m := &Model{
		layout: newLayout(in.Nodes, in.Wavelengths, cfg.selfDemands),
		inst:   in.Clone(),
		index:  make(map[ConstraintID]int),
	}

	m.objective = make(LinExpr, 0, len(m.demands))
	for d := range m.demands {
		m.objective = append(m.objective, Term{Var: m.lCol(d), Coef: 1})
	}

	steps := []func() error{
		m.addTransceivers,
		m.addWavelengthSplit,
		m.addContinuity,
		m.addEndpoints,
		m.addEndpointZeros,
		m.addFiberCapacity,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	for _, ext := range cfg.extensions {
		if err := m.applyExtension(ext); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// add normalizes expr and appends the constraint under a fresh identifier.
func (m *Model) add(id ConstraintID, expr LinExpr, sense Sense, rhs float64) error {
	if _, dup := m.index[id]; dup {
		return fmt.Errorf("model: %s: %w", id, ErrDuplicateConstraint)
	}
	m.index[id] = len(m.constraints)
	m.constraints = append(m.constraints, Constraint{
		ID:    id,
		Expr:  expr.normalize(),
		Sense: sense,
		RHS:   rhs,
	})

	return nil
}

// addTransceivers emits transmitters(i) then receivers(j).
func (m *Model) addTransceivers() error {
	for i := 0; i < m.n; i++ {
		var expr LinExpr
		for j := 0; j < m.n; j++ {
			if d := m.demand(i, j); d >= 0 {
				expr = append(expr, Term{Var: m.lCol(d), Coef: 1})
			}
		}
		if err := m.add(newID(Transmitters, i), expr, LessEqual, float64(m.inst.TR[i])); err != nil {
			return err
		}
	}
	for j := 0; j < m.n; j++ {
		var expr LinExpr
		for i := 0; i < m.n; i++ {
			if d := m.demand(i, j); d >= 0 {
				expr = append(expr, Term{Var: m.lCol(d), Coef: 1})
			}
		}
		if err := m.add(newID(Receivers, j), expr, LessEqual, float64(m.inst.RR[j])); err != nil {
			return err
		}
	}

	return nil
}

// addWavelengthSplit emits Σ_w X[i][j][w] - L[i][j] = 0 per demand.
func (m *Model) addWavelengthSplit() error {
	for d, p := range m.demands {
		expr := make(LinExpr, 0, m.w+1)
		for w := 0; w < m.w; w++ {
			expr = append(expr, Term{Var: m.xCol(d, w), Coef: 1})
		}
		expr = append(expr, Term{Var: m.lCol(d), Coef: -1})
		if err := m.add(newID(WavelengthSplit, p.From, p.To), expr, Equal, 0); err != nil {
			return err
		}
	}

	return nil
}

// addContinuity emits flow conservation at every transit node k ∉ {i,j}.
func (m *Model) addContinuity() error {
	for d, p := range m.demands {
		for w := 0; w < m.w; w++ {
			for k := 0; k < m.n; k++ {
				if k == p.From || k == p.To {
					continue
				}
				expr := append(m.inflow(d, w, k), m.outflow(d, w, k, -1)...)
				if err := m.add(newID(Continuity, p.From, p.To, w, k), expr, Equal, 0); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// addEndpoints ties the routed flow to the wavelength assignment: inflow
// at the destination and outflow at the source both equal X[i][j][w].
func (m *Model) addEndpoints() error {
	for d, p := range m.demands {
		for w := 0; w < m.w; w++ {
			x := Term{Var: m.xCol(d, w), Coef: -1}
			in := append(m.inflow(d, w, p.To), x)
			if err := m.add(newID(SinkIn, p.From, p.To, w), in, Equal, 0); err != nil {
				return err
			}
			out := append(m.outflow(d, w, p.From, 1), x)
			if err := m.add(newID(SourceOut, p.From, p.To, w), out, Equal, 0); err != nil {
				return err
			}
		}
	}

	return nil
}

// addEndpointZeros forbids re-entering the source and leaving the destination.
func (m *Model) addEndpointZeros() error {
	for d, p := range m.demands {
		for w := 0; w < m.w; w++ {
			if err := m.add(newID(SourceInZero, p.From, p.To, w), m.inflow(d, w, p.From), Equal, 0); err != nil {
				return err
			}
			if err := m.add(newID(SinkOutZero, p.From, p.To, w), m.outflow(d, w, p.To, 1), Equal, 0); err != nil {
				return err
			}
		}
	}

	return nil
}

// addFiberCapacity emits the wavelength-clash constraint per (w, fiber).
func (m *Model) addFiberCapacity() error {
	for w := 0; w < m.w; w++ {
		for f, q := range m.fibers {
			expr := make(LinExpr, 0, len(m.demands))
			for d := range m.demands {
				expr = append(expr, Term{Var: m.rCol(d, w, f), Coef: 1})
			}
			rhs := float64(m.inst.Pw[q.From][q.To][w])
			if err := m.add(newID(FiberCapacity, w, q.From, q.To), expr, LessEqual, rhs); err != nil {
				return err
			}
		}
	}

	return nil
}

// inflow returns +R[d][w][a][k] over every modeled fiber a→k.
func (m *Model) inflow(d, w, k int) LinExpr {
	expr := make(LinExpr, 0, m.n)
	for a := 0; a < m.n; a++ {
		if f := m.fiber(a, k); f >= 0 {
			expr = append(expr, Term{Var: m.rCol(d, w, f), Coef: 1})
		}
	}

	return expr
}

// outflow returns coef·R[d][w][k][b] over every modeled fiber k→b.
func (m *Model) outflow(d, w, k int, coef float64) LinExpr {
	expr := make(LinExpr, 0, m.n)
	for b := 0; b < m.n; b++ {
		if f := m.fiber(k, b); f >= 0 {
			expr = append(expr, Term{Var: m.rCol(d, w, f), Coef: coef})
		}
	}

	return expr
}
