package model

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/rwa/topology"
)

// Model is an immutable RWA integer program: objective, variable domains
// and an ordered constraint list. All accessors return copies.
type Model struct {
	layout

	inst        *topology.Instance
	objective   LinExpr
	constraints []Constraint
	index       map[ConstraintID]int
}

// Nodes returns N.
func (m *Model) Nodes() int { return m.n }

// Wavelengths returns W.
func (m *Model) Wavelengths() int { return m.w }

// SelfDemands reports whether i == j demands and m == n fibers are modeled.
func (m *Model) SelfDemands() bool { return m.selfDemands }

// Instance returns a copy of the instance the model was built from.
func (m *Model) Instance() *topology.Instance { return m.inst.Clone() }

// Demands returns the modeled ordered pairs (i,j) in column order.
func (m *Model) Demands() []topology.Pair { return append([]topology.Pair(nil), m.demands...) }

// Fibers returns the modeled directed fibers (m,n) in column order.
func (m *Model) Fibers() []topology.Pair { return append([]topology.Pair(nil), m.fibers...) }

// NumVars returns the number of columns.
func (m *Model) NumVars() int { return m.total }

// L returns the column of L[i][j]; ok is false if the demand is not modeled.
func (m *Model) L(i, j int) (VarID, bool) {
	d := m.demand(i, j)
	if d < 0 {
		return 0, false
	}

	return m.lCol(d), true
}

// X returns the column of X[i][j][w].
func (m *Model) X(i, j, w int) (VarID, bool) {
	d := m.demand(i, j)
	if d < 0 || w < 0 || w >= m.w {
		return 0, false
	}

	return m.xCol(d, w), true
}

// R returns the column of R[i][j][w][a][b], the segment of demand (i,j) on
// wavelength w over fiber a→b.
func (m *Model) R(i, j, w, a, b int) (VarID, bool) {
	d, f := m.demand(i, j), m.fiber(a, b)
	if d < 0 || f < 0 || w < 0 || w >= m.w {
		return 0, false
	}

	return m.rCol(d, w, f), true
}

// Variable describes column id.
func (m *Model) Variable(id VarID) (Variable, error) {
	if id < 0 || int(id) >= m.total {
		return Variable{}, fmt.Errorf("model: Variable(%d): %w", id, ErrUnknownVariable)
	}
	fam, idx := m.decode(id)

	return Variable{ID: id, Family: fam, Index: idx, Domain: domainOf(fam)}, nil
}

// Variables describes every column in order.
func (m *Model) Variables() []Variable {
	out := make([]Variable, m.total)
	for k := range out {
		fam, idx := m.decode(VarID(k))
		out[k] = Variable{ID: VarID(k), Family: fam, Index: idx, Domain: domainOf(fam)}
	}

	return out
}

// Name renders the identifier of column id. Unknown ids render as "x<id>".
func (m *Model) Name(id VarID) string {
	v, err := m.Variable(id)
	if err != nil {
		return "x" + strconv.Itoa(int(id))
	}

	return v.Name()
}

// Domain returns the domain of column id. Unknown ids get the zero Domain.
func (m *Model) Domain(id VarID) Domain {
	if id < 0 || int(id) >= m.total {
		return Domain{}
	}
	fam, _ := m.decode(id)

	return domainOf(fam)
}

// Sense returns the optimization direction; RWA always maximizes.
func (m *Model) Sense() ObjectiveSense { return Maximize }

// Objective returns the objective expression Σ L[i][j].
func (m *Model) Objective() LinExpr { return m.objective.Clone() }

// Constraints returns the ordered constraint list.
func (m *Model) Constraints() []Constraint {
	out := make([]Constraint, len(m.constraints))
	for k, c := range m.constraints {
		out[k] = c.clone()
	}

	return out
}

// NumConstraints returns the number of constraints.
func (m *Model) NumConstraints() int { return len(m.constraints) }

// Constraint looks a constraint up by identifier.
func (m *Model) Constraint(id ConstraintID) (Constraint, bool) {
	k, ok := m.index[id]
	if !ok {
		return Constraint{}, false
	}

	return m.constraints[k].clone(), true
}

// Stats summarizes a model per family.
type Stats struct {
	Variables   map[Family]int
	Constraints map[ConstraintFamily]int
	Nonzeros    int
}

// Stats counts columns, rows and constraint nonzeros per family.
func (m *Model) Stats() Stats {
	d, f := len(m.demands), len(m.fibers)
	s := Stats{
		Variables: map[Family]int{
			LightpathCount:       d,
			WavelengthAssignment: d * m.w,
			RoutedSegment:        d * m.w * f,
		},
		Constraints: make(map[ConstraintFamily]int),
	}
	for _, c := range m.constraints {
		s.Constraints[c.ID.Family]++
		s.Nonzeros += len(c.Expr)
	}

	return s
}

// Feasible reports whether x (indexed by VarID) satisfies every domain,
// integrality requirement and constraint within tol. On a constraint
// violation it also returns the offending identifier; domain violations
// return the zero ConstraintID.
func (m *Model) Feasible(x []float64, tol float64) (ConstraintID, bool) {
	if len(x) != m.total {
		return ConstraintID{}, false
	}
	for k, v := range x {
		dom := m.Domain(VarID(k))
		if v < dom.Lower-tol || v > dom.Upper+tol {
			return ConstraintID{}, false
		}
		if dom.IsInteger() && math.Abs(v-math.Round(v)) > tol {
			return ConstraintID{}, false
		}
	}
	for _, c := range m.constraints {
		if !c.Satisfied(x, tol) {
			return c.ID, false
		}
	}

	return ConstraintID{}, true
}

func domainOf(f Family) Domain {
	if f == LightpathCount {
		return lightpathDomain
	}

	return binaryDomain
}
