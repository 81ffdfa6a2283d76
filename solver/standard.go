package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/rwa/model"
)

// zeroTol drops eliminated entries during presolve.
const zeroTol = 1e-9

// row is a model constraint over model columns.
type row struct {
	cols  []int
	vals  []float64
	sense model.Sense
	rhs   float64
}

// positive reports whether every coefficient is > 0.
func (r row) positive() bool {
	for _, v := range r.vals {
		if v <= 0 {
			return false
		}
	}

	return len(r.vals) > 0
}

// problem is a model flattened for repeated relaxation solves. obj is the
// maximization objective; lo and hi are the root bounds.
type problem struct {
	n       int
	obj     []float64
	rows    []row
	lo, hi  []float64
	integer []bool

	// rowScale is the largest coefficient mass Σ|a| of any row, at least 1.
	rowScale float64
}

// newProblem flattens m. Columns with a non-finite lower bound are not
// supported by the shifted standard form.
func newProblem(m *model.Model) (*problem, error) {
	n := m.NumVars()
	p := &problem{
		n:       n,
		obj:     make([]float64, n),
		lo:      make([]float64, n),
		hi:      make([]float64, n),
		integer: make([]bool, n),
	}

	sign := 1.0
	if m.Sense() == model.Minimize {
		sign = -1
	}
	for _, t := range m.Objective() {
		p.obj[t.Var] += sign * t.Coef
	}
	for k := 0; k < n; k++ {
		d := m.Domain(model.VarID(k))
		if math.IsInf(d.Lower, 0) || math.IsNaN(d.Lower) || math.IsNaN(d.Upper) {
			return nil, fmt.Errorf("%w: column %s: unsupported bounds [%g, %g]", ErrSolver, m.Name(model.VarID(k)), d.Lower, d.Upper)
		}
		p.lo[k], p.hi[k], p.integer[k] = d.Lower, d.Upper, d.IsInteger()
	}

	cs := m.Constraints()
	p.rows = make([]row, len(cs))
	p.rowScale = 1
	for k, c := range cs {
		r := row{
			cols:  make([]int, len(c.Expr)),
			vals:  make([]float64, len(c.Expr)),
			sense: c.Sense,
			rhs:   c.RHS,
		}
		var mass float64
		for t, term := range c.Expr {
			r.cols[t], r.vals[t] = int(term.Var), term.Coef
			mass += math.Abs(term.Coef)
		}
		p.rowScale = math.Max(p.rowScale, mass)
		p.rows[k] = r
	}

	return p, nil
}

// rowBound returns an upper bound on the objective over the box [lo, hi]
// and the <= rows whose coefficients are all positive, without solving an
// LP. Each positive-cost column is charged to the first such row holding
// it; a row then caps its charged columns at its slack above lo times
// their best cost-to-coefficient ratio. Uncharged positive-cost columns
// contribute obj·hi, which may be +Inf.
//
// Complexity: O(nnz).
func (p *problem) rowBound(lo, hi []float64) float64 {
	owner := make([]int, p.n)
	coef := make([]float64, p.n)
	for j := range owner {
		owner[j] = -1
	}
	for ri, r := range p.rows {
		if r.sense == model.GreaterEqual || !r.positive() {
			continue
		}
		for k, c := range r.cols {
			if p.obj[c] > 0 && owner[c] < 0 {
				owner[c], coef[c] = ri, r.vals[k]
			}
		}
	}

	ratio := make(map[int]float64)
	spread := make(map[int]float64)
	var bound float64
	for j, c := range p.obj {
		switch {
		case c < 0:
			bound += c * lo[j]
		case c == 0:
		case owner[j] < 0:
			bound += c * hi[j]
		default:
			bound += c * lo[j]
			ratio[owner[j]] = math.Max(ratio[owner[j]], c/coef[j])
			spread[owner[j]] += c * (hi[j] - lo[j])
		}
	}
	for ri, q := range ratio {
		r := p.rows[ri]
		slack := r.rhs
		for k, c := range r.cols {
			slack -= r.vals[k] * lo[c]
		}
		bound += math.Min(q*math.Max(slack, 0), spread[ri])
	}

	return bound
}

// relaxation is the outcome of one LP solve. x and obj are set only when
// status is Optimal.
type relaxation struct {
	status Status
	x      []float64
	obj    float64
}

// tighten lowers hi using every <= or = row whose coefficients are all
// positive. implied[j] receives the tightest unrounded bound such a row
// enforces on column j. Returns false when a row cannot hold even at lo.
func (p *problem) tighten(lo, hi, implied []float64, tol float64) bool {
	for j := range implied {
		implied[j] = math.Inf(1)
	}
	for _, r := range p.rows {
		if r.sense == model.GreaterEqual || !r.positive() {
			continue
		}
		slack := r.rhs
		for k, c := range r.cols {
			slack -= r.vals[k] * lo[c]
		}
		if slack < -tol {
			return false
		}
		for k, c := range r.cols {
			ub := lo[c] + slack/r.vals[k]
			if ub < implied[c] {
				implied[c] = ub
			}
			if p.integer[c] {
				ub = math.Floor(ub + tol)
			}
			if ub < hi[c] {
				hi[c] = ub
			}
		}
	}
	for j := range lo {
		if hi[j] < lo[j]-tol {
			return false
		}
	}

	return true
}

// relax solves the LP relaxation under the bounds lo, hi (not modified).
func (p *problem) relax(lo0, hi0 []float64, tol float64) (relaxation, error) {
	lo := append([]float64(nil), lo0...)
	hi := append([]float64(nil), hi0...)
	implied := make([]float64, p.n)
	if !p.tighten(lo, hi, implied, tol) {
		return relaxation{status: Infeasible}, nil
	}

	// Structural columns y = x - lo for every unfixed variable, then slacks.
	col := make([]int, p.n)
	var cost []float64
	for j := 0; j < p.n; j++ {
		if hi[j]-lo[j] <= tol {
			col[j] = -1
			continue
		}
		col[j] = len(cost)
		cost = append(cost, -p.obj[j])
	}

	var eqs []sparseRow
	for _, r := range p.rows {
		sr := sparseRow{rhs: r.rhs}
		for k, c := range r.cols {
			sr.rhs -= r.vals[k] * lo[c]
			if col[c] >= 0 {
				sr.add(col[c], r.vals[k])
			}
		}
		if len(sr.idx) == 0 {
			if !holdsAtZero(r.sense, sr.rhs, tol) {
				return relaxation{status: Infeasible}, nil
			}
			continue
		}
		switch r.sense {
		case model.LessEqual:
			sr.add(len(cost), 1)
			cost = append(cost, 0)
		case model.GreaterEqual:
			sr.add(len(cost), -1)
			cost = append(cost, 0)
		}
		eqs = append(eqs, sr)
	}
	for j := 0; j < p.n; j++ {
		if col[j] < 0 || math.IsInf(hi[j], 1) || implied[j] <= hi[j]+tol {
			continue
		}
		sr := sparseRow{rhs: hi[j] - lo[j]}
		sr.add(col[j], 1)
		sr.add(len(cost), 1)
		cost = append(cost, 0)
		eqs = append(eqs, sr)
	}

	keep, ok := independent(eqs, tol)
	if !ok {
		return relaxation{status: Infeasible}, nil
	}

	used := make([]bool, len(cost))
	for _, k := range keep {
		for _, c := range eqs[k].idx {
			used[c] = true
		}
	}
	dense := make([]int, len(cost))
	var c []float64
	for j := range cost {
		if !used[j] {
			if cost[j] < 0 {
				return relaxation{status: Unbounded}, nil
			}
			dense[j] = -1
			continue
		}
		dense[j] = len(c)
		c = append(c, cost[j])
	}

	y := make([]float64, len(cost))
	if len(keep) > 0 {
		A := mat.NewDense(len(keep), len(c), nil)
		b := make([]float64, len(keep))
		for i, k := range keep {
			r := eqs[k]
			sign := 1.0
			if r.rhs < 0 {
				sign = -1
			}
			b[i] = sign * r.rhs
			for t, cc := range r.idx {
				A.Set(i, dense[cc], sign*r.val[t])
			}
		}
		_, opt, err := lp.Simplex(c, A, b, lpTol, nil)
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return relaxation{status: Infeasible}, nil
		case errors.Is(err, lp.ErrUnbounded):
			return relaxation{status: Unbounded}, nil
		case err != nil:
			return relaxation{}, fmt.Errorf("%w: simplex: %w", ErrSolver, err)
		}
		for j, d := range dense {
			if d >= 0 {
				y[j] = opt[d]
			}
		}
	}

	x := make([]float64, p.n)
	var obj float64
	for j := 0; j < p.n; j++ {
		x[j] = lo[j]
		if col[j] >= 0 {
			x[j] += y[col[j]]
		}
		obj += p.obj[j] * x[j]
	}

	return relaxation{status: Optimal, x: x, obj: obj}, nil
}

// holdsAtZero reports whether 0 sense rhs holds within tol.
func holdsAtZero(sense model.Sense, rhs, tol float64) bool {
	switch sense {
	case model.LessEqual:
		return rhs >= -tol
	case model.GreaterEqual:
		return rhs <= tol
	default:
		return math.Abs(rhs) <= tol
	}
}

// sparseRow is an equality a·y = rhs over standard-form columns.
type sparseRow struct {
	idx []int
	val []float64
	rhs float64
}

func (r *sparseRow) add(c int, v float64) {
	r.idx = append(r.idx, c)
	r.val = append(r.val, v)
}

// independent selects a maximal linearly independent subset of rows by
// sparse Gaussian elimination, keeping the original order. ok is false
// when some row reduces to 0 = b with |b| > tol.
//
// Each candidate is reduced against the pivots in creation order; a pivot
// row is zero on every earlier pivot column, so one sweep suffices.
//
// Complexity: O(m·r·s) for m rows, r pivots and s the reduced row width.
func independent(rows []sparseRow, tol float64) (keep []int, ok bool) {
	type pivot struct {
		col  int
		coef map[int]float64
		rhs  float64
	}
	var pivots []pivot

	for i, src := range rows {
		r := make(map[int]float64, len(src.idx))
		for t, c := range src.idx {
			r[c] += src.val[t]
		}
		rhs := src.rhs
		for _, p := range pivots {
			v, hit := r[p.col]
			if !hit {
				continue
			}
			for c, a := range p.coef {
				nv := r[c] - v*a
				if math.Abs(nv) < zeroTol {
					delete(r, c)
				} else {
					r[c] = nv
				}
			}
			delete(r, p.col)
			rhs -= v * p.rhs
		}
		if len(r) == 0 {
			if math.Abs(rhs) > tol {
				return nil, false
			}
			continue
		}

		best, bestAbs := -1, 0.0
		for c, v := range r {
			a := math.Abs(v)
			if a > bestAbs || (a == bestAbs && c < best) {
				best, bestAbs = c, a
			}
		}
		scale := r[best]
		for c := range r {
			r[c] /= scale
		}
		pivots = append(pivots, pivot{col: best, coef: r, rhs: rhs / scale})
		keep = append(keep, i)
	}

	return keep, true
}
