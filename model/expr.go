package model

import "math"

// Term is coef·x[Var].
type Term struct {
	Var  VarID
	Coef float64
}

// LinExpr is an ordered sum of terms. Expressions produced by Build are
// normalized: each variable appears at most once and no coefficient is zero.
type LinExpr []Term

// normalize merges duplicate variables (keeping first-occurrence order)
// and drops zero coefficients.
func (e LinExpr) normalize() LinExpr {
	pos := make(map[VarID]int, len(e))
	out := make(LinExpr, 0, len(e))
	for _, t := range e {
		if k, ok := pos[t.Var]; ok {
			out[k].Coef += t.Coef
			continue
		}
		pos[t.Var] = len(out)
		out = append(out, t)
	}

	kept := out[:0]
	for _, t := range out {
		if t.Coef != 0 {
			kept = append(kept, t)
		}
	}

	return kept
}

// Coef returns the coefficient of v, or 0 when v does not appear.
func (e LinExpr) Coef(v VarID) float64 {
	var c float64
	for _, t := range e {
		if t.Var == v {
			c += t.Coef
		}
	}

	return c
}

// Vars returns the referenced variables in term order.
func (e LinExpr) Vars() []VarID {
	out := make([]VarID, len(e))
	for k, t := range e {
		out[k] = t.Var
	}

	return out
}

// Eval computes Σ coef·x[var]. x must cover every referenced VarID.
func (e LinExpr) Eval(x []float64) float64 {
	var s float64
	for _, t := range e {
		s += t.Coef * x[t.Var]
	}

	return s
}

// Clone returns an independent copy.
func (e LinExpr) Clone() LinExpr {
	if e == nil {
		return nil
	}

	return append(LinExpr(nil), e...)
}

// Constraint is Expr Sense RHS with a unique identifier.
type Constraint struct {
	ID    ConstraintID
	Expr  LinExpr
	Sense Sense
	RHS   float64
}

// Satisfied reports whether x satisfies the constraint within tol.
func (c Constraint) Satisfied(x []float64, tol float64) bool {
	lhs := c.Expr.Eval(x)
	switch c.Sense {
	case LessEqual:
		return lhs <= c.RHS+tol
	case GreaterEqual:
		return lhs >= c.RHS-tol
	default:
		return math.Abs(lhs-c.RHS) <= tol
	}
}

// clone deep-copies the expression.
func (c Constraint) clone() Constraint {
	c.Expr = c.Expr.Clone()

	return c
}
