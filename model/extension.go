package model

import (
	"fmt"
	"math"
)

// Extension contributes an additional constraint family, e.g. a future
// traffic-bandwidth allocation family. Constraints receives the model with
// every core family already in place and must not retain it past the call.
//
// Returned constraints should carry identifiers made with CustomID; Build
// stamps the Custom family and Name() as the label, normalizes expressions
// and rejects unknown variables, non-finite numbers and duplicates.
type Extension interface {
	Name() string
	Constraints(m *Model) ([]Constraint, error)
}

// applyExtension validates and appends ext's constraints.
func (m *Model) applyExtension(ext Extension) error {
	name := ext.Name()
	if name == "" {
		return fmt.Errorf("model: extension with empty name: %w", ErrInvalidExtension)
	}
	cs, err := ext.Constraints(m)
	if err != nil {
		return fmt.Errorf("model: extension %q: %w", name, err)
	}

	for _, c := range cs {
		if c.ID.Arity < 0 || c.ID.Arity > maxArity {
			return fmt.Errorf("model: extension %q: arity %d outside [0, %d]: %w", name, c.ID.Arity, maxArity, ErrInvalidExtension)
		}
		c.ID.Family = Custom
		c.ID.Label = name
		if c.Sense > GreaterEqual || math.IsNaN(c.RHS) || math.IsInf(c.RHS, 0) {
			return fmt.Errorf("model: extension %q: %s: bad sense or RHS: %w", name, c.ID, ErrInvalidExtension)
		}
		for _, t := range c.Expr {
			if t.Var < 0 || int(t.Var) >= m.total {
				return fmt.Errorf("model: extension %q: %s: variable %d: %w", name, c.ID, t.Var, ErrInvalidExtension)
			}
			if math.IsNaN(t.Coef) || math.IsInf(t.Coef, 0) {
				return fmt.Errorf("model: extension %q: %s: coefficient %g: %w", name, c.ID, t.Coef, ErrInvalidExtension)
			}
		}
		if err := m.add(c.ID, c.Expr.Clone(), c.Sense, c.RHS); err != nil {
			return fmt.Errorf("model: extension %q: %w", name, err)
		}
	}

	return nil
}
