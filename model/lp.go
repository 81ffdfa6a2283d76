package model

import (
	"bufio"
	"io"
	"math"
	"strconv"
)

// LP-format layout constants.
const (
	lpTermsPerLine = 8
	lpObjectiveRow = "obj"
	lpDummyVar     = "__dummy"
)

// WriteLP renders the model in CPLEX LP format, the text boundary most
// external MILP solvers accept. Rows are named with ConstraintID.Name and
// columns with Variable.Name. Empty expressions are written against a
// "__dummy" column fixed to zero.
func (m *Model) WriteLP(w io.Writer) error {
	lw := &lpWriter{w: bufio.NewWriter(w), m: m}

	lw.line(`\* RWA: ` + strconv.Itoa(m.n) + " nodes, " + strconv.Itoa(m.w) + " wavelengths *\\")
	if m.Sense() == Maximize {
		lw.line("Maximize")
	} else {
		lw.line("Minimize")
	}
	lw.row(lpObjectiveRow, m.objective)
	lw.newline()

	lw.line("Subject To")
	for _, c := range m.constraints {
		lw.row(c.ID.Name(), c.Expr)
		lw.str(" " + c.Sense.String() + " " + formatNumber(c.RHS))
		lw.newline()
	}

	var generals, binaries []string
	var bounds []string
	for k := 0; k < m.total; k++ {
		v, _ := m.Variable(VarID(k))
		switch v.Domain.Kind {
		case Binary:
			binaries = append(binaries, v.Name())
			continue
		case Integer:
			generals = append(generals, v.Name())
		}
		if v.Domain.Lower != 0 || !math.IsInf(v.Domain.Upper, 1) {
			bounds = append(bounds, formatNumber(v.Domain.Lower)+" <= "+v.Name()+" <= "+formatNumber(v.Domain.Upper))
		}
	}
	if lw.dummy {
		bounds = append(bounds, lpDummyVar+" = 0")
	}

	if len(bounds) > 0 {
		lw.line("Bounds")
		for _, b := range bounds {
			lw.line(" " + b)
		}
	}
	lw.section("Generals", generals)
	lw.section("Binaries", binaries)
	lw.line("End")

	if lw.err != nil {
		return lw.err
	}

	return lw.w.Flush()
}

// lpWriter accumulates the first write error and tracks dummy usage.
type lpWriter struct {
	w     *bufio.Writer
	m     *Model
	err   error
	dummy bool
}

func (lw *lpWriter) str(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = lw.w.WriteString(s)
}

func (lw *lpWriter) newline() { lw.str("\n") }

func (lw *lpWriter) line(s string) {
	lw.str(s)
	lw.newline()
}

// row writes " name: expr" without the relation.
func (lw *lpWriter) row(name string, expr LinExpr) {
	lw.str(" " + name + ":")
	if len(expr) == 0 {
		lw.dummy = true
		lw.str(" 0 " + lpDummyVar)
		return
	}
	for k, t := range expr {
		if k > 0 && k%lpTermsPerLine == 0 {
			lw.str("\n  ")
		}
		lw.str(formatTerm(t.Coef, lw.m.Name(t.Var), k == 0))
	}
}

func (lw *lpWriter) section(title string, names []string) {
	if len(names) == 0 {
		return
	}
	lw.line(title)
	for k, n := range names {
		if k%lpTermsPerLine == 0 {
			if k > 0 {
				lw.newline()
			}
			lw.str(" ")
		}
		lw.str(" " + n)
	}
	lw.newline()
}

// formatTerm renders " + name", " - 2 name", or "name" for a leading +1.
func formatTerm(coef float64, name string, first bool) string {
	sign := " + "
	if coef < 0 {
		sign = " - "
		coef = -coef
	}
	if first && sign == " + " {
		sign = " "
	}
	if coef == 1 {
		return sign + name
	}

	return sign + formatNumber(coef) + " " + name
}

func formatNumber(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "+inf"
	case math.IsInf(x, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
}
