package model

import (
	"math"
	"strconv"
	"strings"
)

// VarID is a dense column index into the model's variable arenas.
type VarID int

// Family tags a variable arena.
type Family uint8

// Variable families, in column order.
const (
	LightpathCount Family = iota
	WavelengthAssignment
	RoutedSegment
)

var familyNames = [...]string{
	LightpathCount:       "LPs",
	WavelengthAssignment: "LPs_on_wl",
	RoutedSegment:        "phy_topo_route",
}

// String returns the family's name prefix.
func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}

	return "family" + strconv.Itoa(int(f))
}

// Kind is the integrality class of a variable.
type Kind uint8

// Variable kinds.
const (
	Continuous Kind = iota
	Integer
	Binary
)

// String returns a lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Integer:
		return "integer"
	case Binary:
		return "binary"
	default:
		return "kind" + strconv.Itoa(int(k))
	}
}

// Domain is a variable's kind and bounds. Upper may be +Inf.
type Domain struct {
	Kind  Kind
	Lower float64
	Upper float64
}

// IsInteger reports whether the domain requires integral values.
func (d Domain) IsInteger() bool { return d.Kind == Integer || d.Kind == Binary }

// Domains of the three families.
var (
	lightpathDomain = Domain{Kind: Integer, Lower: 0, Upper: math.Inf(1)}
	binaryDomain    = Domain{Kind: Binary, Lower: 0, Upper: 1}
)

// Variable describes one column.
type Variable struct {
	ID     VarID
	Family Family
	// Index is (i,j) for L, (i,j,w) for X and (i,j,w,m,n) for R.
	Index  []int
	Domain Domain
}

// Name renders the PuLP-style identifier, e.g. "LPs_on_wl_0_1_2".
func (v Variable) Name() string {
	var b strings.Builder
	b.WriteString(v.Family.String())
	for _, x := range v.Index {
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(x))
	}

	return b.String()
}

// ConstraintFamily tags a constraint family.
type ConstraintFamily uint8

// Constraint families, in emission order. Custom is used by extensions.
const (
	Transmitters ConstraintFamily = iota
	Receivers
	WavelengthSplit
	Continuity
	SinkIn
	SourceOut
	SourceInZero
	SinkOutZero
	FiberCapacity
	Custom
)

var constraintFamilyNames = [...]string{
	Transmitters:    "transmitters",
	Receivers:       "receivers",
	WavelengthSplit: "wavelength_split",
	Continuity:      "continuity",
	SinkIn:          "sink_in",
	SourceOut:       "source_out",
	SourceInZero:    "source_in_zero",
	SinkOutZero:     "sink_out_zero",
	FiberCapacity:   "fiber_capacity",
	Custom:          "custom",
}

// String returns the family tag.
func (f ConstraintFamily) String() string {
	if int(f) < len(constraintFamilyNames) {
		return constraintFamilyNames[f]
	}

	return "constraint" + strconv.Itoa(int(f))
}

// CoreFamilies lists the built-in families in emission order.
func CoreFamilies() []ConstraintFamily {
	return []ConstraintFamily{
		Transmitters, Receivers, WavelengthSplit, Continuity,
		SinkIn, SourceOut, SourceInZero, SinkOutZero, FiberCapacity,
	}
}

// maxArity bounds the index tuple of any constraint identifier.
const maxArity = 4

// ConstraintID identifies a constraint by family and index tuple. It is
// comparable and usable as a map key. Label is set only for Custom.
type ConstraintID struct {
	Family ConstraintFamily
	Label  string
	Index  [maxArity]int
	Arity  int
}

// newID packs idx into a ConstraintID. len(idx) <= maxArity.
func newID(f ConstraintFamily, idx ...int) ConstraintID {
	id := ConstraintID{Family: f, Arity: len(idx)}
	copy(id.Index[:], idx)

	return id
}

// ID builds the identifier of family f at idx, e.g.
// ID(Continuity, i, j, w, k). Panics on more than four indices.
func ID(f ConstraintFamily, idx ...int) ConstraintID {
	if len(idx) > maxArity {
		panic("model: ID: index tuple longer than 4")
	}

	return newID(f, idx...)
}

// CustomID builds an identifier for an extension constraint. The family
// label is stamped by Build from the extension's name.
func CustomID(idx ...int) ConstraintID { return ID(Custom, idx...) }

// Indices returns the index tuple.
func (c ConstraintID) Indices() []int {
	return append([]int(nil), c.Index[:c.Arity]...)
}

// tag is the family label used in rendered identifiers.
func (c ConstraintID) tag() string {
	if c.Family == Custom && c.Label != "" {
		return c.Label
	}

	return c.Family.String()
}

// String renders "family(i,j,...)".
func (c ConstraintID) String() string {
	return c.render('(', ',', ")")
}

// Name renders the LP-safe form "family_i_j_...".
func (c ConstraintID) Name() string {
	return c.render('_', '_', "")
}

func (c ConstraintID) render(open, sep byte, closing string) string {
	var b strings.Builder
	b.WriteString(c.tag())
	for k := 0; k < c.Arity; k++ {
		if k == 0 {
			b.WriteByte(open)
		} else {
			b.WriteByte(sep)
		}
		b.WriteString(strconv.Itoa(c.Index[k]))
	}
	if c.Arity > 0 {
		b.WriteString(closing)
	}

	return b.String()
}

// Sense is a constraint's relational operator.
type Sense uint8

// Relational operators.
const (
	LessEqual Sense = iota
	Equal
	GreaterEqual
)

// String returns "<=", "=" or ">=".
func (s Sense) String() string {
	switch s {
	case LessEqual:
		return "<="
	case Equal:
		return "="
	case GreaterEqual:
		return ">="
	default:
		return "?"
	}
}

// ObjectiveSense is the optimization direction.
type ObjectiveSense uint8

// Directions.
const (
	Maximize ObjectiveSense = iota
	Minimize
)

// String returns "maximize" or "minimize".
func (s ObjectiveSense) String() string {
	if s == Minimize {
		return "minimize"
	}

	return "maximize"
}
