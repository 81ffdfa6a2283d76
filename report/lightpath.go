package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/rwa/model"
	"github.com/katalvlaran/rwa/solver"
)

// activeThreshold separates 0 from 1 on binary columns.
const activeThreshold = 0.5

// Hop is one traversed fiber.
type Hop struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Lightpath is one wavelength-specific lightpath and its route.
type Lightpath struct {
	Src        int   `yaml:"src"`
	Dst        int   `yaml:"dst"`
	Wavelength int   `yaml:"wavelength"`
	Hops       []Hop `yaml:"hops"`
}

// String renders "0->2 w0: 0->1 1->2".
func (l Lightpath) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(l.Src) + "->" + strconv.Itoa(l.Dst) + " w" + strconv.Itoa(l.Wavelength) + ":")
	for _, h := range l.Hops {
		b.WriteString(" " + strconv.Itoa(h.From) + "->" + strconv.Itoa(h.To))
	}

	return b.String()
}

// Lightpaths decodes res into routed lightpaths, ordered by demand and
// then wavelength. i == j demands never carry a lightpath and are skipped.
//
// Complexity: O(N²·W·N²) to scan the R arena.
func Lightpaths(m *model.Model, res *solver.Result) ([]Lightpath, error) {
	if res == nil || res.Values == nil {
		return nil, ErrNoValues
	}
	if len(res.Values) != m.NumVars() {
		return nil, fmt.Errorf("report: %d values for %d columns: %w", len(res.Values), m.NumVars(), ErrShape)
	}

	n, nw := m.Nodes(), m.Wavelengths()
	var out []Lightpath
	for _, d := range m.Demands() {
		if d.From == d.To {
			continue
		}
		for w := 0; w < nw; w++ {
			x, _ := m.X(d.From, d.To, w)
			if res.Value(x) < activeThreshold {
				continue
			}
			hops, err := trace(m, res, d.From, d.To, w, n)
			if err != nil {
				return nil, err
			}
			out = append(out, Lightpath{Src: d.From, Dst: d.To, Wavelength: w, Hops: hops})
		}
	}

	return out, nil
}

// trace walks active segments of (src,dst,w) from src, using each fiber at
// most once, until dst is reached.
func trace(m *model.Model, res *solver.Result, src, dst, w, n int) ([]Hop, error) {
	used := make(map[Hop]bool)
	var hops []Hop
	cur := src
	for cur != dst {
		next := -1
		for b := 0; b < n; b++ {
			if b == cur || used[Hop{cur, b}] {
				continue
			}
			r, ok := m.R(src, dst, w, cur, b)
			if ok && res.Value(r) >= activeThreshold {
				next = b
				break
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("report: lightpath %d->%d w%d stuck at %d: %w", src, dst, w, cur, ErrBrokenRoute)
		}
		h := Hop{From: cur, To: next}
		used[h] = true
		hops = append(hops, h)
		cur = next
	}

	return hops, nil
}
