package solver

import (
	"github.com/katalvlaran/rwa/model"
	"github.com/katalvlaran/rwa/topology"
)

// firstFit builds a routing plan greedily and returns it as a column
// vector, or nil when nothing could be routed. Demands are visited by
// increasing offset (i→i+1, then i→i+2, ...) in repeated passes so that
// transceiver budgets drain evenly. Each lightpath takes the lowest
// wavelength that still has a fewest-hop route over residual fiber
// capacity.
//
// The plan satisfies the core families by construction; callers still
// check it against the model, which may carry extension rows.
//
// Complexity: O(L·W·N² log N) for L routed lightpaths.
func firstFit(m *model.Model) []float64 {
	in := m.Instance()
	n := m.Nodes()
	residual := in.Pw
	graphs := make([]*topology.FiberGraph, m.Wavelengths())
	for w := range graphs {
		graphs[w] = topology.NewFiberGraph(n, func(a, b int) bool { return residual[a][b][w] > 0 })
	}

	ff := fitter{m: m, x: make([]float64, m.NumVars()), residual: residual, graphs: graphs}
	tx := append([]int(nil), in.TR...)
	rx := append([]int(nil), in.RR...)
	routed := 0
	for progress := true; progress; {
		progress = false
		for k := 1; k < n; k++ {
			for i := 0; i < n; i++ {
				j := (i + k) % n
				if tx[i] == 0 || rx[j] == 0 || !ff.route(i, j) {
					continue
				}
				tx[i]--
				rx[j]--
				routed++
				progress = true
			}
		}
	}
	if routed == 0 {
		return nil
	}

	return ff.x
}

// fitter holds the plan under construction.
type fitter struct {
	m        *model.Model
	x        []float64
	residual [][][]int
	graphs   []*topology.FiberGraph
}

// route places one more lightpath i→j, reporting whether it found room.
func (f *fitter) route(i, j int) bool {
	l, ok := f.m.L(i, j)
	if !ok {
		return false
	}
	for w, g := range f.graphs {
		xc, ok := f.m.X(i, j, w)
		if !ok || f.x[xc] != 0 {
			continue
		}
		hops := g.Path(i, j)
		if hops == nil {
			continue
		}
		segs, ok := f.segments(i, j, w, hops)
		if !ok {
			continue
		}
		for h, r := range segs {
			f.x[r] = 1
			f.residual[hops[h]][hops[h+1]][w]--
		}
		f.x[xc] = 1
		f.x[l]++

		return true
	}

	return false
}

// segments maps a node route to its R columns.
func (f *fitter) segments(i, j, w int, hops []int) ([]model.VarID, bool) {
	segs := make([]model.VarID, 0, len(hops)-1)
	for h := 1; h < len(hops); h++ {
		r, ok := f.m.R(i, j, w, hops[h-1], hops[h])
		if !ok {
			return nil, false
		}
		segs = append(segs, r)
	}

	return segs, true
}
