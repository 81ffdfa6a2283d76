package topology

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// FiberGraph is a read-only directed gonum graph over node indices whose
// edges are the fibers a predicate accepts. Self fibers are never edges.
// Neighbors iterate in ascending node order, so gonum traversals over it
// are deterministic.
type FiberGraph struct {
	n      int
	usable func(from, to int) bool
}

var _ graph.Directed = (*FiberGraph)(nil)

// NewFiberGraph returns the graph on nodes 0..n-1 with an edge a→b for
// every a != b where usable(a, b) holds. usable is consulted on every
// query; the graph reflects later changes to whatever it reads.
func NewFiberGraph(n int, usable func(from, to int) bool) *FiberGraph {
	return &FiberGraph{n: n, usable: usable}
}

// FiberGraph returns the graph of fibers with positive capacity on
// wavelength w.
func (in *Instance) FiberGraph(w int) (*FiberGraph, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if w < 0 || w >= in.Wavelengths {
		return nil, fmt.Errorf("topology: FiberGraph(w=%d): %w", w, ErrWavelengthOutOfRange)
	}
	pw := in.Pw

	return NewFiberGraph(in.Nodes, func(a, b int) bool { return pw[a][b][w] > 0 }), nil
}

func (g *FiberGraph) has(id int64) bool { return id >= 0 && id < int64(g.n) }

func (g *FiberGraph) edge(u, v int64) bool {
	return u != v && g.has(u) && g.has(v) && g.usable(int(u), int(v))
}

// Node returns the node with the given index, or nil when out of range.
func (g *FiberGraph) Node(id int64) graph.Node {
	if !g.has(id) {
		return nil
	}

	return simple.Node(id)
}

// Nodes returns every node in index order.
func (g *FiberGraph) Nodes() graph.Nodes {
	nodes := make([]graph.Node, g.n)
	for i := range nodes {
		nodes[i] = simple.Node(i)
	}

	return iterator.NewOrderedNodes(nodes)
}

// From returns the heads of the usable fibers leaving id.
func (g *FiberGraph) From(id int64) graph.Nodes {
	var nodes []graph.Node
	for v := int64(0); v < int64(g.n); v++ {
		if g.edge(id, v) {
			nodes = append(nodes, simple.Node(v))
		}
	}
	if len(nodes) == 0 {
		return graph.Empty
	}

	return iterator.NewOrderedNodes(nodes)
}

// To returns the tails of the usable fibers entering id.
func (g *FiberGraph) To(id int64) graph.Nodes {
	var nodes []graph.Node
	for u := int64(0); u < int64(g.n); u++ {
		if g.edge(u, id) {
			nodes = append(nodes, simple.Node(u))
		}
	}
	if len(nodes) == 0 {
		return graph.Empty
	}

	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports a usable fiber in either direction.
func (g *FiberGraph) HasEdgeBetween(x, y int64) bool { return g.edge(x, y) || g.edge(y, x) }

// HasEdgeFromTo reports whether the fiber u→v is usable.
func (g *FiberGraph) HasEdgeFromTo(u, v int64) bool { return g.edge(u, v) }

// Edge returns the fiber u→v, or nil when it is not usable.
func (g *FiberGraph) Edge(u, v int64) graph.Edge {
	if !g.edge(u, v) {
		return nil
	}

	return simple.Edge{F: simple.Node(u), T: simple.Node(v)}
}

// Path returns a fewest-hop route src→dst as a node sequence, or nil when
// dst is unreachable or src == dst. Ties resolve toward lower node indices.
func (g *FiberGraph) Path(src, dst int) []int {
	if src == dst || !g.has(int64(src)) || !g.has(int64(dst)) {
		return nil
	}
	nodes, _ := path.DijkstraFromTo(simple.Node(src), simple.Node(dst), g)
	if len(nodes) < 2 {
		return nil
	}
	out := make([]int, len(nodes))
	for k, n := range nodes {
		out[k] = int(n.ID())
	}

	return out
}
