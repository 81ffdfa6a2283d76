package topology

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// Reachable runs a breadth-first search from src over the fibers whose
// capacity on wavelength w is positive. The result is indexed by node;
// reach[src] is always true. The instance is validated first.
//
// Complexity: O(N²) per call (dense adjacency scan).
func (in *Instance) Reachable(src, w int) ([]bool, error) {
	g, err := in.FiberGraph(w)
	if err != nil {
		return nil, err
	}
	if src < 0 || src >= in.Nodes {
		return nil, fmt.Errorf("topology: Reachable(src=%d): %w", src, ErrNodeOutOfRange)
	}

	visited := make([]bool, in.Nodes)
	bf := traverse.BreadthFirst{
		Visit: func(n graph.Node) { visited[n.ID()] = true },
	}
	bf.Walk(g, simple.Node(src), nil)

	return visited, nil
}

// Unroutable lists the ordered pairs (i,j), i != j, that no single
// wavelength connects. Such demands can only ever get L[i][j] = 0.
func (in *Instance) Unroutable() ([]Pair, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// connected[i*N+j] is true once some wavelength links i to j.
	connected := make([]bool, in.Nodes*in.Nodes)
	for w := 0; w < in.Wavelengths; w++ {
		g, err := in.FiberGraph(w)
		if err != nil {
			return nil, err
		}
		for i := 0; i < in.Nodes; i++ {
			bf := traverse.BreadthFirst{
				Visit: func(n graph.Node) { connected[i*in.Nodes+int(n.ID())] = true },
			}
			bf.Walk(g, simple.Node(i), nil)
		}
	}

	var out []Pair
	for i := 0; i < in.Nodes; i++ {
		for j := 0; j < in.Nodes; j++ {
			if i != j && !connected[i*in.Nodes+j] {
				out = append(out, Pair{From: i, To: j})
			}
		}
	}

	return out, nil
}
