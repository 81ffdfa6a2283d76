// SPDX-License-Identifier: MIT
//
// layouts.go - deterministic instance constructors.
//
// Contract:
//   - n, w are validated first; ErrNoNodes / ErrNoWavelengths / ErrTooFewNodes.
//   - Fibers are emitted in both directions with the configured capacity on
//     every wavelength; everything else in Pw stays zero.
//   - The returned instance always passes Validate.
//
// Complexity: O(n²·w) for the tensor allocation.

package topology

import "fmt"

// Method tags and minima.
const (
	methodLine     = "Line"
	methodRing     = "Ring"
	methodFullMesh = "FullMesh"
	methodUniform  = "Uniform"
	methodEmpty    = "Empty"

	minRingNodes = 3

	// Parameters of the reference six-node instance.
	defaultNodes       = 6
	defaultWavelengths = 3
	defaultTransceiver = 4
)

// Line builds the chain 0-1-...-(n-1) with both directions of every span.
func Line(n, w int, opts ...Option) (*Instance, error) {
	in, cfg, err := base(methodLine, n, w, 1, opts)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		in.link(i-1, i, cfg.capacity)
		in.link(i, i-1, cfg.capacity)
	}

	return in, nil
}

// Ring builds Line(n) plus the closing span (n-1)-0. Requires n >= 3.
func Ring(n, w int, opts ...Option) (*Instance, error) {
	in, cfg, err := base(methodRing, n, w, minRingNodes, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		in.link(i, j, cfg.capacity)
		in.link(j, i, cfg.capacity)
	}

	return in, nil
}

// FullMesh connects every ordered pair m != n.
func FullMesh(n, w int, opts ...Option) (*Instance, error) {
	in, cfg, err := base(methodFullMesh, n, w, 1, opts)
	if err != nil {
		return nil, err
	}
	for m := 0; m < n; m++ {
		for k := 0; k < n; k++ {
			if m != k {
				in.link(m, k, cfg.capacity)
			}
		}
	}

	return in, nil
}

// Uniform sets every Pw entry, the m == n diagonal included, to the
// configured capacity.
func Uniform(n, w int, opts ...Option) (*Instance, error) {
	in, cfg, err := base(methodUniform, n, w, 1, opts)
	if err != nil {
		return nil, err
	}
	for m := 0; m < n; m++ {
		for k := 0; k < n; k++ {
			in.link(m, k, cfg.capacity)
		}
	}

	return in, nil
}

// Empty returns an instance with no fibers.
func Empty(n, w int, opts ...Option) (*Instance, error) {
	in, _, err := base(methodEmpty, n, w, 1, opts)

	return in, err
}

// Default returns the reference instance: six nodes, three wavelengths,
// four transmitters and receivers per node, and Pw filled with ones.
func Default() *Instance {
	in, err := Uniform(defaultNodes, defaultWavelengths, WithTransceivers(defaultTransceiver))
	if err != nil {
		// Constant arguments; unreachable.
		panic(err)
	}

	return in
}

// base validates (n, w), resolves options and allocates budgets and an
// all-zero tensor.
func base(method string, n, w, minNodes int, opts []Option) (*Instance, layoutConfig, error) {
	cfg := newLayoutConfig(opts...)
	if n < 1 {
		return nil, cfg, fmt.Errorf("topology: %s: n=%d: %w", method, n, ErrNoNodes)
	}
	if n < minNodes {
		return nil, cfg, fmt.Errorf("topology: %s: n=%d < min=%d: %w", method, n, minNodes, ErrTooFewNodes)
	}
	if w < 1 {
		return nil, cfg, fmt.Errorf("topology: %s: w=%d: %w", method, w, ErrNoWavelengths)
	}

	return &Instance{
		Nodes:       n,
		Wavelengths: w,
		TR:          filled(n, cfg.transmitters),
		RR:          filled(n, cfg.receivers),
		Pw:          newTensor(n, w),
	}, cfg, nil
}

// link sets Pw[m][n][*] to capacity.
func (in *Instance) link(m, n, capacity int) {
	for w := range in.Pw[m][n] {
		in.Pw[m][n][w] = capacity
	}
}
