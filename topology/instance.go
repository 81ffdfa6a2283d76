package topology

import "fmt"

// Pair is an ordered node pair. It names both a demand (source, destination)
// and a directed fiber (tail, head).
type Pair struct {
	From int
	To   int
}

// String renders the pair as "(from,to)".
func (p Pair) String() string { return fmt.Sprintf("(%d,%d)", p.From, p.To) }

// Instance is one static RWA problem instance.
//
// Pw is indexed [m][n][w]: the number of lightpaths the directed fiber m→n
// may carry on wavelength w. (m,n) and (n,m) are distinct fibers.
type Instance struct {
	// Nodes is N; node identifiers are 0..N-1.
	Nodes int `yaml:"nodes"`

	// Wavelengths is W; wavelength identifiers are 0..W-1.
	Wavelengths int `yaml:"wavelengths"`

	// TR[i] bounds the lightpaths originating at node i.
	TR []int `yaml:"transmitters"`

	// RR[j] bounds the lightpaths terminating at node j.
	RR []int `yaml:"receivers"`

	// Pw is the fiber/wavelength capacity tensor, shaped [N][N][W].
	Pw [][][]int `yaml:"capacity,omitempty"`
}

// Validate checks every shape and domain rule. It stops at the first
// violation and wraps the matching sentinel with the parameter location.
//
// Complexity: O(N²·W).
func (in *Instance) Validate() error {
	if in == nil {
		return fmt.Errorf("topology: nil instance: %w", ErrShapeMismatch)
	}
	if in.Nodes < 1 {
		return fmt.Errorf("topology: N=%d: %w", in.Nodes, ErrNoNodes)
	}
	if in.Wavelengths < 1 {
		return fmt.Errorf("topology: W=%d: %w", in.Wavelengths, ErrNoWavelengths)
	}
	if err := validateBudget("TR", in.TR, in.Nodes); err != nil {
		return err
	}
	if err := validateBudget("RR", in.RR, in.Nodes); err != nil {
		return err
	}

	if len(in.Pw) != in.Nodes {
		return fmt.Errorf("topology: len(Pw)=%d, want %d: %w", len(in.Pw), in.Nodes, ErrShapeMismatch)
	}
	for m := range in.Pw {
		if len(in.Pw[m]) != in.Nodes {
			return fmt.Errorf("topology: len(Pw[%d])=%d, want %d: %w", m, len(in.Pw[m]), in.Nodes, ErrShapeMismatch)
		}
		for n := range in.Pw[m] {
			if len(in.Pw[m][n]) != in.Wavelengths {
				return fmt.Errorf("topology: len(Pw[%d][%d])=%d, want %d: %w",
					m, n, len(in.Pw[m][n]), in.Wavelengths, ErrShapeMismatch)
			}
			for w, c := range in.Pw[m][n] {
				if c < 0 {
					return fmt.Errorf("topology: Pw[%d][%d][%d]=%d: %w", m, n, w, c, ErrNegativeCapacity)
				}
			}
		}
	}

	return nil
}

// validateBudget checks a per-node transceiver array.
func validateBudget(name string, xs []int, n int) error {
	if len(xs) != n {
		return fmt.Errorf("topology: len(%s)=%d, want %d: %w", name, len(xs), n, ErrShapeMismatch)
	}
	for i, x := range xs {
		if x < 0 {
			return fmt.Errorf("topology: %s[%d]=%d: %w", name, i, x, ErrNegativeCapacity)
		}
	}

	return nil
}

// Capacity returns Pw[m][n][w]. Out-of-range indices are reported, not panicked on.
func (in *Instance) Capacity(m, n, w int) (int, error) {
	if m < 0 || m >= in.Nodes || n < 0 || n >= in.Nodes {
		return 0, fmt.Errorf("topology: Capacity(%d,%d,%d): %w", m, n, w, ErrNodeOutOfRange)
	}
	if w < 0 || w >= in.Wavelengths {
		return 0, fmt.Errorf("topology: Capacity(%d,%d,%d): %w", m, n, w, ErrWavelengthOutOfRange)
	}

	return in.Pw[m][n][w], nil
}

// Fibers returns the directed pairs (m,n) that carry positive capacity on
// at least one wavelength, in row-major order.
func (in *Instance) Fibers() []Pair {
	var out []Pair
	for m := 0; m < in.Nodes; m++ {
		for n := 0; n < in.Nodes; n++ {
			for _, c := range in.Pw[m][n] {
				if c > 0 {
					out = append(out, Pair{From: m, To: n})
					break
				}
			}
		}
	}

	return out
}

// Clone returns a deep copy; the model builder never aliases caller slices
// through it, but loaders and tests mutate copies freely.
func (in *Instance) Clone() *Instance {
	out := &Instance{
		Nodes:       in.Nodes,
		Wavelengths: in.Wavelengths,
		TR:          append([]int(nil), in.TR...),
		RR:          append([]int(nil), in.RR...),
	}
	if in.Pw != nil {
		out.Pw = make([][][]int, len(in.Pw))
		for m := range in.Pw {
			out.Pw[m] = make([][]int, len(in.Pw[m]))
			for n := range in.Pw[m] {
				out.Pw[m][n] = append([]int(nil), in.Pw[m][n]...)
			}
		}
	}

	return out
}

// newTensor allocates a zeroed [n][n][w] tensor.
func newTensor(n, w int) [][][]int {
	pw := make([][][]int, n)
	for m := range pw {
		pw[m] = make([][]int, n)
		for k := range pw[m] {
			pw[m][k] = make([]int, w)
		}
	}

	return pw
}

// filled returns a slice of length n with every element set to v.
func filled(n, v int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = v
	}

	return xs
}
