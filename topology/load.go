package topology

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFiber is one entry of the sparse "fibers" list.
type fileFiber struct {
	From          int   `yaml:"from"`
	To            int   `yaml:"to"`
	Capacity      []int `yaml:"capacity"`
	Bidirectional bool  `yaml:"bidirectional"`
}

// fileInstance is the on-disk layout. Exactly one of Capacity and Fibers
// may be present; an instance with neither has no fibers.
type fileInstance struct {
	Nodes        int         `yaml:"nodes"`
	Wavelengths  int         `yaml:"wavelengths"`
	Transmitters []int       `yaml:"transmitters"`
	Receivers    []int       `yaml:"receivers"`
	Capacity     [][][]int   `yaml:"capacity,omitempty"`
	Fibers       []fileFiber `yaml:"fibers,omitempty"`
}

// Load reads and validates the YAML instance at path.
func Load(path string) (*Instance, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("topology: read %s: %w", path, err)
	}
	in, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("topology: %s: %w", path, err)
	}

	return in, nil
}

// Decode parses a YAML instance from r and validates it.
func Decode(r io.Reader) (*Instance, error) {
	var f fileInstance
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("topology: decode: %w", err)
	}

	in := &Instance{
		Nodes:       f.Nodes,
		Wavelengths: f.Wavelengths,
		TR:          f.Transmitters,
		RR:          f.Receivers,
	}
	switch {
	case f.Capacity != nil && f.Fibers != nil:
		return nil, fmt.Errorf("topology: both capacity and fibers given: %w", ErrShapeMismatch)
	case f.Capacity != nil:
		in.Pw = f.Capacity
	default:
		if in.Nodes < 1 {
			return nil, fmt.Errorf("topology: N=%d: %w", in.Nodes, ErrNoNodes)
		}
		if in.Wavelengths < 1 {
			return nil, fmt.Errorf("topology: W=%d: %w", in.Wavelengths, ErrNoWavelengths)
		}
		pw, err := expandFibers(f.Fibers, in.Nodes, in.Wavelengths)
		if err != nil {
			return nil, err
		}
		in.Pw = pw
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	return in, nil
}

// Encode writes in as YAML using the dense capacity layout.
func Encode(w io.Writer, in *Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	f := fileInstance{
		Nodes:        in.Nodes,
		Wavelengths:  in.Wavelengths,
		Transmitters: in.TR,
		Receivers:    in.RR,
		Capacity:     in.Pw,
	}
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("topology: encode: %w", err)
	}

	return enc.Close()
}

// expandFibers turns the sparse list into a dense [n][n][w] tensor.
func expandFibers(fibers []fileFiber, n, w int) ([][][]int, error) {
	pw := newTensor(n, w)
	seen := make(map[Pair]struct{}, len(fibers))
	put := func(idx int, p Pair, capacity []int) error {
		if p.From < 0 || p.From >= n || p.To < 0 || p.To >= n {
			return fmt.Errorf("topology: fibers[%d] %s: %w", idx, p, ErrNodeOutOfRange)
		}
		if len(capacity) != w {
			return fmt.Errorf("topology: fibers[%d] %s: len(capacity)=%d, want %d: %w",
				idx, p, len(capacity), w, ErrShapeMismatch)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("topology: fibers[%d] %s: %w", idx, p, ErrDuplicateFiber)
		}
		seen[p] = struct{}{}
		copy(pw[p.From][p.To], capacity)

		return nil
	}

	for i, f := range fibers {
		if err := put(i, Pair{From: f.From, To: f.To}, f.Capacity); err != nil {
			return nil, err
		}
		if f.Bidirectional {
			if err := put(i, Pair{From: f.To, To: f.From}, f.Capacity); err != nil {
				return nil, err
			}
		}
	}

	return pw, nil
}
