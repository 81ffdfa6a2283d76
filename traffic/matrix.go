package traffic

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// SecurityLevels lists the key-rate security levels, lowest first.
var SecurityLevels = []int{1, 3, 12, 48}

// requestsPerPair is the number of connection requests Generate places on
// every ordered pair.
const requestsPerPair = 1

// Matrix maps a security level to its N×N request matrix.
type Matrix map[int][][]int

// Generate returns a Matrix for nodes nodes with one request per ordered
// pair (diagonal included) on every security level.
func Generate(nodes int) (Matrix, error) {
	if nodes < 1 {
		return nil, fmt.Errorf("traffic: nodes=%d: %w", nodes, ErrNoNodes)
	}
	out := make(Matrix, len(SecurityLevels))
	for _, level := range SecurityLevels {
		rows := make([][]int, nodes)
		for i := range rows {
			rows[i] = make([]int, nodes)
			for j := range rows[i] {
				rows[i][j] = requestsPerPair
			}
		}
		out[level] = rows
	}

	return out, nil
}

// Levels returns the levels present in m in ascending order.
func (m Matrix) Levels() []int {
	out := make([]int, 0, len(m))
	for l := range m {
		out = append(out, l)
	}
	sort.Ints(out)

	return out
}

// Total sums the requests of one level; unknown levels sum to zero.
func (m Matrix) Total(level int) int {
	var s int
	for _, row := range m[level] {
		for _, v := range row {
			s += v
		}
	}

	return s
}

// WriteYAML encodes m keyed by level.
func (m Matrix) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[int][][]int(m)); err != nil {
		return fmt.Errorf("traffic: encode yaml: %w", err)
	}

	return enc.Close()
}
