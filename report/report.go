package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rwa/model"
	"github.com/katalvlaran/rwa/solver"
)

// Assignment is the value of one column.
type Assignment struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// Report is the structured outcome of one run.
type Report struct {
	RunID      string       `yaml:"run_id"`
	Status     string       `yaml:"status"`
	Objective  float64      `yaml:"objective"`
	Truncated  bool         `yaml:"truncated,omitempty"`
	Nodes      int          `yaml:"nodes"`
	Lightpaths []Lightpath  `yaml:"lightpaths,omitempty"`
	Variables  []Assignment `yaml:"variables,omitempty"`
}

// Option configures New.
type Option func(*config)

type config struct {
	runID   string
	nonZero bool
}

// WithRunID sets the report's run identifier instead of a fresh UUID.
func WithRunID(id string) Option {
	return func(c *config) { c.runID = id }
}

// NonZero keeps only assignments whose value is not zero.
func NonZero() Option {
	return func(c *config) { c.nonZero = true }
}

// New builds the report of res for m. Non-optimal results yield a report
// with status only.
func New(m *model.Model, res *solver.Result, opts ...Option) (*Report, error) {
	if res == nil {
		return nil, ErrNoValues
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.runID == "" {
		cfg.runID = uuid.New().String()
	}

	r := &Report{RunID: cfg.runID, Status: res.Status.String(), Nodes: res.Nodes}
	if res.Status != solver.Optimal {
		return r, nil
	}
	if len(res.Values) != m.NumVars() {
		return nil, fmt.Errorf("report: %d values for %d columns: %w", len(res.Values), m.NumVars(), ErrShape)
	}

	r.Objective = res.Objective
	r.Truncated = res.Truncated
	for k, v := range res.Values {
		if cfg.nonZero && v == 0 {
			continue
		}
		r.Variables = append(r.Variables, Assignment{Name: m.Name(model.VarID(k)), Value: v})
	}
	lps, err := Lightpaths(m, res)
	if err != nil {
		return nil, err
	}
	r.Lightpaths = lps

	return r, nil
}

// WriteText prints the report: the status line first, then one
// "name = value" line per assignment and the routed lightpaths.
func (r *Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Status: %s\n", r.Status)
	if r.Status == solver.Optimal.String() {
		fmt.Fprintf(bw, "Objective: %s\n", formatValue(r.Objective))
		if r.Truncated {
			fmt.Fprintln(bw, "Truncated: limit reached, optimality not proven")
		}
	}
	fmt.Fprintf(bw, "Run: %s\n", r.RunID)
	for _, a := range r.Variables {
		fmt.Fprintf(bw, "%s = %s\n", a.Name, formatValue(a.Value))
	}
	if len(r.Lightpaths) > 0 {
		fmt.Fprintln(bw, "Lightpaths:")
		for _, l := range r.Lightpaths {
			fmt.Fprintf(bw, "  %s\n", l)
		}
	}

	return bw.Flush()
}

// WriteYAML encodes the report as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}

// formatValue prints integral values without a fraction.
func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
