// SPDX-License-Identifier: MIT

package topology

// Option customizes a layout constructor by mutating its config before the
// instance is assembled. Option constructors validate and panic on
// meaningless inputs; constructors themselves never panic.
type Option func(*layoutConfig)

// layoutConfig is the single source of truth for constructor knobs.
type layoutConfig struct {
	transmitters int // TR[i] for every node
	receivers    int // RR[j] for every node
	capacity     int // Pw entry for every fiber/wavelength the layout emits
}

// Deterministic defaults.
const (
	defaultTransmitters = 1
	defaultReceivers    = 1
	defaultCapacity     = 1
)

// WithTransmitters sets TR[i]=k for every node. Panics on k < 0.
func WithTransmitters(k int) Option {
	if k < 0 {
		panic("topology: WithTransmitters(k<0)")
	}
	return func(c *layoutConfig) { c.transmitters = k }
}

// WithReceivers sets RR[j]=k for every node. Panics on k < 0.
func WithReceivers(k int) Option {
	if k < 0 {
		panic("topology: WithReceivers(k<0)")
	}
	return func(c *layoutConfig) { c.receivers = k }
}

// WithTransceivers sets both TR and RR to k.
func WithTransceivers(k int) Option {
	if k < 0 {
		panic("topology: WithTransceivers(k<0)")
	}
	return func(c *layoutConfig) {
		c.transmitters = k
		c.receivers = k
	}
}

// WithFiberCapacity sets the per-wavelength capacity of every emitted
// fiber. Panics on c < 0.
func WithFiberCapacity(capacity int) Option {
	if capacity < 0 {
		panic("topology: WithFiberCapacity(c<0)")
	}
	return func(c *layoutConfig) { c.capacity = capacity }
}

// newLayoutConfig applies opts in order; later options override earlier ones.
func newLayoutConfig(opts ...Option) layoutConfig {
	cfg := layoutConfig{
		transmitters: defaultTransmitters,
		receivers:    defaultReceivers,
		capacity:     defaultCapacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
