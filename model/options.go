package model

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	selfDemands bool
	extensions  []Extension
}

// WithSelfDemands toggles modeling of i == j demands and m == n fibers.
// The default (true) generates them.
func WithSelfDemands(on bool) Option {
	return func(c *buildConfig) { c.selfDemands = on }
}

// WithExtension appends ext's constraints after the core families.
// Extensions run in the order given. Panics on nil.
func WithExtension(ext Extension) Option {
	if ext == nil {
		panic("model: WithExtension(nil)")
	}
	return func(c *buildConfig) { c.extensions = append(c.extensions, ext) }
}

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{selfDemands: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
