package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "RWA"

// Config is the complete run configuration.
type Config struct {
	// Instance is a YAML instance file; empty selects topology.Default.
	Instance    string       `mapstructure:"instance"`
	SelfDemands bool         `mapstructure:"self_demands"`
	Solver      SolverConfig `mapstructure:"solver"`
	Output      OutputConfig `mapstructure:"output"`
	Log         LogConfig    `mapstructure:"log"`
}

// SolverConfig configures solver.BranchAndBound.
type SolverConfig struct {
	TimeLimit time.Duration `mapstructure:"time_limit" validate:"min=0"`
	NodeLimit int           `mapstructure:"node_limit" validate:"min=0"`
	Tolerance float64       `mapstructure:"tolerance" validate:"gt=0,lt=0.5"`
}

// OutputConfig selects what is written where.
type OutputConfig struct {
	Format      string `mapstructure:"format" validate:"oneof=text yaml"`
	NonZero     bool   `mapstructure:"non_zero"`
	LPFile      string `mapstructure:"lp_file"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// LogConfig configures logging.New.
type LogConfig struct {
	Level       string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Development bool   `mapstructure:"development"`
}

var validate = validator.New()

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"instance":        "instance",
	"self-demands":    "self_demands",
	"time-limit":      "solver.time_limit",
	"node-limit":      "solver.node_limit",
	"tolerance":       "solver.tolerance",
	"format":          "output.format",
	"non-zero":        "output.non_zero",
	"lp-file":         "output.lp_file",
	"metrics-out":     "output.metrics_file",
	"log-level":       "log.level",
	"log-development": "log.development",
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("instance", "")
	v.SetDefault("self_demands", true)
	v.SetDefault("solver.time_limit", time.Duration(0))
	v.SetDefault("solver.node_limit", 0)
	v.SetDefault("solver.tolerance", 1e-6)
	v.SetDefault("output.format", "text")
	v.SetDefault("output.non_zero", false)
	v.SetDefault("output.lp_file", "")
	v.SetDefault("output.metrics_file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	return v
}

// RegisterFlags defines the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("instance", "", "instance YAML file (default: built-in reference instance)")
	fs.Bool("self-demands", true, "model i==j demands and m==n fibers")
	fs.Duration("time-limit", 0, "solver wall-clock limit, 0 for none")
	fs.Int("node-limit", 0, "solver node limit, 0 for none")
	fs.Float64("tolerance", 1e-6, "integrality and feasibility tolerance")
	fs.String("format", "text", "report format: text or yaml")
	fs.Bool("non-zero", false, "report only non-zero variables")
	fs.String("lp-file", "", "also write the model in LP format to this file")
	fs.String("metrics-out", "", "write Prometheus metrics in text format to this file")
	fs.String("log-level", "info", "log level: trace, debug, info, warn or error")
	fs.Bool("log-development", false, "human-readable console logs")
}

// BindFlags binds every flag RegisterFlags defined on fs to v. Flags not
// present on fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind --%s: %w", name, err)
		}
	}

	return nil
}

// Load reads file (when not empty), decodes v into a Config and validates it.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrRead, file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags and reports the first violation.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	e := verrs[0]
	switch e.Tag() {
	case "oneof":
		return fmt.Errorf("%w: %s: must be one of [%s], got %v", ErrInvalid, e.Namespace(), e.Param(), e.Value())
	case "min", "gt":
		return fmt.Errorf("%w: %s: must be at least %s, got %v", ErrInvalid, e.Namespace(), e.Param(), e.Value())
	case "lt":
		return fmt.Errorf("%w: %s: must be below %s, got %v", ErrInvalid, e.Namespace(), e.Param(), e.Value())
	default:
		return fmt.Errorf("%w: %s: failed %s", ErrInvalid, e.Namespace(), e.Tag())
	}
}
