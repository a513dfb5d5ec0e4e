// Package config loads the run configuration for the bcapprox command.
//
// Values are populated from .bcapprox.yaml, BCAPPROX_* environment
// variables and CLI flags, all through viper. Load applies the built-in
// defaults for anything left unset and validates the result.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/bcapprox/centrality"
)

// EnvPrefix is the prefix of environment overrides (BCAPPROX_MAX_SAMPLES).
const EnvPrefix = "BCAPPROX"

// ErrInvalid is wrapped by every validation failure of Load.
var ErrInvalid = errors.New("config: invalid configuration")

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `mapstructure:"level"`
	Format        string `mapstructure:"format"` // text|json
	IncludeCaller bool   `mapstructure:"include_caller"`
}

// Config holds all runtime configuration of an evaluation run.
type Config struct {
	// Inputs and outputs.
	GroundTruthDir string `mapstructure:"ground_truth_dir"`
	OutputDir      string `mapstructure:"output_dir"`
	AverageDir     string `mapstructure:"average_dir"`
	MetricsFile    string `mapstructure:"metrics_file"`

	// Estimation.
	Thresholds    []float64 `mapstructure:"thresholds"`
	MaxSamples    uint64    `mapstructure:"max_samples"`
	Normalization string    `mapstructure:"normalization"`
	Mode          string    `mapstructure:"mode"`
	Seed          int64     `mapstructure:"seed"`
	Workers       int       `mapstructure:"workers"`

	// Experiment shape.
	TopK        int  `mapstructure:"top_k"`
	Repetitions int  `mapstructure:"repetitions"`
	Weighted    bool `mapstructure:"weighted"`
	Directed    bool `mapstructure:"directed"`

	Log LoggingConfig `mapstructure:"log"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("ground_truth_dir", "BetweennessCentrality")
	v.SetDefault("output_dir", "Results")
	v.SetDefault("average_dir", "Averages")
	v.SetDefault("metrics_file", "")
	v.SetDefault("thresholds", []float64{2, 3, 4, 5})
	v.SetDefault("max_samples", centrality.DefaultMaxSamples)
	v.SetDefault("normalization", "all")
	v.SetDefault("mode", centrality.ModeDependency.String())
	v.SetDefault("seed", centrality.DefaultSeed)
	v.SetDefault("workers", centrality.DefaultWorkers)
	v.SetDefault("top_k", 30)
	v.SetDefault("repetitions", 5)
	v.SetDefault("weighted", false)
	v.SetDefault("directed", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.include_caller", false)
}

// Load reads configuration from the global viper instance.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration from v, applying defaults for any values not
// set by config file, environment or flags.
func LoadFrom(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ConfigureEnv makes v read BCAPPROX_* variables, with nested keys mapped
// as log.level → BCAPPROX_LOG_LEVEL.
func ConfigureEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Validate checks ranges and parses the enumerated names.
func (c Config) Validate() error {
	var errs []error
	if len(c.Thresholds) == 0 {
		errs = append(errs, errors.New("thresholds must not be empty"))
	}
	for _, th := range c.Thresholds {
		if !(th > 0) {
			errs = append(errs, fmt.Errorf("threshold must be positive, got %g", th))
		}
	}
	if c.MaxSamples == 0 {
		errs = append(errs, errors.New("max_samples must be positive"))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if c.TopK < 0 {
		errs = append(errs, fmt.Errorf("top_k must be non-negative, got %d", c.TopK))
	}
	if c.Repetitions < 1 {
		errs = append(errs, fmt.Errorf("repetitions must be at least 1, got %d", c.Repetitions))
	}
	if _, err := c.Normalizations(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ContributionMode(); err != nil {
		errs = append(errs, err)
	}
	if f := strings.ToLower(c.Log.Format); f != "" && f != "text" && f != "json" {
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}

// Normalizations parses the normalization setting.
func (c Config) Normalizations() ([]centrality.Normalization, error) {
	return centrality.ParseNormalization(c.Normalization)
}

// ContributionMode parses the mode setting.
func (c Config) ContributionMode() (centrality.Mode, error) {
	return centrality.ParseMode(c.Mode)
}
