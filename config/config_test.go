package config_test

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bcapprox/centrality"
	"github.com/katalvlaran/bcapprox/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(viper.New())
	require.NoError(t, err)

	require.Equal(t, []float64{2, 3, 4, 5}, cfg.Thresholds)
	require.Equal(t, uint64(1_000_000), cfg.MaxSamples)
	require.Equal(t, "all", cfg.Normalization)
	require.Equal(t, "dependency", cfg.Mode)
	require.Equal(t, int64(1), cfg.Seed)
	require.Equal(t, 1, cfg.Workers)
	require.Equal(t, 30, cfg.TopK)
	require.Equal(t, 5, cfg.Repetitions)
	require.False(t, cfg.Weighted)
	require.Equal(t, "BetweennessCentrality", cfg.GroundTruthDir)
	require.Equal(t, "Results", cfg.OutputDir)
	require.Equal(t, config.LoggingConfig{Level: "info", Format: "text"}, cfg.Log)

	norms, err := cfg.Normalizations()
	require.NoError(t, err)
	require.Equal(t, centrality.Normalizations, norms)
	mode, err := cfg.ContributionMode()
	require.NoError(t, err)
	require.Equal(t, centrality.ModeDependency, mode)
}

func TestLoad_GlobalViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("top_k", 10)
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 10, cfg.TopK)
}

func TestLoad_YAML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
thresholds: [2.5, 6]
max_samples: 5000
normalization: product_form
mode: path_count
workers: 4
weighted: true
log:
  level: debug
  format: json
`)))

	cfg, err := config.LoadFrom(v)
	require.NoError(t, err)
	require.Equal(t, []float64{2.5, 6}, cfg.Thresholds)
	require.Equal(t, uint64(5000), cfg.MaxSamples)
	require.Equal(t, 4, cfg.Workers)
	require.True(t, cfg.Weighted)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)

	norms, err := cfg.Normalizations()
	require.NoError(t, err)
	require.Equal(t, []centrality.Normalization{centrality.NormProductForm}, norms)
	mode, err := cfg.ContributionMode()
	require.NoError(t, err)
	require.Equal(t, centrality.ModePathCount, mode)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BCAPPROX_SEED", "99")
	t.Setenv("BCAPPROX_REPETITIONS", "2")
	t.Setenv("BCAPPROX_LOG_LEVEL", "warn")

	v := viper.New()
	config.ConfigureEnv(v)
	cfg, err := config.LoadFrom(v)
	require.NoError(t, err)
	require.Equal(t, int64(99), cfg.Seed)
	require.Equal(t, 2, cfg.Repetitions)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]any{
		"thresholds":    []float64{2, 0},
		"max_samples":   0,
		"workers":       0,
		"repetitions":   0,
		"top_k":         -1,
		"normalization": "median",
		"mode":          "guess",
		"log.format":    "xml",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			v := viper.New()
			v.Set(key, val)
			_, err := config.LoadFrom(v)
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}
