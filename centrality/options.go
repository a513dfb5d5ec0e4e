package centrality

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/bcapprox/metrics"
)

// Defaults applied by DefaultOptions.
const (
	DefaultThreshold  = 2.0
	DefaultMaxSamples = 1_000_000
	DefaultSeed       = defaultRNGSeed
	DefaultWorkers    = 1
)

// Options configures an Estimator.
//
//   - Threshold:  the multiplier c; sampling stops once S ≥ c·n. Must be > 0.
//   - MaxSamples: safety bound on k; reaching it yields DidNotConverge. Must be > 0.
//   - Mode:       contribution definition (ModeDependency by default).
//   - Seed:       parent seed of every per-target random stream; 0 means DefaultSeed.
//   - Workers:    concurrent targets in Sweep. Must be ≥ 1.
//   - OnSample:   optional hook called after every iteration with (target, S, k).
type Options struct {
	Threshold  float64
	MaxSamples uint64
	Mode       Mode
	Seed       int64
	Workers    int
	OnSample   func(target string, sum float64, samples uint64)
	Logger     *slog.Logger
	Metrics    *metrics.Metrics

	err error
}

// Option configures Options via functional arguments. An invalid Option is
// recorded and surfaces as ErrOptionViolation from NewEstimator.
type Option func(*Options)

// DefaultOptions returns the defaults listed on the constants above, a
// discarding logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Threshold:  DefaultThreshold,
		MaxSamples: DefaultMaxSamples,
		Mode:       ModeDependency,
		Seed:       DefaultSeed,
		Workers:    DefaultWorkers,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithThreshold sets c. Non-positive or non-finite values are rejected.
func WithThreshold(c float64) Option {
	return func(o *Options) {
		if !(c > 0) || math.IsInf(c, 0) {
			o.err = fmt.Errorf("%w: threshold must be a positive finite number (%v)", ErrOptionViolation, c)
			return
		}
		o.Threshold = c
	}
}

// WithMaxSamples bounds the sampling loop of each target.
func WithMaxSamples(k uint64) Option {
	return func(o *Options) {
		if k == 0 {
			o.err = fmt.Errorf("%w: max samples must be positive", ErrOptionViolation)
			return
		}
		o.MaxSamples = k
	}
}

// WithMode selects the contribution definition.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != ModeDependency && m != ModePathCount {
			o.err = fmt.Errorf("%w: %w: %v", ErrOptionViolation, ErrUnknownMode, m)
			return
		}
		o.Mode = m
	}
}

// WithSeed sets the parent seed of the per-target random streams.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers sets how many targets Sweep estimates concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnSample registers a per-iteration hook. It runs on the goroutine
// estimating the target and must be safe for concurrent use under Sweep.
func WithOnSample(fn func(target string, sum float64, samples uint64)) Option {
	return func(o *Options) {
		o.OnSample = fn
	}
}

// WithLogger sets the logger. Completion is logged at Debug and
// DidNotConverge at Warn.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches Prometheus instruments.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}
