package centrality

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Sentinel errors for estimator construction and execution.
var (
	// ErrNilGraph is returned when NewEstimator receives a nil graph.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrNilIndex is returned when NewEstimator receives a nil index.
	ErrNilIndex = errors.New("centrality: index is nil")

	// ErrUnknownTarget is returned when a target vertex is not in the graph.
	ErrUnknownTarget = errors.New("centrality: unknown target vertex")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")

	// ErrUnknownMode is returned by ParseMode for an unrecognized name.
	ErrUnknownMode = errors.New("centrality: unknown contribution mode")

	// ErrUnknownNormalization is returned by ParseNormalization for an
	// unrecognized name.
	ErrUnknownNormalization = errors.New("centrality: unknown normalization")
)

// Mode selects how one sample's contribution toward the target is computed.
type Mode int

const (
	// ModeDependency is the sigma-weighted Brandes dependency of the target.
	ModeDependency Mode = iota

	// ModePathCount counts targets whose stored path passes through the
	// target vertex. It ignores equal-cost alternatives and is biased; it
	// exists as an explicitly requested fast mode only.
	ModePathCount
)

// String returns the configuration name of m.
func (m Mode) String() string {
	switch m {
	case ModeDependency:
		return "dependency"
	case ModePathCount:
		return "path_count"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a configuration name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dependency":
		return ModeDependency, nil
	case "path_count", "pathcount":
		return ModePathCount, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Normalization names one scaling convention of the Normalizer.
type Normalization int

const (
	// NormRaw is n·S/k.
	NormRaw Normalization = iota

	// NormFallingFactorial is S/((n-1)(n-2)k).
	NormFallingFactorial

	// NormProductForm is S/∏_{i=1..k}(n-i).
	NormProductForm
)

// Normalizations lists every convention in reporting order.
var Normalizations = []Normalization{NormRaw, NormFallingFactorial, NormProductForm}

// String returns the configuration name of nz.
func (nz Normalization) String() string {
	switch nz {
	case NormRaw:
		return "raw"
	case NormFallingFactorial:
		return "falling_factorial"
	case NormProductForm:
		return "product_form"
	default:
		return fmt.Sprintf("Normalization(%d)", int(nz))
	}
}

// ParseNormalization maps a configuration name to the conventions it selects.
// "all" selects every convention.
func ParseNormalization(s string) ([]Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return Normalizations, nil
	case "raw":
		return []Normalization{NormRaw}, nil
	case "falling_factorial":
		return []Normalization{NormFallingFactorial}, nil
	case "product_form":
		return []Normalization{NormProductForm}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNormalization, s)
	}
}

// Outcome tells whether a target's sampling loop reached its threshold.
type Outcome int

const (
	// Converged means the accumulated sum reached c·n, or the target was
	// short-circuited to an exact zero.
	Converged Outcome = iota

	// DidNotConverge means MaxSamples was exhausted first. The Result still
	// carries the partial estimate.
	DidNotConverge
)

// String returns a lower-case label for o.
func (o Outcome) String() string {
	if o == DidNotConverge {
		return "did_not_converge"
	}

	return "converged"
}

// Estimates holds every normalization of one (S, k, n) triple.
type Estimates struct {
	Raw              float64
	FallingFactorial float64
	ProductForm      float64
}

// Value returns the estimate under nz, or NaN for an unknown convention.
func (e Estimates) Value(nz Normalization) float64 {
	switch nz {
	case NormRaw:
		return e.Raw
	case NormFallingFactorial:
		return e.FallingFactorial
	case NormProductForm:
		return e.ProductForm
	default:
		return math.NaN()
	}
}

// Result is the finalized estimation state of one target vertex.
type Result struct {
	Node   string
	Degree int

	// Sum is the accumulated contribution S; non-decreasing while sampling.
	Sum float64

	// Samples is k, the number of loop iterations.
	Samples uint64

	// SSPCount counts shortest-path tree requests made for this target,
	// whether the index served them from cache or not.
	SSPCount uint64

	// Threshold is c·n for this run.
	Threshold float64

	Outcome Outcome

	// ShortCircuited is set when degree ≤ 1 fixed the estimate at zero
	// without sampling.
	ShortCircuited bool

	Estimates Estimates
	Elapsed   time.Duration
}
