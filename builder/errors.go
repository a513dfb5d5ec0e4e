package builder

import "errors"

// Sentinel errors. Constructors wrap them with their method name; callers
// branch with errors.Is.
var (
	// ErrTooFewVertices indicates that a size parameter is below the minimum
	// of the requested constructor.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrTooManyEdges indicates that GNM was asked for more edges than the
	// simple graph on n vertices can hold.
	ErrTooManyEdges = errors.New("builder: too many edges")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates that a stochastic constructor ran without
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or another failure
	// that leaves the topology incomplete.
	ErrConstructFailed = errors.New("builder: construction failed")
)
