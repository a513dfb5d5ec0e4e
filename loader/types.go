package loader

import (
	"errors"
	"log/slog"
)

// Sentinel errors returned by the readers.
var (
	// ErrUnknownFormat indicates that Load could not map the file extension
	// to a reader.
	ErrUnknownFormat = errors.New("loader: unknown graph format")

	// ErrSyntax indicates a line or element that cannot be parsed.
	ErrSyntax = errors.New("loader: syntax error")

	// ErrBadWeight indicates a weight that is not a finite number of at least 0.5.
	ErrBadWeight = errors.New("loader: bad edge weight")
)

// Format identifies a graph file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatEdgeList
	FormatMatrixMarket
	FormatGraphML
	FormatJSON
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatEdgeList:
		return "edgelist"
	case FormatMatrixMarket:
		return "mtx"
	case FormatGraphML:
		return "graphml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Options configures the readers.
type Options struct {
	// Weighted keeps weight columns; otherwise they are ignored.
	Weighted bool

	// Directed builds a directed graph. GraphML and JSON files declare their
	// own direction, which wins unless ForceDirected is set.
	Directed      bool
	ForceDirected bool

	Logger *slog.Logger
}

// Option is a functional option for the readers.
type Option func(*Options)

// WithWeighted keeps edge weights.
func WithWeighted() Option {
	return func(o *Options) { o.Weighted = true }
}

// WithDirected builds a directed graph regardless of what the file declares.
func WithDirected(directed bool) Option {
	return func(o *Options) {
		o.Directed = directed
		o.ForceDirected = true
	}
}

// WithLogger sets the logger used to report skipped lines.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) Options {
	o := Options{Logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
