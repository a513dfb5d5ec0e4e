package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/bcapprox/core"
)

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".edges", ".el", ".tsv", ".edgelist":
		return FormatEdgeList
	case ".mtx":
		return FormatMatrixMarket
	case ".graphml", ".xml":
		return FormatGraphML
	case ".json":
		return FormatJSON
	default:
		return FormatUnknown
	}
}

// Read parses r in the given format.
func Read(r io.Reader, format Format, opts ...Option) (*core.Graph, error) {
	switch format {
	case FormatEdgeList:
		return ReadEdgeList(r, opts...)
	case FormatMatrixMarket:
		return ReadMatrixMarket(r, opts...)
	case FormatGraphML:
		return ReadGraphML(r, opts...)
	case FormatJSON:
		return ReadNodeLinkJSON(r, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// Load opens path and parses it in the format implied by its extension.
// The returned graph is frozen.
func Load(path string, opts ...Option) (*core.Graph, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f, format, opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", filepath.Base(path), err)
	}

	return g, nil
}

// GraphName is the file name of path without directory or extension, the
// name used for ground-truth and result files.
func GraphName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		return base[:i]
	}

	return base
}
