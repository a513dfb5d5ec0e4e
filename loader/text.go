package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bcapprox/core"
)

const mtxBanner = "%%MatrixMarket"

// ReadEdgeList parses a whitespace-separated edge list: "u v [weight]" per
// line. Blank lines and lines starting with '#' or '%' are ignored.
//
// Complexity: O(V + E).
func ReadEdgeList(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := resolve(opts)
	b := newGraphBuilder(o, o.Directed)

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") || strings.HasPrefix(fields[0], "%") {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: want \"u v [weight]\", got %q", ErrSyntax, line, sc.Text())
		}
		if err := b.edge(fields[0], fields[1], weightField(fields)); err != nil {
			return nil, fmt.Errorf("loader: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read edge list: %w", err)
	}

	return b.finish(o, FormatEdgeList), nil
}

// ReadMatrixMarket parses a Matrix Market coordinate file. Row and column
// indices become vertex IDs in canonical decimal form ("007" → "7").
//
// Complexity: O(V + E).
func ReadMatrixMarket(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := resolve(opts)
	b := newGraphBuilder(o, o.Directed)

	sc := bufio.NewScanner(r)
	sizeLinePending := false
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if line == 1 && strings.HasPrefix(text, mtxBanner) {
			if !strings.Contains(strings.ToLower(text), "coordinate") {
				return nil, fmt.Errorf("%w: line 1: only coordinate matrices are supported", ErrSyntax)
			}
			sizeLinePending = true
			continue
		}
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}
		fields := strings.Fields(text)
		if sizeLinePending {
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: line %d: size line wants \"rows cols entries\"", ErrSyntax, line)
			}
			sizeLinePending = false
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: want \"i j [value]\", got %q", ErrSyntax, line, text)
		}
		u, err1 := canonicalIndex(fields[0])
		v, err2 := canonicalIndex(fields[1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: line %d: non-integer index in %q", ErrSyntax, line, text)
		}
		if err := b.edge(u, v, weightField(fields)); err != nil {
			return nil, fmt.Errorf("loader: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read matrix market: %w", err)
	}

	return b.finish(o, FormatMatrixMarket), nil
}

func weightField(fields []string) string {
	if len(fields) > 2 {
		return fields[2]
	}

	return ""
}

func canonicalIndex(s string) (string, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n, 10), nil
}

// WriteEdgeList writes g as "u v" lines (or "u v weight" when g is weighted)
// in edge insertion order.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if g.Weighted() {
			fmt.Fprintf(bw, "%s %s %d\n", e.From, e.To, e.Weight)
			continue
		}
		fmt.Fprintf(bw, "%s %s\n", e.From, e.To)
	}

	return bw.Flush()
}
