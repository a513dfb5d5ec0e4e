package evaluation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Header columns of the ground-truth file.
const (
	groundTruthNodeCol  = "Node"
	groundTruthValueCol = "BetweennessCentrality"
)

// Sentinel errors for file parsing.
var (
	// ErrMalformedHeader is returned when a file does not start with the
	// expected header.
	ErrMalformedHeader = errors.New("evaluation: malformed header")

	// ErrMalformedRow is returned for a row with the wrong shape or an
	// unparsable number.
	ErrMalformedRow = errors.New("evaluation: malformed row")
)

// GroundTruth holds exact betweenness values in file order.
type GroundTruth struct {
	Nodes  []string
	Values map[string]float64
}

// NewGroundTruth builds a GroundTruth from values, ordering nodes by ID.
func NewGroundTruth(values map[string]float64) *GroundTruth {
	nodes := make([]string, 0, len(values))
	for id := range values {
		nodes = append(nodes, id)
	}
	sort.Strings(nodes)

	return &GroundTruth{Nodes: nodes, Values: values}
}

// ReadGroundTruth parses a "Node\tBetweennessCentrality" file.
func ReadGroundTruth(r io.Reader) (*GroundTruth, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = 2
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	if strings.TrimSpace(header[0]) != groundTruthNodeCol || strings.TrimSpace(header[1]) != groundTruthValueCol {
		return nil, fmt.Errorf("%w: got %q", ErrMalformedHeader, strings.Join(header, "\t"))
	}

	gt := &GroundTruth{Values: make(map[string]float64)}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		node := strings.TrimSpace(rec[0])
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: node %q: %v", ErrMalformedRow, node, err)
		}
		if _, dup := gt.Values[node]; !dup {
			gt.Nodes = append(gt.Nodes, node)
		}
		gt.Values[node] = v
	}

	return gt, nil
}

// LoadGroundTruth reads a ground-truth file from path.
func LoadGroundTruth(path string) (*GroundTruth, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("evaluation: open ground truth: %w", err)
	}
	defer f.Close()

	return ReadGroundTruth(f)
}

// WriteGroundTruth writes gt in file order.
func WriteGroundTruth(w io.Writer, gt *GroundTruth) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write([]string{groundTruthNodeCol, groundTruthValueCol}); err != nil {
		return err
	}
	for _, id := range gt.Nodes {
		if err := cw.Write([]string{id, formatFloat(gt.Values[id])}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// SaveGroundTruth writes gt to path, creating parent directories.
func SaveGroundTruth(path string, gt *GroundTruth) error {
	return writeFile(path, func(w io.Writer) error { return WriteGroundTruth(w, gt) })
}

// TopK returns the k vertices with the largest values, ties broken by ID.
// k ≤ 0 or k > len(Nodes) returns every vertex.
//
// Complexity: O(V log V).
func (gt *GroundTruth) TopK(k int) []string {
	nodes := append([]string(nil), gt.Nodes...)
	sort.SliceStable(nodes, func(i, j int) bool {
		vi, vj := gt.Values[nodes[i]], gt.Values[nodes[j]]
		if vi != vj {
			return vi > vj
		}

		return nodes[i] < nodes[j]
	})
	if k > 0 && k < len(nodes) {
		nodes = nodes[:k]
	}

	return nodes
}

// formatFloat prints the shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
