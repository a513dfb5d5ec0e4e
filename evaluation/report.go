package evaluation

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/bcapprox/centrality"
	"github.com/katalvlaran/bcapprox/core"
)

const (
	totalNodesPrefix = "Total Nodes: "
	calcTimePrefix   = "Calculation Time (seconds): "
	reportHeader     = "Node\tDegree\tTrue_BC\tApproximated_BC\tErrorPercentage\tNumSSP\tNumSSP/TotalNodes"
	reportColumns    = 7
)

// ErrorPercentage returns |trueBC − approx| / trueBC · 100, or 0 when trueBC
// is not positive.
func ErrorPercentage(trueBC, approx float64) float64 {
	if !(trueBC > 0) {
		return 0
	}

	return math.Abs(trueBC-approx) / trueBC * 100
}

// Row is one vertex line of a result file.
type Row struct {
	Node       string
	Degree     int
	TrueBC     float64
	Approx     float64
	ErrorPct   float64
	NumSSP     uint64
	SSPPerNode float64
}

// Report is the content of one result file.
type Report struct {
	TotalNodes int
	Elapsed    time.Duration
	Rows       []Row
}

// BuildReport joins estimates with ground truth under one normalization.
// Every ground-truth vertex gets a row in file order; vertices that were not
// estimated report an estimate and SSP count of zero.
func BuildReport(g *core.Graph, gt *GroundTruth, results []centrality.Result, norm centrality.Normalization, elapsed time.Duration) Report {
	byNode := make(map[string]centrality.Result, len(results))
	for _, r := range results {
		byNode[r.Node] = r
	}

	total := g.VertexCount()
	rep := Report{TotalNodes: total, Elapsed: elapsed, Rows: make([]Row, 0, len(gt.Nodes))}
	for _, id := range gt.Nodes {
		deg, _ := g.Degree(id) // vertices missing from g report degree 0
		res := byNode[id]
		approx := res.Estimates.Value(norm)
		row := Row{
			Node:     id,
			Degree:   deg,
			TrueBC:   gt.Values[id],
			Approx:   approx,
			ErrorPct: ErrorPercentage(gt.Values[id], approx),
			NumSSP:   res.SSPCount,
		}
		if total > 0 {
			row.SSPPerNode = float64(res.SSPCount) / float64(total)
		}
		rep.Rows = append(rep.Rows, row)
	}

	return rep
}

// WriteReport writes r in result-file layout.
func WriteReport(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s%d\n", totalNodesPrefix, r.TotalNodes)
	fmt.Fprintf(bw, "%s%s\n\n", calcTimePrefix, formatFloat(r.Elapsed.Seconds()))
	fmt.Fprintln(bw, reportHeader)
	for _, row := range r.Rows {
		fmt.Fprintf(bw, "%s\t%d\t%s\t%s\t%.6f\t%d\t%.6f\n",
			row.Node, row.Degree, formatFloat(row.TrueBC), formatFloat(row.Approx),
			row.ErrorPct, row.NumSSP, row.SSPPerNode)
	}

	return bw.Flush()
}

// SaveReport writes r to path, creating parent directories.
func SaveReport(path string, r Report) error {
	return writeFile(path, func(w io.Writer) error { return WriteReport(w, r) })
}

// ReadReport parses a result file. Rows are split on any whitespace.
func ReadReport(rd io.Reader) (Report, error) {
	var rep Report
	sc := bufio.NewScanner(rd)

	line, ok := nextLine(sc)
	if !ok || !strings.HasPrefix(line, totalNodesPrefix) {
		return rep, fmt.Errorf("%w: missing %q", ErrMalformedHeader, strings.TrimSpace(totalNodesPrefix))
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, totalNodesPrefix)))
	if err != nil {
		return rep, fmt.Errorf("%w: total nodes: %v", ErrMalformedHeader, err)
	}
	rep.TotalNodes = n

	line, ok = nextLine(sc)
	if !ok || !strings.HasPrefix(line, calcTimePrefix) {
		return rep, fmt.Errorf("%w: missing calculation time", ErrMalformedHeader)
	}
	secs, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(line, calcTimePrefix)), 64)
	if err != nil {
		return rep, fmt.Errorf("%w: calculation time: %v", ErrMalformedHeader, err)
	}
	rep.Elapsed = time.Duration(secs * float64(time.Second))

	// Blank separator, then the column header.
	if line, ok = nextLine(sc); ok && strings.TrimSpace(line) == "" {
		line, ok = nextLine(sc)
	}
	if !ok || strings.Join(strings.Fields(line), "\t") != reportHeader {
		return rep, fmt.Errorf("%w: missing column header", ErrMalformedHeader)
	}

	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row, err := parseRow(fields)
		if err != nil {
			return rep, err
		}
		rep.Rows = append(rep.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return rep, fmt.Errorf("evaluation: read report: %w", err)
	}

	return rep, nil
}

// LoadReport reads a result file from path.
func LoadReport(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("evaluation: open report: %w", err)
	}
	defer f.Close()

	return ReadReport(f)
}

func nextLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}

	return sc.Text(), true
}

func parseRow(f []string) (Row, error) {
	if len(f) != reportColumns {
		return Row{}, fmt.Errorf("%w: want %d columns, got %d", ErrMalformedRow, reportColumns, len(f))
	}
	var (
		row  = Row{Node: f[0]}
		errs [6]error
	)
	row.Degree, errs[0] = strconv.Atoi(f[1])
	row.TrueBC, errs[1] = strconv.ParseFloat(f[2], 64)
	row.Approx, errs[2] = strconv.ParseFloat(f[3], 64)
	row.ErrorPct, errs[3] = strconv.ParseFloat(f[4], 64)
	row.NumSSP, errs[4] = strconv.ParseUint(f[5], 10, 64)
	row.SSPPerNode, errs[5] = strconv.ParseFloat(f[6], 64)
	for _, err := range errs {
		if err != nil {
			return Row{}, fmt.Errorf("%w: node %q: %v", ErrMalformedRow, f[0], err)
		}
	}

	return row, nil
}
