package evaluation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

const averageHeader = "Node\tAverage_Approximated_BC\tTotal/Numssp"

// Average summarizes one vertex across repetitions.
type Average struct {
	Node         string
	MeanApprox   float64
	StdApprox    float64 // sample standard deviation; NaN with a single repetition
	MeanSSPRatio float64 // mean NumSSP/TotalNodes
	Repetitions  int
}

// AverageReports averages the estimate and SSP ratio of each node over every
// report containing it. Nodes absent from all reports average to zero with
// Repetitions == 0.
func AverageReports(nodes []string, reports []Report) []Average {
	approx := make(map[string][]float64, len(nodes))
	ratio := make(map[string][]float64, len(nodes))
	for _, rep := range reports {
		for _, row := range rep.Rows {
			approx[row.Node] = append(approx[row.Node], row.Approx)
			ratio[row.Node] = append(ratio[row.Node], row.SSPPerNode)
		}
	}

	out := make([]Average, 0, len(nodes))
	for _, id := range nodes {
		a := Average{Node: id, Repetitions: len(approx[id])}
		if a.Repetitions > 0 {
			a.MeanApprox, a.StdApprox = stat.MeanStdDev(approx[id], nil)
			a.MeanSSPRatio = stat.Mean(ratio[id], nil)
		}
		out = append(out, a)
	}

	return out
}

// WriteAverages writes the averages file.
func WriteAverages(w io.Writer, avgs []Average) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(strings.Split(averageHeader, "\t")); err != nil {
		return err
	}
	for _, a := range avgs {
		if err := cw.Write([]string{a.Node, formatFloat(a.MeanApprox), formatFloat(a.MeanSSPRatio)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// SaveAverages writes avgs to path, creating parent directories.
func SaveAverages(path string, avgs []Average) error {
	return writeFile(path, func(w io.Writer) error { return WriteAverages(w, avgs) })
}

// ReadAverages parses an averages file. Standard deviation and repetition
// count are not stored and come back as zero.
func ReadAverages(r io.Reader) ([]Average, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = 3

	header, err := cr.Read()
	if err != nil || strings.Join(header, "\t") != averageHeader {
		return nil, fmt.Errorf("%w: averages", ErrMalformedHeader)
	}
	var out []Average
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		mean, err1 := strconv.ParseFloat(rec[1], 64)
		ratio, err2 := strconv.ParseFloat(rec[2], 64)
		if err := errors.Join(err1, err2); err != nil {
			return nil, fmt.Errorf("%w: node %q: %v", ErrMalformedRow, rec[0], err)
		}
		out = append(out, Average{Node: rec[0], MeanApprox: mean, MeanSSPRatio: ratio})
	}
}

// Summary aggregates accuracy over a set of estimated vertices.
type Summary struct {
	Targets         int
	MeanErrorPct    float64
	MaxErrorPct     float64
	RankCorrelation float64 // Spearman's rho between true and estimated values
	MeanSSPRatio    float64
}

// Summarize computes accuracy statistics over rows whose node is in targets.
// RankCorrelation is NaN with fewer than two targets or constant inputs.
func Summarize(rows []Row, targets []string) Summary {
	want := make(map[string]bool, len(targets))
	for _, id := range targets {
		want[id] = true
	}
	var truth, est, errs, ratios []float64
	for _, row := range rows {
		if !want[row.Node] {
			continue
		}
		truth = append(truth, row.TrueBC)
		est = append(est, row.Approx)
		errs = append(errs, row.ErrorPct)
		ratios = append(ratios, row.SSPPerNode)
	}

	s := Summary{Targets: len(truth), RankCorrelation: math.NaN()}
	if len(truth) == 0 {
		return s
	}
	s.MeanErrorPct = stat.Mean(errs, nil)
	s.MaxErrorPct = errs[0]
	for _, e := range errs[1:] {
		s.MaxErrorPct = math.Max(s.MaxErrorPct, e)
	}
	s.MeanSSPRatio = stat.Mean(ratios, nil)
	if len(truth) > 1 {
		s.RankCorrelation = stat.Correlation(ranks(truth), ranks(est), nil)
	}

	return s
}

// ranks returns fractional ranks (ties share their mean rank), starting at 1.
func ranks(x []float64) []float64 {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	r := make([]float64, len(x))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && x[idx[j+1]] == x[idx[i]] {
			j++
		}
		mean := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			r[idx[k]] = mean
		}
		i = j + 1
	}

	return r
}
