package evaluation

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/bcapprox/centrality"
)

// writeFile creates path (and its directory) and streams fn's output into it.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("evaluation: create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("evaluation: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		return err
	}

	return bw.Flush()
}

// formatThreshold prints c the way directory and file names use it: 2, 2.5.
func formatThreshold(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}

// ResultDir is the directory holding every repetition of one
// (normalization, c) pair: <root>/Results_<norm>_c<c>.
func ResultDir(root string, norm centrality.Normalization, c float64) string {
	return filepath.Join(root, fmt.Sprintf("Results_%s_c%s", norm, formatThreshold(c)))
}

// ResultPath names the result file of one repetition:
// <root>/Results_<norm>_c<c>/<graph>_results_c<c>_rep<rep>.txt.
func ResultPath(root, graph string, norm centrality.Normalization, c float64, rep int) string {
	return filepath.Join(ResultDir(root, norm, c), fmt.Sprintf("%s_results_c%s_rep%d.txt", graph, formatThreshold(c), rep))
}

// AveragePath names the averages file of one (graph, normalization, c):
// <root>/<graph>_averaged_<norm>_c<c>.txt.
func AveragePath(root, graph string, norm centrality.Normalization, c float64) string {
	return filepath.Join(root, fmt.Sprintf("%s_averaged_%s_c%s.txt", graph, norm, formatThreshold(c)))
}
