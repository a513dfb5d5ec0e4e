package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bcapprox/evaluation"
)

var averageCmd = &cobra.Command{
	Use:   "average <graph-name>...",
	Short: "Average result files across repetitions",
	Long: "For each graph name, normalization and threshold, the repetition result " +
		"files written by estimate are averaged per top-k vertex into " +
		"<average-dir>/<graph>_averaged_<normalization>_c<c>.txt.",
	Args: cobra.MinimumNArgs(1),
	RunE: runAverage,
}

func init() {
	f := averageCmd.Flags()
	f.String("average-dir", "Averages", "directory of averaged result files")
	bindFlags(f, map[string]string{"average_dir": "average-dir"})

	rootCmd.AddCommand(averageCmd)
}

func runAverage(_ *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	norms, err := cfg.Normalizations()
	if err != nil {
		return err
	}

	for _, name := range args {
		gt, err := evaluation.LoadGroundTruth(groundTruthPath(cfg.GroundTruthDir, name))
		if err != nil {
			return err
		}
		top := gt.TopK(cfg.TopK)

		for _, norm := range norms {
			for _, c := range cfg.Thresholds {
				var reports []evaluation.Report
				for rep := 0; rep < cfg.Repetitions; rep++ {
					path := evaluation.ResultPath(cfg.OutputDir, name, norm, c, rep)
					report, err := evaluation.LoadReport(path)
					if errors.Is(err, fs.ErrNotExist) {
						log.Warn("result file missing", "path", path)
						continue
					}
					if err != nil {
						return err
					}
					reports = append(reports, report)
				}
				if len(reports) == 0 {
					return fmt.Errorf("average %s %s c=%g: no result files under %s",
						name, norm, c, evaluation.ResultDir(cfg.OutputDir, norm, c))
				}

				out := evaluation.AveragePath(cfg.AverageDir, name, norm, c)
				if err := evaluation.SaveAverages(out, evaluation.AverageReports(top, reports)); err != nil {
					return err
				}
				log.Info("averages written",
					"graph", name,
					"normalization", norm.String(),
					"c", c,
					"repetitions", len(reports),
					"path", out,
				)
			}
		}
	}

	return nil
}
