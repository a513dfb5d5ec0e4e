package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bcapprox/centrality"
	"github.com/katalvlaran/bcapprox/config"
	"github.com/katalvlaran/bcapprox/core"
	"github.com/katalvlaran/bcapprox/evaluation"
	"github.com/katalvlaran/bcapprox/loader"
	"github.com/katalvlaran/bcapprox/metrics"
	"github.com/katalvlaran/bcapprox/pathindex"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <graph-file-or-dir>...",
	Short: "Estimate betweenness of the top-k ground-truth vertices",
	Long: "For every graph file (directories are scanned for known graph formats) the " +
		"top-k vertices by ground-truth betweenness are estimated for each threshold " +
		"and repetition. One result file is written per normalization.",
	Args: cobra.MinimumNArgs(1),
	RunE: runEstimate,
}

func init() {
	f := estimateCmd.Flags()
	f.StringSlice("thresholds", []string{"2", "3", "4", "5"}, "sampling thresholds c")
	f.Uint64("max-samples", centrality.DefaultMaxSamples, "per-vertex sample cap")
	f.String("normalization", "all", "raw, falling_factorial, product_form or all")
	f.String("mode", "dependency", "contribution mode: dependency or path_count")
	f.Int64("seed", centrality.DefaultSeed, "parent random seed")
	f.Int("workers", centrality.DefaultWorkers, "vertices estimated concurrently")
	f.Int("top-k", 30, "number of ground-truth vertices to estimate (0 = all)")
	f.Int("repetitions", 5, "repetitions per threshold")
	f.Bool("weighted", false, "read edge weights and use weighted shortest paths")
	f.Bool("directed", false, "treat edge lists and Matrix Market files as directed")
	f.String("ground-truth-dir", "BetweennessCentrality", "directory of betweenness_centrality_<graph>.txt files")
	f.String("output-dir", "Results", "root directory of result files")
	bindFlags(f, map[string]string{
		"thresholds":       "thresholds",
		"max_samples":      "max-samples",
		"normalization":    "normalization",
		"mode":             "mode",
		"seed":             "seed",
		"workers":          "workers",
		"top_k":            "top-k",
		"repetitions":      "repetitions",
		"weighted":         "weighted",
		"directed":         "directed",
		"ground_truth_dir": "ground-truth-dir",
		"output_dir":       "output-dir",
	})

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	paths, err := graphFiles(args)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	r := &runner{cfg: cfg, log: log, metrics: metrics.New(reg)}
	if r.norms, err = cfg.Normalizations(); err != nil {
		return err
	}
	if r.mode, err = cfg.ContributionMode(); err != nil {
		return err
	}

	for _, path := range paths {
		if err := r.graph(cmd.Context(), path); err != nil {
			return err
		}
	}

	return writeMetrics(cfg.MetricsFile, reg, log)
}

// runner carries the per-command state of estimate.
type runner struct {
	cfg     config.Config
	log     *slog.Logger
	metrics *metrics.Metrics
	norms   []centrality.Normalization
	mode    centrality.Mode
}

// graph runs every (threshold, repetition) pair on one graph file.
func (r *runner) graph(ctx context.Context, path string) error {
	name := loader.GraphName(path)
	log := r.log.With("graph", name)

	opts := []loader.Option{loader.WithLogger(log)}
	if r.cfg.Weighted {
		opts = append(opts, loader.WithWeighted())
	}
	if r.cfg.Directed {
		opts = append(opts, loader.WithDirected(true))
	}
	g, err := loader.Load(path, opts...)
	if err != nil {
		return err
	}

	gt, err := evaluation.LoadGroundTruth(groundTruthPath(r.cfg.GroundTruthDir, name))
	if err != nil {
		return err
	}
	targets := presentTargets(g, gt.TopK(r.cfg.TopK), log)
	log.Info("graph loaded", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "targets", len(targets))

	for _, c := range r.cfg.Thresholds {
		for rep := 0; rep < r.cfg.Repetitions; rep++ {
			if err := r.repetition(ctx, g, gt, targets, name, c, rep, log); err != nil {
				return err
			}
		}
	}

	return nil
}

// repetition estimates targets with a fresh index and writes one result file
// per normalization.
func (r *runner) repetition(ctx context.Context, g *core.Graph, gt *evaluation.GroundTruth, targets []string, name string, c float64, rep int, log *slog.Logger) error {
	ix, err := pathindex.New(g, r.searcher(g), pathindex.WithMetrics(r.metrics), pathindex.WithLogger(log))
	if err != nil {
		return err
	}
	est, err := centrality.NewEstimator(g, ix,
		centrality.WithThreshold(c),
		centrality.WithMaxSamples(r.cfg.MaxSamples),
		centrality.WithMode(r.mode),
		centrality.WithSeed(centrality.RepetitionSeed(r.cfg.Seed, rep)),
		centrality.WithWorkers(r.cfg.Workers),
		centrality.WithLogger(log),
		centrality.WithMetrics(r.metrics),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	results, err := est.Sweep(ctx, targets)
	if err != nil {
		return fmt.Errorf("estimate %s c=%g rep=%d: %w", name, c, rep, err)
	}
	elapsed := time.Since(start)

	for _, norm := range r.norms {
		report := evaluation.BuildReport(g, gt, results, norm, elapsed)
		out := evaluation.ResultPath(r.cfg.OutputDir, name, norm, c, rep)
		if err := evaluation.SaveReport(out, report); err != nil {
			return err
		}
		sum := evaluation.Summarize(report.Rows, targets)
		log.Info("repetition written",
			"c", c,
			"rep", rep,
			"normalization", norm.String(),
			"mean_error_pct", sum.MeanErrorPct,
			"rank_correlation", sum.RankCorrelation,
			"path", out,
		)
	}
	stats := ix.Stats()
	log.Debug("index stats",
		"c", c,
		"rep", rep,
		"hits", stats.Hits,
		"misses", stats.Misses,
		"traversals", stats.Traversals,
		"elapsed", elapsed,
	)

	return nil
}

func (r *runner) searcher(g *core.Graph) pathindex.Searcher {
	if r.cfg.Weighted {
		return pathindex.NewDijkstraSearcher(g, nil)
	}

	return pathindex.NewBFSSearcher(g)
}

func groundTruthPath(dir, graph string) string {
	return filepath.Join(dir, "betweenness_centrality_"+graph+".txt")
}

// presentTargets drops ground-truth vertices missing from g.
func presentTargets(g *core.Graph, top []string, log *slog.Logger) []string {
	out := make([]string, 0, len(top))
	for _, id := range top {
		if !g.HasVertex(id) {
			log.Warn("ground-truth vertex not in graph", "vertex", id)
			continue
		}
		out = append(out, id)
	}

	return out
}

// graphFiles expands directories into the graph files they contain.
func graphFiles(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		var found []string
		for _, e := range entries {
			if !e.IsDir() && loader.DetectFormat(e.Name()) != loader.FormatUnknown {
				found = append(found, filepath.Join(arg, e.Name()))
			}
		}
		sort.Strings(found)
		out = append(out, found...)
	}

	return out, nil
}

func writeMetrics(path string, reg *prometheus.Registry, log *slog.Logger) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	log.Info("metrics written", "path", path)

	return nil
}
