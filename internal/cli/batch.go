package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/pkarlsen/fnoltriage/internal/loader"
	"github.com/pkarlsen/fnoltriage/internal/pipeline"
	"github.com/pkarlsen/fnoltriage/internal/worker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	concurrency  int
	batchOutDir  string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Triage a directory of FNOL documents in parallel",
	Long: `Batch triages every supported document in a directory concurrently:
- Documents are fanned out across a configurable worker count
- Each document runs the full extract/check/route pipeline independently
- Individual JSON reports land in the output directory
- A route summary is printed at the end

Example:
  fnoltriage batch ./claims
  fnoltriage batch ./claims --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchOutDir, "output-dir", "outputs", "output directory for JSON reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the extracted-text cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.Output.Dir = batchOutDir
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	documents, err := loader.LoadDocuments(args[0])
	if err != nil {
		return err
	}

	logger.Info("starting batch",
		zap.Int("documents", len(documents)),
		zap.Int("workers", cfg.Concurrency.Workers),
	)

	p := pipeline.New(cfg, logger)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)
	results := processor.ProcessDocuments(ctx, documents)

	failed := 0
	routeCounts := map[string]int{}
	for _, result := range results {
		if result.Err() != nil {
			failed++
		}
		routeCounts[result.Report.RecommendedRoute]++

		if _, err := p.Renderer().WriteJSON(result.Report); err != nil {
			logger.Error("persist report failed", zap.String("file", result.Doc.Name()), zap.Error(err))
			continue
		}
		p.Renderer().RenderSummary(os.Stdout, result.Report)
	}

	fmt.Printf("\nProcessed %d documents (%d unreadable) with %d workers\n",
		len(results), failed, cfg.Concurrency.Workers)

	routes := make([]string, 0, len(routeCounts))
	for r := range routeCounts {
		routes = append(routes, r)
	}
	sort.Strings(routes)
	for _, r := range routes {
		fmt.Printf("  %-20s %d\n", r, routeCounts[r])
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	return nil
}
