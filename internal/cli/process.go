package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkarlsen/fnoltriage/internal/loader"
	"github.com/pkarlsen/fnoltriage/internal/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputDir      string
	compactJSON    bool
	noCache        bool
	processTimeout time.Duration
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <path>",
	Short: "Triage FNOL documents from a file or directory",
	Long: `Process runs the triage pipeline over a single FNOL document or
every supported document (.pdf, .txt) in a directory:
- Extract claim fields with deterministic pattern rules
- Detect missing mandatory fields
- Check the claim for internal contradictions
- Recommend a processing route with a rationale

Each document's full report is printed to stdout and persisted as
<name>_output.json under the output directory.

Example:
  fnoltriage process claims/fnol_0142.pdf
  fnoltriage process ./claims --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&outputDir, "output-dir", "outputs", "output directory for JSON reports")
	processCmd.Flags().BoolVar(&compactJSON, "compact", false, "write compact JSON instead of indented")
	processCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the extracted-text cache")
	processCmd.Flags().DurationVar(&processTimeout, "timeout", 2*time.Minute, "overall processing timeout")
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.Output.Dir = outputDir
	cfg.Output.Pretty = !compactJSON
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	documents, err := loader.LoadDocuments(args[0])
	if err != nil {
		return err
	}

	logger.Info("processing documents", zap.Int("count", len(documents)))

	p := pipeline.New(cfg, logger)

	for _, doc := range documents {
		report := p.ProcessDocument(ctx, doc)

		// Reviewer-facing output on stdout, full report on disk.
		data, err := p.Renderer().JSON(report)
		if err != nil {
			return fmt.Errorf("marshal report for %s: %w", doc.Name(), err)
		}
		fmt.Println(string(data))

		path, err := p.Renderer().WriteJSON(report)
		if err != nil {
			return fmt.Errorf("persist report for %s: %w", doc.Name(), err)
		}
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote report: %s\n", path)
		}
	}

	return nil
}
