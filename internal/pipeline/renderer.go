package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkarlsen/fnoltriage/internal/model"
)

// Renderer persists triage reports as JSON and prints reviewer-friendly
// summaries.
type Renderer struct {
	outputDir string
	pretty    bool
}

// NewRenderer creates a renderer writing per-document reports under
// outputDir.
func NewRenderer(outputDir string, pretty bool) *Renderer {
	return &Renderer{outputDir: outputDir, pretty: pretty}
}

// JSON serializes a report.
func (r *Renderer) JSON(report *model.Report) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// WriteJSON persists a report as <stem>_output.json under the output
// directory and returns the written path.
func (r *Renderer) WriteJSON(report *model.Report) (string, error) {
	data, err := r.JSON(report)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	stem := strings.TrimSuffix(report.File, filepath.Ext(report.File))
	path := filepath.Join(r.outputDir, stem+"_output.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return path, nil
}

// RenderSummary prints a one-screen summary of a report.
func (r *Renderer) RenderSummary(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "%s: %s\n", report.File, report.RecommendedRoute)
	fmt.Fprintf(w, "  %s\n", report.Reasoning)
	if len(report.MissingFields) > 0 {
		fmt.Fprintf(w, "  missing fields: %s\n", strings.Join(report.MissingFields, ", "))
	}
	for _, issue := range report.Inconsistencies {
		fmt.Fprintf(w, "  inconsistency: %s\n", issue)
	}
}
