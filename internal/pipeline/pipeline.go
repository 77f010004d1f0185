// Package pipeline orchestrates the triage of FNOL documents:
// text extraction, field extraction, consistency checking, routing and
// report rendering.
package pipeline

import (
	"context"
	"strings"

	"github.com/pkarlsen/fnoltriage/internal/cache"
	"github.com/pkarlsen/fnoltriage/internal/extract"
	"github.com/pkarlsen/fnoltriage/internal/loader"
	"github.com/pkarlsen/fnoltriage/internal/model"
	"github.com/pkarlsen/fnoltriage/internal/route"
	"github.com/pkarlsen/fnoltriage/internal/validate"
	"go.uber.org/zap"
)

// unreadableMessage and unreadableReasoning are the canned Manual Review
// result for documents with no extractable text.
const (
	unreadableMessage   = "Document could not be parsed or contains no extractable text"
	unreadableReasoning = "Document is unreadable or has no extractable text. Manual intervention required."
)

// Pipeline wires the stages together. The core stages are stateless across
// documents, so one Pipeline can process documents concurrently.
type Pipeline struct {
	registry  *loader.Registry
	extractor *extract.FieldExtractor
	checker   *validate.Checker
	renderer  *Renderer
	logger    *zap.Logger
	config    *model.Config
}

// New creates a pipeline from the given configuration.
func New(cfg *model.Config, logger *zap.Logger) *Pipeline {
	var textCache cache.Cache
	if cfg.Cache.Enabled {
		textCache = cache.NewMemory(cfg.Cache.TTL, cfg.Cache.TTL)
	}

	return &Pipeline{
		registry:  loader.NewRegistry(textCache, logger),
		extractor: extract.NewFieldExtractor(cfg.Extractor.Credential),
		checker:   validate.NewChecker(),
		renderer:  NewRenderer(cfg.Output.Dir, cfg.Output.Pretty),
		logger:    logger,
		config:    cfg,
	}
}

// Registry exposes the text-extractor registry, mainly so callers can
// register replacement extractors.
func (p *Pipeline) Registry() *loader.Registry {
	return p.registry
}

// Renderer returns the report renderer bound to this pipeline's output
// configuration.
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// ProcessText runs the core triage over already-extracted document text:
// field extraction, missing-field detection, consistency checking and
// routing. It is a total function: any text, including garbage, produces
// a success report.
func (p *Pipeline) ProcessText(text, fileName string) *model.Report {
	claim := p.extractor.Extract(text)
	missing := route.FindMissingFields(claim)
	inconsistencies := p.checker.Check(claim)
	recommendedRoute, reasoning := route.DetermineRoute(claim, missing, inconsistencies)

	p.logger.Debug("claim triaged",
		zap.String("file", fileName),
		zap.String("route", recommendedRoute),
		zap.Int("missing_fields", len(missing)),
		zap.Int("inconsistencies", len(inconsistencies)),
	)

	return &model.Report{
		Status:           model.StatusSuccess,
		File:             fileName,
		ExtractedFields:  claim,
		MissingFields:    missing,
		Inconsistencies:  inconsistencies,
		RecommendedRoute: recommendedRoute,
		Reasoning:        reasoning,
	}
}

// ProcessDocument extracts text from a document and triages it. Documents
// with no extractable text are routed to Manual Review without invoking
// the field extractor.
func (p *Pipeline) ProcessDocument(ctx context.Context, doc loader.Document) *model.Report {
	if err := ctx.Err(); err != nil {
		return unreadableReport(doc.Name(), "processing cancelled: "+err.Error())
	}

	text := p.registry.Text(doc)
	if strings.TrimSpace(text) == "" {
		p.logger.Warn("document unreadable", zap.String("file", doc.Name()))
		return unreadableReport(doc.Name(), unreadableMessage)
	}

	return p.ProcessText(text, doc.Name())
}

func unreadableReport(fileName, message string) *model.Report {
	return &model.Report{
		Status:           model.StatusError,
		File:             fileName,
		Message:          message,
		MissingFields:    []string{},
		Inconsistencies:  []string{},
		RecommendedRoute: route.RouteManualReview,
		Reasoning:        unreadableReasoning,
	}
}
