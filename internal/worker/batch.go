package worker

import (
	"context"
	"errors"

	"github.com/pkarlsen/fnoltriage/internal/loader"
	"github.com/pkarlsen/fnoltriage/internal/model"
)

// Processor triages a single document. Satisfied by pipeline.Pipeline.
type Processor interface {
	ProcessDocument(ctx context.Context, doc loader.Document) *model.Report
}

// DocumentJob triages one document through the shared processor.
type DocumentJob struct {
	Doc       loader.Document
	Processor Processor
}

// Execute runs the triage for the job's document.
func (j *DocumentJob) Execute(ctx context.Context) Result {
	return &DocumentResult{
		Doc:    j.Doc,
		Report: j.Processor.ProcessDocument(ctx, j.Doc),
	}
}

// DocumentResult pairs a document with its triage report.
type DocumentResult struct {
	Doc    loader.Document
	Report *model.Report
}

// Err reports the document-level failure, if any. Triage itself is total;
// only unreadable or cancelled documents count as failures.
func (r *DocumentResult) Err() error {
	if r.Report != nil && r.Report.Status == model.StatusError {
		return errors.New(r.Report.Message)
	}
	return nil
}

// BatchProcessor triages many documents concurrently.
type BatchProcessor struct {
	processor   Processor
	concurrency int
}

// NewBatchProcessor creates a batch processor with the given worker count.
func NewBatchProcessor(processor Processor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
	}
}

// ProcessDocuments fans the documents out across the pool and returns one
// result per document. Result order follows job completion, not input
// order; each result carries its document.
func (b *BatchProcessor) ProcessDocuments(ctx context.Context, docs []loader.Document) []*DocumentResult {
	if len(docs) == 0 {
		return []*DocumentResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Propagate caller cancellation into the pool, without leaking the
	// watcher once the batch completes.
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			pool.Shutdown()
		case <-done:
		}
	}()

	for _, doc := range docs {
		pool.Submit(&DocumentJob{Doc: doc, Processor: b.processor})
	}

	results := pool.Wait()
	close(done)

	docResults := make([]*DocumentResult, 0, len(results))
	for _, result := range results {
		docResults = append(docResults, result.(*DocumentResult))
	}

	return docResults
}
