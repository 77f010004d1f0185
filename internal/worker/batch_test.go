package worker

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkarlsen/fnoltriage/internal/loader"
	"github.com/pkarlsen/fnoltriage/internal/model"
)

// stubProcessor triages documents without touching the filesystem.
// Documents whose name contains "unreadable" get the error report shape.
type stubProcessor struct {
	calls int32
}

func (s *stubProcessor) ProcessDocument(ctx context.Context, doc loader.Document) *model.Report {
	atomic.AddInt32(&s.calls, 1)

	if strings.Contains(doc.Path, "unreadable") {
		return &model.Report{
			Status:           model.StatusError,
			File:             doc.Name(),
			Message:          "Document could not be parsed or contains no extractable text",
			MissingFields:    []string{},
			Inconsistencies:  []string{},
			RecommendedRoute: "Manual Review",
		}
	}
	return &model.Report{
		Status:           model.StatusSuccess,
		File:             doc.Name(),
		MissingFields:    []string{},
		Inconsistencies:  []string{},
		RecommendedRoute: "Fast-track",
	}
}

func TestBatchProcessor_ProcessDocuments(t *testing.T) {
	docs := []loader.Document{
		{Path: "/claims/a.txt", Format: "txt"},
		{Path: "/claims/b.pdf", Format: "pdf"},
		{Path: "/claims/unreadable.pdf", Format: "pdf"},
	}

	processor := &stubProcessor{}
	batch := NewBatchProcessor(processor, 2)
	results := batch.ProcessDocuments(context.Background(), docs)

	if len(results) != len(docs) {
		t.Fatalf("expected %d results, got %d", len(docs), len(results))
	}
	if atomic.LoadInt32(&processor.calls) != int32(len(docs)) {
		t.Errorf("expected %d processor calls, got %d", len(docs), processor.calls)
	}

	failed := 0
	for _, r := range results {
		if r.Report == nil {
			t.Fatalf("result for %s has no report", r.Doc.Name())
		}
		if r.Err() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("expected 1 unreadable document, got %d", failed)
	}
}

func TestBatchProcessor_LargeBatchCompletes(t *testing.T) {
	// Well beyond what the pool's job buffer can hold for 2 workers;
	// every document must still come back with a report.
	const workers = 2
	const count = 40

	docs := make([]loader.Document, 0, count)
	for i := 0; i < count; i++ {
		docs = append(docs, loader.Document{Path: fmt.Sprintf("/claims/claim_%03d.txt", i), Format: "txt"})
	}

	processor := &stubProcessor{}
	batch := NewBatchProcessor(processor, workers)

	done := make(chan []*DocumentResult)
	go func() { done <- batch.ProcessDocuments(context.Background(), docs) }()

	select {
	case results := <-done:
		if len(results) != count {
			t.Errorf("expected %d results, got %d", count, len(results))
		}
		if atomic.LoadInt32(&processor.calls) != count {
			t.Errorf("expected %d processor calls, got %d", count, processor.calls)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("batch deadlocked after %d of %d documents", atomic.LoadInt32(&processor.calls), count)
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	batch := NewBatchProcessor(&stubProcessor{}, 4)
	results := batch.ProcessDocuments(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestDocumentResult_Err(t *testing.T) {
	ok := &DocumentResult{Report: &model.Report{Status: model.StatusSuccess}}
	if ok.Err() != nil {
		t.Errorf("expected nil error for success report, got %v", ok.Err())
	}

	bad := &DocumentResult{Report: &model.Report{Status: model.StatusError, Message: "boom"}}
	if bad.Err() == nil || bad.Err().Error() != "boom" {
		t.Errorf("expected report message as error, got %v", bad.Err())
	}
}
