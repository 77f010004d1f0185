package loader

import (
	"os"

	"github.com/pkarlsen/fnoltriage/internal/cache"
	"go.uber.org/zap"
)

// TextExtractor turns a document file into plain text. Implementations
// never fail: an unreadable document yields an empty string, which the
// pipeline treats as the unreadable-document case.
type TextExtractor interface {
	ExtractText(path string) string
	SupportedFormats() []string
}

// Registry maps document formats to their text extractors and fronts them
// with an optional extracted-text cache keyed by path and mtime.
type Registry struct {
	extractors map[string]TextExtractor
	cache      cache.Cache
	logger     *zap.Logger
}

// NewRegistry creates a registry with the built-in PDF and TXT extractors
// registered. c may be nil to disable caching.
func NewRegistry(c cache.Cache, logger *zap.Logger) *Registry {
	r := &Registry{
		extractors: make(map[string]TextExtractor),
		cache:      c,
		logger:     logger,
	}
	for _, e := range []TextExtractor{&PDFTextExtractor{logger: logger}, &PlainTextExtractor{logger: logger}} {
		for _, f := range e.SupportedFormats() {
			r.extractors[f] = e
		}
	}
	return r
}

// Register adds or replaces the extractor for a format.
func (r *Registry) Register(format string, e TextExtractor) {
	r.extractors[format] = e
}

// Text returns the extracted plain text for a document, consulting the
// cache first. An unknown format or unreadable file yields an empty string.
func (r *Registry) Text(doc Document) string {
	e, ok := r.extractors[doc.Format]
	if !ok {
		r.logger.Warn("no text extractor registered", zap.String("format", doc.Format), zap.String("file", doc.Name()))
		return ""
	}

	key := ""
	if r.cache != nil {
		if info, err := os.Stat(doc.Path); err == nil {
			key = cache.Key(doc.Path, info.ModTime())
			if cached, found := r.cache.Get(key); found {
				return string(cached)
			}
		}
	}

	text := e.ExtractText(doc.Path)

	if r.cache != nil && key != "" && text != "" {
		r.cache.Set(key, []byte(text), 0)
	}

	return text
}
