package loader

import (
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// PDFTextExtractor pulls plain text out of a PDF page by page. Pages that
// fail to extract are skipped; a document with no extractable text yields
// an empty string.
type PDFTextExtractor struct {
	logger *zap.Logger
}

func (e *PDFTextExtractor) SupportedFormats() []string { return []string{"pdf"} }

func (e *PDFTextExtractor) ExtractText(path string) (text string) {
	// The pdf library panics on some malformed files; an unreadable PDF
	// must surface as empty text, not a crash.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("pdf extraction panicked", zap.String("file", path), zap.Any("cause", r))
			text = ""
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		e.logger.Warn("pdf extraction failed", zap.String("file", path), zap.Error(err))
		return ""
	}
	defer func() { _ = f.Close() }()

	var chunks []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if trimmed := strings.TrimSpace(pageText); trimmed != "" {
			chunks = append(chunks, trimmed)
		}
	}

	return strings.TrimSpace(strings.Join(chunks, "\n"))
}
