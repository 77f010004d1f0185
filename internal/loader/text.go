package loader

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// PlainTextExtractor reads .txt FNOL files.
type PlainTextExtractor struct {
	logger *zap.Logger
}

func (e *PlainTextExtractor) SupportedFormats() []string { return []string{"txt"} }

func (e *PlainTextExtractor) ExtractText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		e.logger.Warn("txt extraction failed", zap.String("file", path), zap.Error(err))
		return ""
	}
	return strings.TrimSpace(string(data))
}
