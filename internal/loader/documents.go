// Package loader enumerates FNOL documents on disk and turns them into
// plain text for the extraction pipeline.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Input-path failures are fatal to a run and reported before any claim
// processing starts.
var (
	ErrPathNotFound     = errors.New("input path does not exist")
	ErrUnsupportedType  = errors.New("unsupported file type, only PDF and TXT are allowed")
	ErrNoDocumentsFound = errors.New("no valid FNOL documents found")
)

// supportedExtensions maps a lower-cased file extension to the format name
// the extractor registry is keyed by.
var supportedExtensions = map[string]string{
	".pdf": "pdf",
	".txt": "txt",
}

// Document is a handle to a single FNOL file on disk.
type Document struct {
	Path   string
	Format string // "pdf" or "txt"
}

// Name returns the document's base file name.
func (d Document) Name() string {
	return filepath.Base(d.Path)
}

// Stem returns the file name without its extension, used to derive output
// file names.
func (d Document) Stem() string {
	name := d.Name()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// LoadDocuments accepts a file or directory path and returns the list of
// FNOL documents to process. A single file must have a supported
// extension; for a directory, unsupported entries are skipped but an empty
// result is an error.
func LoadDocuments(inputPath string) ([]Document, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, inputPath)
	}

	if !info.IsDir() {
		format, ok := supportedExtensions[strings.ToLower(filepath.Ext(inputPath))]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, inputPath)
		}
		return []Document{{Path: inputPath, Format: format}}, nil
	}

	entries, err := os.ReadDir(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", inputPath, err)
	}

	var documents []Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		format, ok := supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))]
		if !ok {
			continue
		}
		documents = append(documents, Document{
			Path:   filepath.Join(inputPath, entry.Name()),
			Format: format,
		})
	}

	if len(documents) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDocumentsFound, inputPath)
	}

	return documents, nil
}
