// Package extract pulls plain text out of uploaded document containers.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Kind string

const (
	KindPDF Kind = "pdf"
	KindTXT Kind = "txt"
)

// KindForFilename reports the extraction kind for a filename. The extension
// check is case-insensitive; anything but .pdf and .txt is unsupported.
func KindForFilename(name string) (Kind, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF, true
	case ".txt":
		return KindTXT, true
	default:
		return "", false
	}
}

// Extractor turns a stored file into plain text.
type Extractor interface {
	Extract(path string, kind Kind) (string, error)
}

// FileExtractor reads documents from the local filesystem.
type FileExtractor struct{}

var _ Extractor = (*FileExtractor)(nil)

func New() *FileExtractor {
	return &FileExtractor{}
}

func (e *FileExtractor) Extract(path string, kind Kind) (string, error) {
	switch kind {
	case KindPDF:
		return extractPDF(path)
	case KindTXT:
		return extractTXT(path)
	default:
		return "", fmt.Errorf("unsupported document kind: %s", kind)
	}
}
