// Package ingestion extracts plain text from uploaded resume documents. The
// evaluation core only ever sees the extracted, lowercased text.
package ingestion

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat indicates an upload with an extension the service does
// not accept.
var ErrUnsupportedFormat = errors.New("unsupported resume format: only .pdf and .txt are accepted")

// ExtractText returns the lowercase text content of an uploaded resume.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := extractPDFText(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract PDF text: %w", err)
		}
		return strings.ToLower(text), nil
	case ".txt":
		return strings.ToLower(string(data)), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// extractPDFText concatenates the plain text of every readable page.
// Unreadable pages are skipped rather than failing the whole document.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
		buf.WriteByte('\n')
	}

	return buf.String(), nil
}
