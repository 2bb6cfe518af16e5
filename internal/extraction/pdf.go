// Package extraction provides PDF text extraction and resume section parsing.
package extraction

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText extracts the plain text content from a PDF blob.
// Returns an empty string (and no error) for a PDF that decodes cleanly but
// contains no text layer; callers treat empty text as an extraction failure.
func ExtractText(blob []byte) (string, error) {
	if len(blob) == 0 {
		return "", &ReadError{Message: "empty file"}
	}

	reader, err := pdf.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		return "", &ReadError{Message: "could not open PDF", Cause: err}
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the document.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), nil
}
