// Package ingestion - pdf.go reads job descriptions from local PDF files.
package ingestion

import (
	"fmt"
	"strings"

	pdfreader "github.com/ledongthuc/pdf"

	"github.com/thechessguy13/resume-tailor-agent/internal/fetch"
)

// DocumentText extracts the text of every page of a PDF in order,
// concatenates it, and collapses whitespace. A document that yields no text
// at all is an error.
func DocumentText(path string) (string, error) {
	file, reader, err := pdfreader.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d of %s: %w", i, path, err)
		}
		pages = append(pages, text)
	}

	text := fetch.CollapseWhitespace(strings.Join(pages, " "))
	if text == "" {
		return "", fmt.Errorf("no text extracted from %s", path)
	}
	return text, nil
}
