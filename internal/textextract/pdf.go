package textextract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/planetafiscal/docs-extractor/internal/common"
)

// readPDF concatenates the plain text of every page, joined by newlines.
// Pages the parser cannot decode are skipped.
func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open pdf %s: %v", common.ErrUnreadableEncoding, filepath.Base(path), err)
	}
	defer f.Close()

	var pages []string
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text != "" {
			pages = append(pages, text)
		}
	}

	content := strings.Join(pages, "\n")
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: the PDF has no extractable text", common.ErrEmptyContent)
	}
	return content, nil
}
