package textextract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/planetafiscal/docs-extractor/internal/common"
)

// readWorkbook flattens every sheet into text: a "--- Hoja: <name> ---"
// header per sheet, then one line per row with cells joined by " | ". Rows
// that are empty after trimming spaces and pipes are dropped.
func readWorkbook(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: open workbook %s: %v", common.ErrUnreadableEncoding, filepath.Base(path), err)
	}
	defer func() {
		_ = f.Close()
	}()

	var lines []string
	for _, sheet := range f.GetSheetList() {
		lines = append(lines, fmt.Sprintf("--- Hoja: %s ---", sheet))
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("%w: read sheet %q: %v", common.ErrUnreadableEncoding, sheet, err)
		}
		for _, row := range rows {
			line := strings.Join(row, " | ")
			if strings.Trim(line, " |") == "" {
				continue
			}
			lines = append(lines, line)
		}
	}

	content := strings.Join(lines, "\n")
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: the workbook has no cell content", common.ErrEmptyContent)
	}
	return content, nil
}
