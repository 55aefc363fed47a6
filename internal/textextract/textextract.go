package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/planetafiscal/docs-extractor/constants"
	"github.com/planetafiscal/docs-extractor/internal/common"
)

// readerFunc converts one file on disk into its raw text.
type readerFunc func(path string) (string, error)

// readers maps a normalized extension to its format reader. Adding a format
// means adding one entry here.
var readers = map[string]readerFunc{
	"txt":  readText,
	"pdf":  readPDF,
	"docx": readDocx,
	"xlsx": readWorkbook,
	"xls":  readWorkbook,
}

// Extractor turns supported documents into raw text blobs. It performs no
// semantic interpretation; the result is lossy, best-effort text recovery.
type Extractor struct {
	log *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{log: logger}
}

// Supported reports whether the file's extension has a registered reader.
func Supported(path string) bool {
	_, ok := readers[constants.NormalizeExt(filepath.Ext(path))]
	return ok
}

// Extract returns the full text content of the file at path, or a typed
// error: ErrUnsupportedFormat for unknown extensions, ErrUnreadableEncoding
// for content the reader cannot decode, ErrEmptyContent for structured
// documents that yield no text.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	read, ok := readers[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, filepath.Ext(path))
	}

	start := time.Now()
	text, err := read(path)
	if err != nil {
		return "", err
	}
	e.log.Debug("textextract.ok",
		"file", filepath.Base(path),
		"format", ext,
		"chars", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
