package textextract

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/planetafiscal/docs-extractor/internal/common"
)

// textFallbacks are tried in order when the bytes are not valid UTF-8. Both
// charmaps accept any byte value, but differ in the 0x80-0x9F range.
var textFallbacks = []*charmap.Charmap{
	charmap.ISO8859_1,
	charmap.Windows1252,
}

// readText decodes a plain-text file with the first encoding that accepts its
// bytes: UTF-8, then latin-1, then windows-1252. Unlike the structured
// formats, an empty .txt is returned as-is.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", common.ErrUnreadableEncoding, filepath.Base(path), err)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}
	for _, cm := range textFallbacks {
		decoded, err := cm.NewDecoder().Bytes(data)
		if err == nil {
			return string(decoded), nil
		}
	}
	return "", fmt.Errorf("%w: %s is not decodable as UTF-8, latin-1, or windows-1252", common.ErrUnreadableEncoding, filepath.Base(path))
}
