package textextract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/planetafiscal/docs-extractor/internal/common"
)

// readDocx parses a .docx file by reading word/document.xml from the ZIP
// archive. Body paragraphs come first, then table rows with their cell texts
// joined by " | ".
func readDocx(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("%w: open docx %s: %v", common.ErrUnreadableEncoding, filepath.Base(path), err)
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("%w: word/document.xml not found in %s", common.ErrUnreadableEncoding, filepath.Base(path))
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open document.xml: %v", common.ErrUnreadableEncoding, err)
	}
	defer rc.Close()

	paragraphs, rows, err := walkDocumentXML(rc)
	if err != nil {
		return "", fmt.Errorf("%w: parse document.xml: %v", common.ErrUnreadableEncoding, err)
	}

	content := strings.Join(append(paragraphs, rows...), "\n")
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: the document has no extractable text", common.ErrEmptyContent)
	}
	return content, nil
}

// walkDocumentXML streams the document body. Paragraphs inside tables are
// folded into their cell (cell paragraphs separated by a newline); empty
// paragraphs, cells, and rows are dropped.
func walkDocumentXML(r io.Reader) (paragraphs, rows []string, err error) {
	decoder := xml.NewDecoder(r)

	var (
		tableDepth int
		inCell     bool
		inPara     bool
		cellText   strings.Builder
		paraText   strings.Builder
		rowCells   []string
	)

	for {
		tok, tokErr := decoder.Token()
		if tokErr == io.EOF {
			break
		}
		if tokErr != nil {
			return nil, nil, tokErr
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "tr":
				if tableDepth > 0 {
					rowCells = nil
				}
			case "tc":
				if tableDepth > 0 {
					inCell = true
					cellText.Reset()
				}
			case "p":
				if tableDepth == 0 {
					inPara = true
					paraText.Reset()
				}
			}

		case xml.CharData:
			switch {
			case inCell:
				cellText.Write(t)
			case inPara:
				paraText.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "tr":
				if tableDepth > 0 && len(rowCells) > 0 {
					rows = append(rows, strings.Join(rowCells, " | "))
				}
			case "tc":
				if inCell {
					inCell = false
					if text := strings.TrimSpace(cellText.String()); text != "" {
						rowCells = append(rowCells, text)
					}
				}
			case "p":
				if inCell {
					cellText.WriteString("\n")
				}
				if inPara {
					inPara = false
					if text := strings.TrimSpace(paraText.String()); text != "" {
						paragraphs = append(paragraphs, text)
					}
				}
			}
		}
	}
	return paragraphs, rows, nil
}
