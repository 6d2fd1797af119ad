package extraction

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/nguyenthenguyen/docx"
)

// docx content is WordprocessingML; strip tags to get the visible text
var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// extractDOCX pulls plain text from a DOCX document body.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	return xmlTagPattern.ReplaceAllString(content, " "), nil
}
