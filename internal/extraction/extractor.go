// Package extraction converts raw resume file bytes (PDF or DOCX) into plain text.
package extraction

import (
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/resume-screener/internal/upload"
)

// MinTextLength is the minimum extracted-text length considered usable.
// Shorter output means extraction technically succeeded but the file carries
// no signal (scanned image, blank document).
const MinTextLength = 50

// extractorFn converts file bytes into plain text.
type extractorFn func(data []byte) (string, error)

// dispatch maps each supported MIME type to its extractor. The map is the
// whole story: a type not present here is unsupported, full stop.
var dispatch = map[string]extractorFn{
	upload.MIMEPDF:  extractPDF,
	upload.MIMEDOCX: extractDOCX,
}

// Extract converts file bytes into plain text based on the declared MIME type.
// Extraction-library failures are collapsed into an opaque ExtractionFailedError
// so library internals never reach end users; the underlying cause is logged.
func Extract(data []byte, mimeType string) (string, error) {
	fn, ok := dispatch[mimeType]
	if !ok {
		return "", &UnsupportedFileTypeError{MIMEType: mimeType}
	}

	text, err := safeExtract(fn, data)
	if err != nil {
		log.Printf("[extraction] extraction failed (%s): %v", mimeType, err)
		return "", &ExtractionFailedError{cause: err}
	}

	text = normalizeWhitespace(text)
	if len(text) < MinTextLength {
		return "", &InsufficientContentError{Length: len(text)}
	}

	return text, nil
}

// safeExtract runs an extractor and converts panics from the underlying
// parsing libraries into errors. Malformed files can trip low-level readers.
func safeExtract(fn extractorFn, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extractor panic: %v", r)
		}
	}()
	return fn(data)
}

// normalizeWhitespace collapses runs of whitespace so the length check and the
// downstream prompt see comparable text regardless of source format.
func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
