package extraction

import "fmt"

// UnsupportedFileTypeError indicates a MIME type with no registered extractor.
type UnsupportedFileTypeError struct {
	MIMEType string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.MIMEType)
}

// ExtractionFailedError indicates the extraction library could not read the
// file. The cause is retained for logs but the user-facing message is opaque.
type ExtractionFailedError struct {
	cause error
}

func (e *ExtractionFailedError) Error() string {
	return "Failed to extract text from file"
}

func (e *ExtractionFailedError) Unwrap() error {
	return e.cause
}

// InsufficientContentError indicates extraction succeeded but produced too
// little text to analyze. Distinct from a hard extraction failure.
type InsufficientContentError struct {
	Length int
}

func (e *InsufficientContentError) Error() string {
	return "File does not contain enough readable text"
}
