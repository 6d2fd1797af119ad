package upload

import "fmt"

// InvalidFileTypeError indicates the declared MIME type is not PDF or DOCX.
type InvalidFileTypeError struct {
	MIMEType string
}

func (e *InvalidFileTypeError) Error() string {
	return "Only PDF and DOCX files are supported"
}

// Detail returns the rejected MIME type for server-side logging.
func (e *InvalidFileTypeError) Detail() string {
	return fmt.Sprintf("unsupported MIME type: %q", e.MIMEType)
}

// FileTooLargeError indicates the upload exceeds MaxFileSize.
type FileTooLargeError struct {
	Size int64
}

func (e *FileTooLargeError) Error() string {
	return "File size must be less than 5MB"
}

// Detail returns the rejected size for server-side logging.
func (e *FileTooLargeError) Detail() string {
	return fmt.Sprintf("file size %d exceeds cap %d", e.Size, MaxFileSize)
}

// InvalidFileNameError indicates a file name with path traversal or a
// forbidden extension.
type InvalidFileNameError struct {
	Name   string
	Reason string
}

func (e *InvalidFileNameError) Error() string {
	return fmt.Sprintf("Invalid file name: %s", e.Reason)
}
