// Package upload validates incoming resume files before any extraction work.
package upload

import (
	"path/filepath"
	"strings"
)

// Supported MIME types. The set is closed on purpose: anything else is
// rejected before extraction is attempted.
const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// MaxFileSize is the upload size cap (5 MiB).
const MaxFileSize = 5 << 20

// File describes an uploaded file: just enough metadata to validate it
// without reading its contents.
type File struct {
	Name     string
	MIMEType string
	Size     int64
}

// executable or otherwise dangerous extensions never accepted as resumes
var forbiddenExtensions = map[string]bool{
	".exe": true,
	".bat": true,
	".cmd": true,
	".com": true,
	".scr": true,
	".msi": true,
	".sh":  true,
	".js":  true,
	".vbs": true,
	".ps1": true,
	".jar": true,
}

// Validate checks MIME type, size, and file name. It returns nil when the
// file is acceptable, or exactly one typed rejection. Validation has no side
// effects and is never retryable: the caller must submit a different file.
func Validate(f File) error {
	if err := validateName(f.Name); err != nil {
		return err
	}
	if f.MIMEType != MIMEPDF && f.MIMEType != MIMEDOCX {
		return &InvalidFileTypeError{MIMEType: f.MIMEType}
	}
	if f.Size > MaxFileSize {
		return &FileTooLargeError{Size: f.Size}
	}
	return nil
}

// validateName rejects path traversal and executable extensions.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &InvalidFileNameError{Name: name, Reason: "file name is empty"}
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, "/\\") {
		return &InvalidFileNameError{Name: name, Reason: "file name contains path separators"}
	}
	ext := strings.ToLower(filepath.Ext(name))
	if forbiddenExtensions[ext] {
		return &InvalidFileNameError{Name: name, Reason: "file extension is not allowed"}
	}
	return nil
}
