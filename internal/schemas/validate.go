// Package schemas enforces the structural contract on model-extracted
// resume JSON before it enters the scoring pipeline.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-screener/internal/types"
)

//go:embed parsed_resume.schema.json
var parsedResumeSchema string

var (
	compileOnce   sync.Once
	resumeSchema  *gojsonschema.Schema
	compileFailed error
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("resume validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load resume schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load resume schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func compiledSchema() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(parsedResumeSchema))
		if err != nil {
			compileFailed = &SchemaLoadError{Message: "schema compilation failed", Cause: err}
			return
		}
		resumeSchema = schema
	})
	return resumeSchema, compileFailed
}

// ValidateResume validates raw extracted JSON against the resume contract
// and decodes it into the canonical struct. Validation is total: either the
// whole document conforms or a ValidationError lists every violation. Fields
// outside the contract are silently dropped during decoding.
func ValidateResume(raw json.RawMessage) (*types.ParsedResume, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(string(raw)))
	if err != nil {
		return nil, &SchemaLoadError{Message: "document could not be loaded", Cause: err}
	}

	if !result.Valid() {
		validationErr := &ValidationError{
			Errors: make([]FieldError, 0, len(result.Errors())),
		}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			validationErr.Errors = append(validationErr.Errors, FieldError{
				Field:   field,
				Message: desc.Description(),
			})
		}
		return nil, validationErr
	}

	var resume types.ParsedResume
	if err := json.Unmarshal(raw, &resume); err != nil {
		return nil, fmt.Errorf("failed to decode validated resume: %w", err)
	}

	return &resume, nil
}
