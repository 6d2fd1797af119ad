package pipeline

// SchemaRejectionError wraps a schema validation failure with the generic
// user-facing message. The field-level violations stay available through
// Unwrap for diagnostics.
type SchemaRejectionError struct {
	cause error
}

func (e *SchemaRejectionError) Error() string {
	return "Extracted resume data did not match the expected format."
}

func (e *SchemaRejectionError) Unwrap() error {
	return e.cause
}
