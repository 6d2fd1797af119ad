package parsing

import "fmt"

// AllCredentialsExhaustedError indicates that every configured API credential
// failed authentication within a single extraction request.
type AllCredentialsExhaustedError struct {
	Attempts int
}

func (e *AllCredentialsExhaustedError) Error() string {
	return "Resume analysis is temporarily unavailable. Please try again later."
}

// Detail returns the internal description for server logs.
func (e *AllCredentialsExhaustedError) Detail() string {
	return fmt.Sprintf("all credentials exhausted after %d attempts", e.Attempts)
}

// InvalidResponseFormatError indicates the model's reply was not valid JSON.
// This is terminal for the request: malformed model output is not assumed
// transient, so it is never retried.
type InvalidResponseFormatError struct {
	// Raw holds the offending reply for server-side logging. It must never
	// be surfaced to the client.
	Raw string
}

func (e *InvalidResponseFormatError) Error() string {
	return "Failed to parse resume analysis. Please try again."
}

// EndpointError wraps a classified, non-retryable generation failure with
// its user-facing message.
type EndpointError struct {
	Message string
	cause   error
}

func (e *EndpointError) Error() string {
	return e.Message
}

func (e *EndpointError) Unwrap() error {
	return e.cause
}

// EmptyTextError indicates there was no resume text to parse.
type EmptyTextError struct{}

func (e *EmptyTextError) Error() string {
	return "No resume text provided for analysis."
}
