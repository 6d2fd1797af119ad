package llm

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
)

// ErrorKind classifies a generation-endpoint failure. The parser's retry
// policy hangs off this: auth failures rotate credentials, everything else
// is terminal for the call.
type ErrorKind string

const (
	// KindAuth covers invalid or revoked API keys (401/403)
	KindAuth ErrorKind = "auth"
	// KindQuota covers rate/quota exhaustion (429)
	KindQuota ErrorKind = "quota"
	// KindServer covers provider-side failures (5xx)
	KindServer ErrorKind = "server"
	// KindOther covers network errors, timeouts, and everything unclassified
	KindOther ErrorKind = "other"
)

// APIError wraps a generation-endpoint failure with its classification.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	cause      error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("generation endpoint error (%s): %v", e.Kind, e.cause)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// IsAuthError reports whether err is an authentication-class endpoint failure.
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindAuth
}

// ClassifyAPIError maps a raw provider error onto an APIError. HTTP status
// codes are preferred; string matching is the fallback for transport errors
// that lose the status.
func ClassifyAPIError(err error) error {
	if err == nil {
		return nil
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return &APIError{Kind: kindForStatus(gErr.Code), StatusCode: gErr.Code, cause: err}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key not valid"),
		strings.Contains(msg, "unauthenticated"),
		strings.Contains(msg, "permission denied"):
		return &APIError{Kind: KindAuth, cause: err}
	case strings.Contains(msg, "quota"), strings.Contains(msg, "resource exhausted"):
		return &APIError{Kind: KindQuota, cause: err}
	case strings.Contains(msg, "internal error"), strings.Contains(msg, "unavailable"):
		return &APIError{Kind: KindServer, cause: err}
	default:
		return &APIError{Kind: KindOther, cause: err}
	}
}

func kindForStatus(code int) ErrorKind {
	switch {
	case code == 401 || code == 403:
		return KindAuth
	case code == 429:
		return KindQuota
	case code >= 500:
		return KindServer
	default:
		return KindOther
	}
}

// UserMessage returns the short, user-facing message for an endpoint failure.
// Internal detail stays in server logs.
func UserMessage(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return "Resume analysis failed. Please try again."
	}
	switch apiErr.Kind {
	case KindQuota:
		return "Analysis quota exceeded. Please check your plan and billing."
	case KindServer:
		return "The analysis service is temporarily unavailable. Please try again shortly."
	case KindAuth:
		return "Analysis service credentials are invalid. Please contact support."
	default:
		return "Resume analysis failed. Please try again."
	}
}
