// Package server provides the HTTP REST API for the resume screener.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/upload"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrRecruiterNotFound indicates the recruiter account was not found
type ErrRecruiterNotFound struct {
	RecruiterID uuid.UUID
}

func (e *ErrRecruiterNotFound) Error() string {
	return fmt.Sprintf("recruiter not found: %s", e.RecruiterID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// HTTPStatus returns the appropriate HTTP status code for an auth error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch:
		return http.StatusUnauthorized
	case *ErrRecruiterNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// statusForPipelineError maps a terminal pipeline error to an HTTP status.
// Every kind carries a user-safe message already; this only picks the code.
func statusForPipelineError(err error) int {
	var (
		fileType     *upload.InvalidFileTypeError
		fileSize     *upload.FileTooLargeError
		fileName     *upload.InvalidFileNameError
		unsupported  *extraction.UnsupportedFileTypeError
		extractFail  *extraction.ExtractionFailedError
		shortContent *extraction.InsufficientContentError
		emptyText    *parsing.EmptyTextError
		badFormat    *parsing.InvalidResponseFormatError
		endpoint     *parsing.EndpointError
		exhausted    *parsing.AllCredentialsExhaustedError
		rejection    *pipeline.SchemaRejectionError
		validation   *schemas.ValidationError
	)

	switch {
	case errors.As(err, &fileType), errors.As(err, &fileSize), errors.As(err, &fileName),
		errors.As(err, &unsupported), errors.As(err, &extractFail), errors.As(err, &shortContent),
		errors.As(err, &emptyText):
		return http.StatusBadRequest
	case errors.As(err, &rejection), errors.As(err, &validation):
		return http.StatusUnprocessableEntity
	case errors.As(err, &exhausted):
		return http.StatusServiceUnavailable
	case errors.As(err, &badFormat), errors.As(err, &endpoint):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
