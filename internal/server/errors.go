// Package server provides the HTTP API for the mock interview service.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/interview-coach/internal/ingestion"
	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/speech"
)

// ErrMissingCredential indicates a feature's provider credential is not
// configured. The feature is disabled, not broken.
type ErrMissingCredential struct {
	Feature string
}

func (e *ErrMissingCredential) Error() string {
	return fmt.Sprintf("%s is not configured on this server", e.Feature)
}

// ErrProvider indicates an upstream provider call failed.
type ErrProvider struct {
	Op  string
	Err error
}

func (e *ErrProvider) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ErrProvider) Unwrap() error {
	return e.Err
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a lookup against a fixed table missed.
type ErrNotFound struct {
	Resource string
	Key      string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		missingCredential *ErrMissingCredential
		provider          *ErrProvider
		validation        *ErrValidation
		notFound          *ErrNotFound
		unknownIndustry   *interview.ErrUnknownIndustry
		unknownDifficulty *interview.ErrUnknownDifficulty
		invalidFollowUp   *interview.ErrInvalidFollowUp
		audioTooLarge     *speech.ErrAudioTooLarge
		emptyTranscript   *speech.ErrEmptyTranscript
		unsupportedDoc    *ingestion.ErrUnsupportedDocumentType
	)

	switch {
	case errors.As(err, &missingCredential):
		return http.StatusServiceUnavailable
	case errors.As(err, &provider):
		return http.StatusBadGateway
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &audioTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &emptyTranscript):
		return http.StatusUnprocessableEntity
	case errors.As(err, &unsupportedDoc):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &validation),
		errors.As(err, &unknownIndustry),
		errors.As(err, &unknownDifficulty),
		errors.As(err, &invalidFollowUp):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
