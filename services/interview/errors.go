package interview

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried by ServiceError. Handlers map Status straight to the
// HTTP response code.
const (
	CodeValidation       = "validationError"
	CodeReference        = "referenceError"
	CodeScheduleConflict = "scheduleConflict"
	CodeNotFound         = "notFound"
	CodeInternal         = "internalError"
)

// FieldError names one violated field with a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ServiceError is the single error type the scheduling service surfaces to
// its callers. Fields is populated for validation and reference errors.
type ServiceError struct {
	Code    string
	Message string
	Status  int
	Fields  []FieldError
	cause   error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.cause }

// NewValidationError aggregates every violated field found by the validation
// pipeline, not just the first.
func NewValidationError(fields []FieldError) error {
	return &ServiceError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("validation failed for %d field(s)", len(fields)),
		Status:  http.StatusBadRequest,
		Fields:  fields,
	}
}

// NewReferenceError reports dangling candidate/job references; both missing
// references are aggregated when both are missing.
func NewReferenceError(fields []FieldError) error {
	return &ServiceError{
		Code:    CodeReference,
		Message: "referenced entity does not exist",
		Status:  http.StatusBadRequest,
		Fields:  fields,
	}
}

func NewConflictError(candidateID string) error {
	return &ServiceError{
		Code:    CodeScheduleConflict,
		Message: fmt.Sprintf("candidate %s already has an interview within 30 minutes of the proposed slot", candidateID),
		Status:  http.StatusConflict,
	}
}

func NewNotFoundError(resource string) error {
	return &ServiceError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
	}
}

// NewInternalError wraps an unexpected failure; the original error is kept
// out of the message so handlers never leak store internals to the caller.
func NewInternalError(err error) error {
	return &ServiceError{
		Code:    CodeInternal,
		Message: "an unexpected error occurred",
		Status:  http.StatusInternalServerError,
		cause:   err,
	}
}

// AsServiceError unwraps err into a *ServiceError when possible.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}
