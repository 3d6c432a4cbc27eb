package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	// Pipeline failures.
	CodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	CodeResumeNotFound    Code = "RESUME_NOT_FOUND"
	CodeExtraction        Code = "EXTRACTION_FAILED"
	CodeValidation        Code = "VALIDATION_FAILED"
	CodeDocumentWrite     Code = "DOCUMENT_WRITE_FAILED"

	// Generic boundary codes.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
)

// AppError is the unified error contract across layers. Nothing below the
// handler boundary retries or swallows one of these; they propagate raw.
type AppError struct {
	Code    Code
	Op      string // operation name, ex: "JobService.AddEvent"
	Message string // safe message
	Err     error  // wrapped error
}

func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Op != "" && e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Op != "" && e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "error"
	}
}

func (e *AppError) Unwrap() error { return e.Err }

func E(code Code, op, msg string, err error) error {
	return &AppError{Code: code, Op: op, Message: msg, Err: err}
}

func IsCode(err error, code Code) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

func HTTPStatus(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		switch ae.Code {
		case CodeInvalidArgument:
			return http.StatusBadRequest
		case CodeNotFound:
			return http.StatusNotFound
		case CodeExtraction, CodeValidation:
			// Upstream model produced garbage or the call failed.
			return http.StatusBadGateway
		case CodeUnsupportedFormat, CodeResumeNotFound, CodeDocumentWrite:
			return http.StatusInternalServerError
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
