// Package errors provides standardized error handling for the quickq service.
//
// Every public operation of the core components returns an *AppError on
// failure. The Message field is shown to the user verbatim by the
// presentation layer; the Code exists for callers that want to branch
// without string matching.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Not-found family
	ErrCodeJobNotFound       ErrorCode = "JOB_NOT_FOUND"
	ErrCodeInterviewNotFound ErrorCode = "INTERVIEW_NOT_FOUND"
	ErrCodeQuestionNotFound  ErrorCode = "QUESTION_NOT_FOUND"

	// Remote API family
	ErrCodeRemoteFailure ErrorCode = "REMOTE_FAILURE"
	ErrCodeRemoteTimeout ErrorCode = "REMOTE_TIMEOUT"
	ErrCodeEmptyResponse ErrorCode = "EMPTY_RESPONSE"

	// Validation family
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeNoAnswer         ErrorCode = "NO_ANSWER_PROVIDED"

	// Persistence family
	ErrCodePersistenceCorrupt ErrorCode = "PERSISTENCE_CORRUPT"
)

// AppError represents a structured application error.
type AppError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
	cause     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// New creates an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Newf creates an AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates an AppError around an underlying cause.
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		cause:     cause,
	}
}

// NewJobNotFound creates a not-found error for a job id.
func NewJobNotFound(jobID string) *AppError {
	return Newf(ErrCodeJobNotFound, "Job not found: %s", jobID)
}

// NewRemoteFailure creates a retryable remote-API error.
func NewRemoteFailure(message string, cause error) *AppError {
	e := Wrap(ErrCodeRemoteFailure, message, cause)
	e.Retryable = true
	return e
}

// NewRemoteTimeout creates a timeout error with a connection-related message.
func NewRemoteTimeout(message string) *AppError {
	e := New(ErrCodeRemoteTimeout, message)
	e.Retryable = true
	return e
}

// Code extracts the ErrorCode from err, or "" when err is not an AppError.
func Code(err error) ErrorCode {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// IsNotFound reports whether err is any of the not-found codes.
func IsNotFound(err error) bool {
	switch Code(err) {
	case ErrCodeJobNotFound, ErrCodeInterviewNotFound, ErrCodeQuestionNotFound:
		return true
	}
	return false
}

// IsRemoteFailure reports whether err originated from the remote API.
func IsRemoteFailure(err error) bool {
	switch Code(err) {
	case ErrCodeRemoteFailure, ErrCodeRemoteTimeout, ErrCodeEmptyResponse:
		return true
	}
	return false
}

// IsCorruption reports whether err is a persistence-corruption error.
func IsCorruption(err error) bool {
	return Code(err) == ErrCodePersistenceCorrupt
}
