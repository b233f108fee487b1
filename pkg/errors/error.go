package errors

import (
	stderrors "errors"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalError represents a generic internal error.
	GeneralInternalError ErrorCode = "general_internal_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"

	// FinmindTransportError represents a network-level failure reaching the
	// FinMind API: connection refused, timeout, canceled context.
	FinmindTransportError ErrorCode = "finmind_transport_error"
	// FinmindDecodeError represents a response body that could not be
	// decoded as the expected JSON envelope.
	FinmindDecodeError ErrorCode = "finmind_decode_error"
	// FinmindAPIStatusError represents an envelope whose status field is not
	// 200. The upstream msg is carried in the error message.
	FinmindAPIStatusError ErrorCode = "finmind_api_status_error"

	// CSVWriteError represents a failure creating or writing the output file.
	CSVWriteError ErrorCode = "csv_write_error"
)

// ErrorDetails represents detailed information about an error.
type ErrorDetails struct {
	// Message (required) is the user-defined error message.
	// E.g. "upstream returned status 400".
	Message string

	// Code (required) is the user-defined error code string.
	Code ErrorCode

	// Field (optional) is the related field the error occurred on, if any.
	Field string
}

// NewErrorDetails creates a new ErrorDetails struct with the given parameters.
func NewErrorDetails(message string, code ErrorCode, field string) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
	}
}

// Error is used to implement the Golang `error` interface.
func (e *ErrorDetails) Error() string {
	return e.Message
}

// CodeEquals checks whether a given `error` carries a specific code,
// unwrapping through any tracer layers.
func CodeEquals(err error, code ErrorCode) bool {
	var details *ErrorDetails
	if !stderrors.As(err, &details) {
		return false
	}
	return details.Code == code
}
