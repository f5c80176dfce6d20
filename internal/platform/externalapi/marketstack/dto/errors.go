package dto

import (
	"errors"
	"fmt"
)

// Errors returned while building requests or decoding responses.
var (
	// ErrMissingRequiredField is returned by QueryBuilder.Build when access_key or symbols is not set.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrMalformedResponse is returned when a response body is not valid JSON, or when
	// pagination or data is missing or has the wrong type.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrUnsupportedValue is returned when a sort order, endpoint, date or query parameter
	// is outside the set the API accepts.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// APIError is the body of the error envelope the EOD API returns instead of data,
// e.g. {"error":{"code":"invalid_access_key","message":"..."}}.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("marketstack: %s: %s", e.Code, e.Message)
}

// ErrorResponse wraps an APIError for encoding.
type ErrorResponse struct {
	Error *APIError `json:"error"`
}
