package apierror

import (
	"fmt"
	"net/http"
)

// DefaultMessage is the last-resort text when nothing better can be extracted.
const DefaultMessage = "An error occurred."

// Code is a machine-readable error code carried in API error bodies.
type Code string

const (
	CodeUnauthorized             Code = "AUTH_UNAUTHORIZED"
	CodeDashboardItemsLoadFailed Code = "DASHBOARD_ITEMS_LOAD_FAILED"
	CodeDashboardUnauthorized    Code = "DASHBOARD_UNAUTHORIZED"
	CodeNotFound                 Code = "NOT_FOUND"
	CodeValidation               Code = "VALIDATION"
	CodeBadRequest               Code = "BAD_REQUEST"
)

// Error is the standard API error body.
type Error struct {
	Status  int                 `json:"status"`
	Message string              `json:"message"`
	Code    Code                `json:"code,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// New builds an Error with the given status, code and message.
func New(status int, code Code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// ResponseError reports an HTTP response with a non-success status.
// Body holds the decoded API error when the server sent one.
type ResponseError struct {
	StatusCode int
	Body       *Error
}

func (e *ResponseError) Error() string {
	if e.Body != nil && e.Body.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body.Message)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *ResponseError) Unwrap() error {
	if e.Body == nil {
		return nil
	}
	return e.Body
}

// StatusText is the canonical text for the response status, e.g. "Not Found".
func (e *ResponseError) StatusText() string {
	return http.StatusText(e.StatusCode)
}
