package apierror

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodySize bounds how much of an error response body is buffered.
const maxBodySize = 1 << 20

// Normalized is a transport-independent view of a failure.
type Normalized struct {
	Message  string
	Status   int
	Code     Code
	APIError *Error
}

// Unauthorized reports whether the failure should end the user's session.
func (n Normalized) Unauthorized() bool {
	return n.Status == http.StatusUnauthorized || n.Code == CodeUnauthorized
}

// Normalize turns an arbitrary error into a Normalized value.
//
// The message is taken, in order, from a structured API error body, the
// HTTP status text of a ResponseError, and finally fallback. Errors of any
// other shape (network failures, cancellations) only ever surface fallback,
// never their technical text. An empty fallback means DefaultMessage.
func Normalize(err error, fallback string) Normalized {
	if fallback == "" {
		fallback = DefaultMessage
	}
	n := Normalized{Message: fallback}
	if err == nil {
		return n
	}

	var respErr *ResponseError
	if errors.As(err, &respErr) {
		n.Status = respErr.StatusCode
		if text := respErr.StatusText(); text != "" {
			n.Message = text
		}
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		n.APIError = apiErr
		if apiErr.Status != 0 {
			n.Status = apiErr.Status
		}
		n.Code = apiErr.Code
		if apiErr.Message != "" {
			n.Message = apiErr.Message
		}
	}

	return n
}

// ParseMessage returns only the user-facing message of Normalize.
func ParseMessage(err error, fallback string) string {
	return Normalize(err, fallback).Message
}

// FromResponse inspects resp and returns a *ResponseError for statuses of
// 400 and above, or nil otherwise. Up to maxBodySize bytes of the body are
// inspected; the caller still reads the complete body and closes it.
func FromResponse(resp *http.Response) error {
	if resp == nil || resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	respErr := &ResponseError{StatusCode: resp.StatusCode}
	if resp.Body == nil || resp.Body == http.NoBody {
		return respErr
	}

	body := resp.Body
	data, readErr := io.ReadAll(io.LimitReader(body, maxBodySize))
	resp.Body = readCloser{Reader: io.MultiReader(bytes.NewReader(data), body), Closer: body}
	if readErr != nil || len(bytes.TrimSpace(data)) == 0 {
		return respErr
	}

	var apiErr Error
	if err := json.Unmarshal(data, &apiErr); err != nil {
		return respErr
	}
	if apiErr.Message == "" && apiErr.Code == "" {
		return respErr
	}
	if apiErr.Status == 0 {
		apiErr.Status = resp.StatusCode
	}
	respErr.Body = &apiErr
	return respErr
}

type readCloser struct {
	io.Reader
	io.Closer
}
