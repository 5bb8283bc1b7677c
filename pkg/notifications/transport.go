package notifications

import (
	"context"
	"net/http"

	"github.com/wintryx/progressmaker/pkg/apierror"
)

// Transport is an http.RoundTripper that resolves the notification policy
// for every request it carries. The request context supplies the ticket or
// inline feedback. Responses and errors pass through unchanged; a failed
// response body is restored so callers can still read it.
//
// Redirect responses carrying a Location header are not resolved: the
// client follows them and the final hop decides the outcome.
type Transport struct {
	base    http.RoundTripper
	service *Service
}

type TransportOption func(*Transport)

// WithBase sets the wrapped transport. Defaults to http.DefaultTransport.
func WithBase(rt http.RoundTripper) TransportOption {
	return func(t *Transport) {
		if rt != nil {
			t.base = rt
		}
	}
}

func NewTransport(service *Service, opts ...TransportOption) *Transport {
	t := &Transport{base: http.DefaultTransport, service: service}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.service.Resolve(ctx, err)
		return resp, err
	}

	if isRedirect(resp) {
		return resp, nil
	}

	// Any status >= 400 counts as a failure.
	t.service.Resolve(ctx, apierror.FromResponse(resp))
	return resp, nil
}

func isRedirect(resp *http.Response) bool {
	if resp.StatusCode < http.StatusMultipleChoices || resp.StatusCode >= http.StatusBadRequest {
		return false
	}
	return resp.Header.Get("Location") != ""
}

// Client returns an http.Client whose requests resolve notifications.
func (s *Service) Client(opts ...TransportOption) *http.Client {
	return &http.Client{Transport: NewTransport(s, opts...)}
}

// Track runs fn and resolves its outcome the same way Transport does for
// HTTP requests. fn's result is returned unchanged.
func Track[T any](ctx context.Context, s *Service, fn func(context.Context) (T, error)) (T, error) {
	v, err := fn(ctx)
	s.Resolve(ctx, err)
	return v, err
}
