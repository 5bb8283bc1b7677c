// Package apiclient is a minimal JSON client for the mock REST backend.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/wintryx/progressmaker/pkg/apierror"
)

var (
	ErrBuildRequest = errors.New("apiclient: failed to build request")
	ErrDecode       = errors.New("apiclient: failed to decode response")
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	doer    Doer
	baseURL string
}

// New returns a client resolving paths against baseURL, for example
// "http://localhost:8080/api". A nil doer means http.DefaultClient.
func New(baseURL string, doer Doer) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{doer: doer, baseURL: strings.TrimRight(baseURL, "/")}
}

// BaseURL returns the URL paths are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get fetches path and decodes the JSON body into out, which may be nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, target, nil, out)
}

// Post sends body as JSON and decodes the response into out, which may be nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Join(ErrBuildRequest, err)
		}
		payload = bytes.NewReader(data)
	}
	return c.do(ctx, http.MethodPost, c.baseURL+path, payload, out)
}

// do returns *apierror.ResponseError for any status >= 400.
func (c *Client) do(ctx context.Context, method, target string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return errors.Join(ErrBuildRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := apierror.FromResponse(resp); err != nil {
		return err
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}
