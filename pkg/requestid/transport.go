package requestid

import "net/http"

// Transport forwards the request id found in the outgoing request's context
// as the X-Request-ID header, so backend logs line up with the caller's.
type Transport struct {
	Base http.RoundTripper
}

func (t Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	id := FromContext(req.Context())
	if id == "" || req.Header.Get(Header) != "" {
		return base.RoundTrip(req)
	}
	// RoundTrippers must not modify the caller's request.
	out := req.Clone(req.Context())
	out.Header.Set(Header, id)
	return base.RoundTrip(out)
}
