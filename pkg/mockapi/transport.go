package mockapi

import (
	"net/http"
	"net/http/httptest"
)

// Transport serves requests with h in the calling goroutine, without a
// network round trip. A request cancelled while h runs fails with the
// context error, as it would over a real connection.
func Transport(h http.Handler) http.RoundTripper {
	return handlerTransport{handler: h}
}

type handlerTransport struct {
	handler http.Handler
}

func (t handlerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in := req.Clone(ctx)
	if in.Body == nil {
		in.Body = http.NoBody
	}
	in.RequestURI = in.URL.RequestURI()
	if in.RemoteAddr == "" {
		in.RemoteAddr = "127.0.0.1:0"
	}

	rec := httptest.NewRecorder()
	t.handler.ServeHTTP(rec, in)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp := rec.Result()
	resp.Request = req
	return resp, nil
}
