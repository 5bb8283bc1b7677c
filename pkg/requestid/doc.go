// Package requestid carries a per-request correlation id from the incoming
// HTTP request through the context into logs and outgoing calls.
//
// Middleware accepts a client supplied X-Request-ID when it is at most 128
// characters of letters, digits, '-' and '_'; anything else is replaced with
// a fresh UUID. LoggerExtractor plugs the id into pkg/logger and Transport
// forwards it to downstream services.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	client := &http.Client{Transport: requestid.Transport{Base: http.DefaultTransport}}
//	handler := requestid.Middleware(mux)
package requestid
