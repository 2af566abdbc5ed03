package httpkit

import (
	"context"
	"net/http"
)

// headerMiddleware injects a fixed set of headers into every request. A
// malformed configured value fails the request with a [MiddlewareError];
// nothing else can go wrong here.
type headerMiddleware struct {
	header http.Header
}

// InjectHeaders returns a middleware that sets every name/value pair from h
// on outgoing requests, overwriting existing values.
func InjectHeaders(h map[string]string) Middleware {
	header := http.Header{}
	for name, value := range h {
		header.Set(name, value)
	}
	return &headerMiddleware{header: header}
}

func (m *headerMiddleware) Name() string { return "headers" }

func (m *headerMiddleware) ProcessRequest(_ context.Context, req *Request) error {
	for name, values := range m.header {
		for _, value := range values {
			if err := validateHeader(name, value); err != nil {
				return err
			}
			req.Header.Set(name, value)
		}
	}
	return nil
}

func (m *headerMiddleware) ProcessResponse(_ context.Context, _ *Response) error {
	return nil
}
