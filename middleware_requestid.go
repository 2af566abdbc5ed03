package httpkit

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDHeader is the header written by [RequestID].
const RequestIDHeader = "X-Request-ID"

// requestIDMiddleware tags every outgoing request with a UUID so that a
// request can be correlated with server-side logs. An ID already present on
// the request is kept.
type requestIDMiddleware struct{}

// RequestID returns a middleware that sets X-Request-ID on outgoing
// requests unless the caller has already provided one.
func RequestID() Middleware {
	return requestIDMiddleware{}
}

func (requestIDMiddleware) Name() string { return "request_id" }

func (requestIDMiddleware) ProcessRequest(_ context.Context, req *Request) error {
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}
	return nil
}

func (requestIDMiddleware) ProcessResponse(_ context.Context, _ *Response) error {
	return nil
}
