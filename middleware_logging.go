package httpkit

import (
	"context"

	"github.com/rs/zerolog"
)

// loggingMiddleware emits one diagnostic record per phase through an
// injected zerolog.Logger. It never mutates the request or response and
// never fails.
type loggingMiddleware struct {
	log          zerolog.Logger
	logRequests  bool
	logResponses bool
}

// Logging returns a middleware that logs both outgoing requests and
// incoming responses to log.
func Logging(log zerolog.Logger) Middleware {
	return &loggingMiddleware{log: log, logRequests: true, logResponses: true}
}

// LoggingRequests returns a middleware that logs outgoing requests only.
func LoggingRequests(log zerolog.Logger) Middleware {
	return &loggingMiddleware{log: log, logRequests: true}
}

// LoggingResponses returns a middleware that logs incoming responses only.
func LoggingResponses(log zerolog.Logger) Middleware {
	return &loggingMiddleware{log: log, logResponses: true}
}

func (m *loggingMiddleware) Name() string { return "logging" }

func (m *loggingMiddleware) ProcessRequest(_ context.Context, req *Request) error {
	if m.logRequests {
		m.log.Info().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("http request")
	}
	return nil
}

func (m *loggingMiddleware) ProcessResponse(_ context.Context, resp *Response) error {
	if m.logResponses {
		event := m.log.Info().
			Int("status", resp.StatusCode).
			Dur("duration", resp.Duration).
			Int("size", len(resp.Body))
		if resp.Request != nil {
			event = event.
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL.String())
		}
		event.Msg("http response")
	}
	return nil
}
