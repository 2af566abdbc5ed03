// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package httpkit

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// RequestError reports a transport-level failure: the request never produced
// a usable response. The underlying cause from the wrapped HTTP client is
// available via [errors.Unwrap].
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request error: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// TimeoutError reports that the dispatch phase exceeded the configured
// time bound.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout error: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// ResponseError reports a non-2xx status on a JSON convenience call. The
// status code and the raw body text are preserved verbatim so callers can
// branch on them programmatically.
//
// Raw verb methods ([Client.Get] and friends) never produce a ResponseError;
// they hand non-2xx responses back to the caller unchanged.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

// SerializationError reports that a request body could not be encoded or a
// response body could not be decoded into the requested shape.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization error: %v", e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// ConfigurationError reports a build-time validation failure: an invalid
// base URL, a malformed header value, a negative timeout. It is produced by
// the configuration and utility builders and never occurs mid-request,
// except when a per-call target cannot be resolved into a valid URL.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// MiddlewareError reports that a middleware aborted the in-flight request.
// Name identifies the failing middleware; the underlying cause is available
// via [errors.Unwrap].
type MiddlewareError struct {
	Name string
	Err  error
}

func (e *MiddlewareError) Error() string {
	return fmt.Sprintf("middleware %q: %v", e.Name, e.Err)
}

func (e *MiddlewareError) Unwrap() error { return e.Err }

// classifyTransportError maps an error returned by the transport to the
// package taxonomy. Context cancellation is deliberately passed through
// untouched: "the caller gave up" is an outcome, not a client failure.
func classifyTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return context.Canceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Err: err}
	}

	return &RequestError{Err: err}
}
