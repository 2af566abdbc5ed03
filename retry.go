package httpkit

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

// errRetryStatus marks an attempt that came back with a qualifying status
// code. It never escapes the retry loop: once attempts are exhausted the
// last response itself is returned, because a non-2xx status is not an
// error for raw verb calls.
var errRetryStatus = errors.New("retryable response status")

// RetryPolicy is a decorator around the whole pipeline invocation. It is
// not a request/response hook: every attempt re-runs the full middleware
// pipeline on a fresh clone of the original request, so request-phase
// mutations from one attempt never leak into the next. A middleware that
// makes the body non-reproducible across attempts (a per-attempt nonce, for
// example) is the caller's responsibility to keep idempotent.
//
// Transport-level failures and qualifying response statuses retry with
// exponential backoff; middleware failures and context cancellation never
// retry.
type RetryPolicy struct {
	// MaxAttempts is the total number of pipeline invocations, first try
	// included. Must be at least 1.
	MaxAttempts int
	// InitialBackoff seeds the exponential backoff between attempts.
	InitialBackoff time.Duration
	// MaxBackoff caps the backoff. Zero means uncapped.
	MaxBackoff time.Duration
	// RetryIf overrides the default decision of whether an attempt outcome
	// qualifies for another try. Exactly one of resp and err is set. The
	// default retries transport and timeout errors plus 429/502/503/504
	// statuses.
	RetryIf func(resp *Response, err error) bool
}

func (p *RetryPolicy) validate() error {
	if p.MaxAttempts < 1 {
		return &ConfigurationError{Reason: "retry policy needs at least one attempt"}
	}
	if p.InitialBackoff < 0 || p.MaxBackoff < 0 {
		return &ConfigurationError{Reason: "negative retry backoff"}
	}
	return nil
}

func (p *RetryPolicy) backoff() retry.Backoff {
	initial := p.InitialBackoff
	if initial <= 0 {
		initial = time.Second
	}

	b := retry.NewExponential(initial)
	if p.MaxBackoff > 0 {
		b = retry.WithCappedDuration(p.MaxBackoff, b)
	}
	return retry.WithMaxRetries(uint64(p.MaxAttempts-1), b)
}

func (p *RetryPolicy) shouldRetry(resp *Response, err error) bool {
	if p.RetryIf != nil {
		return p.RetryIf(resp, err)
	}

	if err != nil {
		var reqErr *RequestError
		var timeoutErr *TimeoutError
		return errors.As(err, &reqErr) || errors.As(err, &timeoutErr)
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// doWithRetry runs the pipeline under the client's retry policy. On
// exhaustion the last transport error surfaces as-is; a still-failing
// status after the last attempt surfaces as the response itself.
func (c *Client) doWithRetry(ctx context.Context, req *Request) (*Response, error) {
	var last *Response

	err := retry.Do(ctx, c.retry.backoff(), func(ctx context.Context) error {
		last = nil

		resp, err := c.pipeline.execute(ctx, req.Clone(), c.transport)
		if err != nil {
			if c.retry.shouldRetry(nil, err) {
				return retry.RetryableError(err)
			}
			return err
		}

		last = resp
		if c.retry.shouldRetry(resp, nil) {
			return retry.RetryableError(errRetryStatus)
		}
		return nil
	})

	if err != nil {
		if last != nil && errors.Is(err, errRetryStatus) {
			return last, nil
		}
		return nil, err
	}

	return last, nil
}
