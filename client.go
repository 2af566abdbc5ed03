package httpkit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// Client is the blocking facade: every verb method runs the middleware
// pipeline and the dispatch to completion on the calling goroutine before
// returning. Use [Client.Async] for the future-based variant.
//
// A Client is safe for concurrent use. The configuration and the pipeline
// are frozen at construction; per-request state lives in the [Request] and
// [Response] values created for each call.
type Client struct {
	config    *Config
	transport Transport
	pipeline  *pipeline
	codec     Codec
	logger    zerolog.Logger
	retry     *RetryPolicy

	middlewares []Middleware
}

// ClientOption customises a client during construction. The middleware
// pipeline can only be shaped here; once NewClient returns it is read-only.
type ClientOption func(*Client) error

// WithMiddleware appends middlewares to the pipeline in the order given.
// Registration order is execution order, for both phases.
func WithMiddleware(mws ...Middleware) ClientOption {
	return func(c *Client) error {
		c.middlewares = append(c.middlewares, mws...)
		return nil
	}
}

// WithTransport replaces the default resty-backed transport. The transport
// then owns timeout and redirect behaviour; the corresponding Config fields
// only apply to the default transport.
func WithTransport(t Transport) ClientOption {
	return func(c *Client) error {
		if t == nil {
			return &ConfigurationError{Reason: "nil transport"}
		}
		c.transport = t
		return nil
	}
}

// WithRetry wraps every pipeline invocation in the given retry policy.
func WithRetry(policy RetryPolicy) ClientOption {
	return func(c *Client) error {
		if err := policy.validate(); err != nil {
			return err
		}
		c.retry = &policy
		return nil
	}
}

// WithCodec replaces the JSON codec used by the *JSON convenience methods.
func WithCodec(codec Codec) ClientOption {
	return func(c *Client) error {
		if codec == nil {
			return &ConfigurationError{Reason: "nil codec"}
		}
		c.codec = codec
		return nil
	}
}

// WithLogger sets the logger used for pipeline state tracing (emitted at
// trace level). Request/response logging is the job of [Logging].
func WithLogger(log zerolog.Logger) ClientOption {
	return func(c *Client) error {
		c.logger = log
		return nil
	}
}

// NewClient builds a client from cfg and the given options. A nil cfg means
// [DefaultConfig]. The client copies cfg, so later mutation of the passed
// value has no effect.
func NewClient(cfg *Config, opts ...ClientOption) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	c := &Client{
		config: cfg.clone(),
		codec:  jsonCodec{},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.transport == nil {
		c.transport = newRestyTransport(c.config)
	}
	c.pipeline = &pipeline{middlewares: c.middlewares, log: c.logger}

	return c, nil
}

// Config returns a copy of the client's resolved configuration.
func (c *Client) Config() *Config {
	return c.config.clone()
}

// MiddlewareCount returns the number of registered middlewares.
func (c *Client) MiddlewareCount() int {
	return len(c.middlewares)
}

// RequestOption customises a single request before it enters the pipeline.
type RequestOption func(req *Request) error

// WithHeader sets one header on the request, overwriting any default.
func WithHeader(name, value string) RequestOption {
	return func(req *Request) error {
		if err := validateHeader(name, value); err != nil {
			return err
		}
		req.Header.Set(name, value)
		return nil
	}
}

// WithHeaders sets every header from h on the request, overwriting
// defaults. Combine with [HeaderBuilder] for fluent construction.
func WithHeaders(h http.Header) RequestOption {
	return func(req *Request) error {
		for name, values := range h {
			for _, value := range values {
				req.Header.Set(name, value)
			}
		}
		return nil
	}
}

// WithQuery merges the given values into the request URL's query string.
func WithQuery(values url.Values) RequestOption {
	return func(req *Request) error {
		q := req.URL.Query()
		for key, vs := range values {
			for _, v := range vs {
				q.Add(key, v)
			}
		}
		req.URL.RawQuery = q.Encode()
		return nil
	}
}

// WithQueryString sets the request URL's raw query string as-is. Use
// [QueryBuilder.Build] to produce one with insertion order preserved.
func WithQueryString(qs string) RequestOption {
	return func(req *Request) error {
		req.URL.RawQuery = strings.TrimPrefix(qs, "?")
		return nil
	}
}

// WithBody sets the raw request body and its Content-Type.
func WithBody(body []byte, contentType string) RequestOption {
	return func(req *Request) error {
		req.Body = body
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		return nil
	}
}

// WithForm url-encodes values and sets them as the request body with
// Content-Type application/x-www-form-urlencoded.
func WithForm(values url.Values) RequestOption {
	return func(req *Request) error {
		req.Body = []byte(values.Encode())
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return nil
	}
}

// WithJSON encodes v with the default JSON codec and sets it as the request
// body. Clients with a custom [Codec] should encode through the *JSON verb
// methods instead.
func WithJSON(v any) RequestOption {
	return func(req *Request) error {
		body, contentType, err := jsonCodec{}.Encode(v)
		if err != nil {
			return &SerializationError{Err: err}
		}
		req.Body = body
		req.Header.Set("Content-Type", contentType)
		return nil
	}
}

// Get sends a GET request. Like all raw verb methods it returns non-2xx
// responses as ordinary values, not errors.
func (c *Client) Get(ctx context.Context, target string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodGet, target, opts...)
}

// Post sends a POST request.
func (c *Client) Post(ctx context.Context, target string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPost, target, opts...)
}

// Put sends a PUT request.
func (c *Client) Put(ctx context.Context, target string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPut, target, opts...)
}

// Patch sends a PATCH request.
func (c *Client) Patch(ctx context.Context, target string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, target, opts...)
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, target string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, target, opts...)
}

// Head sends a HEAD request.
func (c *Client) Head(ctx context.Context, target string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodHead, target, opts...)
}

// Do sends a request with an arbitrary method. target is either an absolute
// URL or a path resolved against the configured base URL.
func (c *Client) Do(ctx context.Context, method, target string, opts ...RequestOption) (*Response, error) {
	req, err := c.newRequest(method, target, opts...)
	if err != nil {
		return nil, err
	}

	if c.retry != nil {
		return c.doWithRetry(ctx, req)
	}
	return c.pipeline.execute(ctx, req, c.transport)
}

func (c *Client) newRequest(method, target string, opts ...RequestOption) (*Request, error) {
	u, err := c.resolveTarget(target)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Method: method,
		URL:    u,
		Header: c.config.DefaultHeader.Clone(),
	}
	if req.Header == nil {
		req.Header = http.Header{}
	}

	for _, opt := range opts {
		if err := opt(req); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// resolveTarget turns a path or absolute URL into the URL to dispatch.
// Relative targets are joined to the base URL with exactly one slash
// between the two, regardless of how either side spells its edges.
func (c *Client) resolveTarget(target string) (*url.URL, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid request target %q", target), Err: err}
	}
	if u.IsAbs() {
		return u, nil
	}

	if c.config.BaseURL == nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("relative target %q without a base URL", target)}
	}

	joined := strings.TrimRight(c.config.BaseURL.String(), "/") + "/" + strings.TrimLeft(target, "/")
	full, err := url.Parse(joined)
	if err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid request URL %q", joined), Err: err}
	}
	return full, nil
}
