// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package httpkit

import "context"

// Middleware is a named unit with two hook points around the dispatch of a
// request.
//
// ProcessRequest runs before dispatch and may mutate the outgoing request:
// method, URL, headers, and body are all fair game. ProcessResponse runs
// after a successful dispatch and may inspect or rewrite the received
// response before the caller sees it.
//
// Hooks of all registered middlewares run strictly sequentially, in
// registration order, for both phases. A middleware must not assume any
// execution order relative to others beyond that; later middlewares do see
// mutations made by earlier ones.
//
// An error from either hook aborts the request: remaining hooks are
// skipped, dispatch never happens (request phase) or the response is
// discarded (response phase), and the caller receives a [MiddlewareError]
// naming the middleware.
//
// A middleware instance is shared by every request of its client.
// Stateless middlewares need no synchronisation; a stateful one (retry
// counters, token caches) is responsible for its own.
type Middleware interface {
	// Name identifies the middleware in errors and logs.
	Name() string

	// ProcessRequest may mutate the pending request before dispatch.
	ProcessRequest(ctx context.Context, req *Request) error

	// ProcessResponse may inspect or mutate the received response before it
	// reaches the caller.
	ProcessResponse(ctx context.Context, resp *Response) error
}

// MiddlewareFunc builds a [Middleware] from plain functions. Either hook may
// be nil, in which case that phase is a no-op.
func MiddlewareFunc(
	name string,
	onRequest func(ctx context.Context, req *Request) error,
	onResponse func(ctx context.Context, resp *Response) error,
) Middleware {
	return funcMiddleware{name: name, onRequest: onRequest, onResponse: onResponse}
}

type funcMiddleware struct {
	name       string
	onRequest  func(ctx context.Context, req *Request) error
	onResponse func(ctx context.Context, resp *Response) error
}

func (m funcMiddleware) Name() string { return m.name }

func (m funcMiddleware) ProcessRequest(ctx context.Context, req *Request) error {
	if m.onRequest == nil {
		return nil
	}
	return m.onRequest(ctx, req)
}

func (m funcMiddleware) ProcessResponse(ctx context.Context, resp *Response) error {
	if m.onResponse == nil {
		return nil
	}
	return m.onResponse(ctx, resp)
}
