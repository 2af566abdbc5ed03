package httpkit

import "context"

// AsyncClient is the non-blocking facade over the same configuration and
// pipeline as its parent [Client]. Each verb method starts the request on
// its own goroutine and returns a [Future] immediately; ordering semantics
// inside a single request are identical to the blocking facade.
type AsyncClient struct {
	client *Client
}

// Async returns the asynchronous facade of the client. Both facades share
// the same frozen configuration, pipeline, and transport.
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{client: c}
}

// Future is the pending result of an asynchronous request. It resolves
// exactly once; Wait may be called any number of times afterwards.
type Future struct {
	done chan struct{}
	resp *Response
	err  error
}

// Done returns a channel closed when the request has finished, for use in
// select statements.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the request finishes or ctx is cancelled. Cancellation
// of ctx surfaces as ctx.Err(), distinct from the error taxonomy: no
// response was produced, nothing partially-applied is visible.
func (f *Future) Wait(ctx context.Context) (*Response, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-f.done:
		return f.resp, f.err
	}
}

func (a *AsyncClient) spawn(run func() (*Response, error)) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.resp, f.err = run()
	}()
	return f
}

// Get starts a GET request and returns its future.
func (a *AsyncClient) Get(ctx context.Context, target string, opts ...RequestOption) *Future {
	return a.spawn(func() (*Response, error) { return a.client.Get(ctx, target, opts...) })
}

// Post starts a POST request and returns its future.
func (a *AsyncClient) Post(ctx context.Context, target string, opts ...RequestOption) *Future {
	return a.spawn(func() (*Response, error) { return a.client.Post(ctx, target, opts...) })
}

// Put starts a PUT request and returns its future.
func (a *AsyncClient) Put(ctx context.Context, target string, opts ...RequestOption) *Future {
	return a.spawn(func() (*Response, error) { return a.client.Put(ctx, target, opts...) })
}

// Patch starts a PATCH request and returns its future.
func (a *AsyncClient) Patch(ctx context.Context, target string, opts ...RequestOption) *Future {
	return a.spawn(func() (*Response, error) { return a.client.Patch(ctx, target, opts...) })
}

// Delete starts a DELETE request and returns its future.
func (a *AsyncClient) Delete(ctx context.Context, target string, opts ...RequestOption) *Future {
	return a.spawn(func() (*Response, error) { return a.client.Delete(ctx, target, opts...) })
}

// Head starts a HEAD request and returns its future.
func (a *AsyncClient) Head(ctx context.Context, target string, opts ...RequestOption) *Future {
	return a.spawn(func() (*Response, error) { return a.client.Head(ctx, target, opts...) })
}

// GetJSON starts a GET request whose response is decoded into out before
// the future resolves. out must not be read until the future is done: Wait
// returning ctx.Err() means the caller gave up waiting, not that the
// goroutine has finished writing into out. The future's response is nil,
// only its error is meaningful.
func (a *AsyncClient) GetJSON(ctx context.Context, target string, out any, opts ...RequestOption) *Future {
	return a.spawn(func() (*Response, error) {
		return nil, a.client.GetJSON(ctx, target, out, opts...)
	})
}

// PostJSON starts a POST request with an encoded body, decoding the
// response into out before the future resolves. The same rule as
// [AsyncClient.GetJSON] applies: read out only after the future is done.
func (a *AsyncClient) PostJSON(ctx context.Context, target string, body, out any, opts ...RequestOption) *Future {
	return a.spawn(func() (*Response, error) {
		return nil, a.client.PostJSON(ctx, target, body, out, opts...)
	})
}
