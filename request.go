package httpkit

import (
	"net/http"
	"net/url"
	"time"
)

// Request is the mutable view of a pending HTTP request handed to middleware
// during the request phase. Method, URL, Header, and Body may all be changed
// by a middleware before dispatch; the transport sends whatever is left here
// once the request phase completes.
//
// A fresh Request is created for every call and discarded afterwards.
type Request struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   []byte
}

// Clone returns a deep enough copy of the request for an independent
// pipeline run: the URL, headers, and body are copied so that mutations made
// by one retry attempt never leak into the next.
func (r *Request) Clone() *Request {
	u := *r.URL

	var body []byte
	if r.Body != nil {
		body = make([]byte, len(r.Body))
		copy(body, r.Body)
	}

	return &Request{
		Method: r.Method,
		URL:    &u,
		Header: r.Header.Clone(),
		Body:   body,
	}
}

// Response is the mutable view of a received HTTP response handed to
// middleware during the response phase. StatusCode, Header, and Body may be
// rewritten before the response reaches the caller (e.g. by a decompression
// middleware).
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	// Request is the final request as dispatched, after all request-phase
	// mutations.
	Request *Request
	// Duration is the time spent in the dispatch phase only; middleware
	// hooks are not included.
	Duration time.Duration
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}
