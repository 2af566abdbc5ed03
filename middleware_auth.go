package httpkit

import (
	"context"
	"encoding/base64"
)

// authMiddleware sets a single credential header unconditionally in the
// request phase, overwriting any existing value. It never fails and ignores
// responses.
type authMiddleware struct {
	header string
	value  string
}

// BearerAuth returns a middleware that sets
// "Authorization: Bearer <token>" on every request.
func BearerAuth(token string) Middleware {
	return &authMiddleware{header: "Authorization", value: "Bearer " + token}
}

// BasicAuth returns a middleware that sets
// "Authorization: Basic <credentials>" on every request, with the
// user:password pair base64-encoded per RFC 7617.
func BasicAuth(username, password string) Middleware {
	creds := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return &authMiddleware{header: "Authorization", value: "Basic " + creds}
}

// APIKeyAuth returns a middleware that sets the API key under the given
// header name on every request.
func APIKeyAuth(headerName, key string) Middleware {
	return &authMiddleware{header: headerName, value: key}
}

func (m *authMiddleware) Name() string { return "auth" }

func (m *authMiddleware) ProcessRequest(_ context.Context, req *Request) error {
	req.Header.Set(m.header, m.value)
	return nil
}

func (m *authMiddleware) ProcessResponse(_ context.Context, _ *Response) error {
	return nil
}
