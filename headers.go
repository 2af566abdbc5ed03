package httpkit

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"golang.org/x/net/http/httpguts"
)

// validateHeader checks a header name/value pair against the grammar the
// wire format allows. Values with control characters are the usual offender.
func validateHeader(name, value string) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return &ConfigurationError{Reason: fmt.Sprintf("invalid header name %q", name)}
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return &ConfigurationError{Reason: fmt.Sprintf("invalid value for header %q", name)}
	}
	return nil
}

// HeaderBuilder accumulates header name/value pairs through chained calls.
// Names are case-insensitive and duplicates overwrite. Validation failures
// are recorded and reported by [HeaderBuilder.Build]; the chain itself never
// breaks.
type HeaderBuilder struct {
	header http.Header
	err    error
}

// Headers returns an empty header builder.
func Headers() *HeaderBuilder {
	return &HeaderBuilder{header: http.Header{}}
}

// Set adds a header, overwriting any prior value for the same name.
func (b *HeaderBuilder) Set(name, value string) *HeaderBuilder {
	if b.err != nil {
		return b
	}
	if err := validateHeader(name, value); err != nil {
		b.err = err
		return b
	}

	b.header.Set(name, value)
	return b
}

// SetAll adds every pair from h, overwriting duplicates.
func (b *HeaderBuilder) SetAll(h map[string]string) *HeaderBuilder {
	for name, value := range h {
		b = b.Set(name, value)
	}
	return b
}

// BearerAuth sets "Authorization: Bearer <token>". An empty token is a
// build error.
func (b *HeaderBuilder) BearerAuth(token string) *HeaderBuilder {
	if token == "" {
		if b.err == nil {
			b.err = &ConfigurationError{Reason: "empty bearer token"}
		}
		return b
	}
	return b.Set("Authorization", "Bearer "+token)
}

// BasicAuth sets "Authorization: Basic <credentials>" with the user:password
// pair base64-encoded per RFC 7617.
func (b *HeaderBuilder) BasicAuth(username, password string) *HeaderBuilder {
	creds := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return b.Set("Authorization", "Basic "+creds)
}

// APIKey sets an API key under the given header name.
func (b *HeaderBuilder) APIKey(headerName, key string) *HeaderBuilder {
	return b.Set(headerName, key)
}

// UserAgent sets the User-Agent header.
func (b *HeaderBuilder) UserAgent(ua string) *HeaderBuilder {
	return b.Set("User-Agent", ua)
}

// JSON sets Content-Type and Accept to application/json.
func (b *HeaderBuilder) JSON() *HeaderBuilder {
	return b.
		Set("Content-Type", "application/json").
		Set("Accept", "application/json")
}

// Build returns the accumulated headers, or the first validation error
// recorded during the chain.
func (b *HeaderBuilder) Build() (http.Header, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.header, nil
}
