package httpkit

import (
	"net/http"
	"net/url"
	"time"
)

// Default values applied by [NewConfig] and [ConfigFromEnv], mirroring the
// defaults of the wrapped client.
const (
	// DefaultTimeout bounds a whole request attempt, dispatch included.
	DefaultTimeout = 30 * time.Second
	// DefaultConnectTimeout bounds connection establishment only.
	DefaultConnectTimeout = 10 * time.Second
	// DefaultMaxRedirects limits redirect hops when following is enabled.
	DefaultMaxRedirects = 10
)

// Config is the resolved, validated client configuration produced by
// [ConfigBuilder.Build]. A client copies the Config it is constructed with
// and treats its own copy as read-only, so a Config value can be reused to
// build several independent clients.
type Config struct {
	// BaseURL is the absolute URL that relative request targets are resolved
	// against. Nil means every request target must be absolute.
	BaseURL *url.URL
	// DefaultHeader is attached to every outgoing request. Keys are
	// case-insensitive; the last write for a name wins.
	DefaultHeader http.Header
	// Timeout bounds the dispatch phase of a request. Zero delegates to the
	// transport default.
	Timeout time.Duration
	// ConnectTimeout bounds connection establishment. Zero delegates to the
	// transport default.
	ConnectTimeout time.Duration
	// FollowRedirects enables automatic redirect following in the transport.
	FollowRedirects bool
	// MaxRedirects limits redirect hops. Ignored when FollowRedirects is
	// false.
	MaxRedirects int
}

// clone returns an independent copy of the config so that the client holds
// exclusive ownership of its own settings.
func (c *Config) clone() *Config {
	out := *c
	if c.BaseURL != nil {
		u := *c.BaseURL
		out.BaseURL = &u
	}
	out.DefaultHeader = c.DefaultHeader.Clone()
	if out.DefaultHeader == nil {
		out.DefaultHeader = http.Header{}
	}
	return &out
}

// DefaultConfig returns a config with the package defaults: no base URL, no
// default headers, 30s timeout, 10s connect timeout, redirects followed up
// to 10 hops.
func DefaultConfig() *Config {
	return &Config{
		DefaultHeader:   http.Header{},
		Timeout:         DefaultTimeout,
		ConnectTimeout:  DefaultConnectTimeout,
		FollowRedirects: true,
		MaxRedirects:    DefaultMaxRedirects,
	}
}
