package httpkit

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// ConfigBuilder assembles a [Config] through chained setter calls. Setters
// record validation failures instead of returning them, so a chain can be
// written without intermediate error checks; [ConfigBuilder.Build] reports
// everything that went wrong at once via [errors.Join].
//
// No network or other side effects happen during configuration; all
// validation is local and synchronous.
type ConfigBuilder struct {
	cfg *Config
	err error
}

// NewConfig returns a builder seeded with [DefaultConfig].
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{cfg: DefaultConfig()}
}

// BaseURL sets the base URL that relative request targets resolve against.
// The value must parse as an absolute URL.
func (b *ConfigBuilder) BaseURL(rawURL string) *ConfigBuilder {
	u, err := url.Parse(rawURL)
	if err != nil {
		b.fail(fmt.Sprintf("invalid base URL %q", rawURL), err)
		return b
	}
	if !u.IsAbs() || u.Host == "" {
		b.fail(fmt.Sprintf("base URL %q is not absolute", rawURL), nil)
		return b
	}

	b.cfg.BaseURL = u
	return b
}

// DefaultHeader sets a header attached to every request. Names are
// case-insensitive and the last write for a name wins. Values containing
// control characters are rejected.
func (b *ConfigBuilder) DefaultHeader(name, value string) *ConfigBuilder {
	if err := validateHeader(name, value); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.cfg.DefaultHeader.Set(name, value)
	return b
}

// JSONHeaders sets Content-Type and Accept to application/json.
func (b *ConfigBuilder) JSONHeaders() *ConfigBuilder {
	return b.
		DefaultHeader("Content-Type", "application/json").
		DefaultHeader("Accept", "application/json")
}

// UserAgent sets the User-Agent default header.
func (b *ConfigBuilder) UserAgent(ua string) *ConfigBuilder {
	return b.DefaultHeader("User-Agent", ua)
}

// Timeout bounds the dispatch phase of every request. Zero means "no
// explicit timeout" (the transport default applies); negative durations are
// rejected.
func (b *ConfigBuilder) Timeout(d time.Duration) *ConfigBuilder {
	if d < 0 {
		b.fail(fmt.Sprintf("negative timeout %v", d), nil)
		return b
	}

	b.cfg.Timeout = d
	return b
}

// ConnectTimeout bounds connection establishment. Zero means "no explicit
// timeout"; negative durations are rejected.
func (b *ConfigBuilder) ConnectTimeout(d time.Duration) *ConfigBuilder {
	if d < 0 {
		b.fail(fmt.Sprintf("negative connect timeout %v", d), nil)
		return b
	}

	b.cfg.ConnectTimeout = d
	return b
}

// RedirectPolicy configures redirect following. maxHops is ignored when
// follow is false; negative maxHops is rejected.
func (b *ConfigBuilder) RedirectPolicy(follow bool, maxHops int) *ConfigBuilder {
	if maxHops < 0 {
		b.fail(fmt.Sprintf("negative max redirects %d", maxHops), nil)
		return b
	}

	b.cfg.FollowRedirects = follow
	b.cfg.MaxRedirects = maxHops
	return b
}

// Build validates and freezes the configuration. On failure it returns every
// recorded [ConfigurationError] joined into one value; [errors.As] still
// matches the individual errors.
func (b *ConfigBuilder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.cfg.clone(), nil
}

func (b *ConfigBuilder) fail(reason string, cause error) {
	b.err = errors.Join(b.err, &ConfigurationError{Reason: reason, Err: cause})
}
