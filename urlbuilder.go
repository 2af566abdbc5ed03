package httpkit

import (
	"fmt"
	"net/url"
	"strings"
)

// URLBuilder assembles a URL from a base, path segments, and query
// parameters. Each path segment is percent-encoded independently: a slash
// inside a segment is escaped to %2F, never treated as a separator.
type URLBuilder struct {
	base     string
	segments []string
	query    *QueryBuilder
}

// URL returns a builder rooted at base.
func URL(base string) *URLBuilder {
	return &URLBuilder{base: base, query: Query()}
}

// Path appends a single path segment. The segment is encoded as a whole, so
// Path("a/b") yields ".../a%2Fb"; use [URLBuilder.Paths] for multiple
// segments.
func (b *URLBuilder) Path(segment string) *URLBuilder {
	b.segments = append(b.segments, segment)
	return b
}

// Paths appends several path segments in order.
func (b *URLBuilder) Paths(segments ...string) *URLBuilder {
	b.segments = append(b.segments, segments...)
	return b
}

// QueryParam appends a query parameter. Pairs keep insertion order.
func (b *URLBuilder) QueryParam(key, value string) *URLBuilder {
	b.query.Param(key, value)
	return b
}

// OptionalQueryParam appends the pair only when value is non-nil.
func (b *URLBuilder) OptionalQueryParam(key string, value *string) *URLBuilder {
	b.query.OptionalParam(key, value)
	return b
}

// Build assembles and validates the final URL. It fails with a
// [ConfigurationError] when the result does not parse as an absolute URL.
func (b *URLBuilder) Build() (string, error) {
	raw := strings.TrimRight(b.base, "/")

	for _, segment := range b.segments {
		raw += "/" + url.PathEscape(segment)
	}

	if qs := b.query.Build(); qs != "" {
		raw += "?" + qs
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", &ConfigurationError{Reason: fmt.Sprintf("invalid URL %q", raw), Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return "", &ConfigurationError{Reason: fmt.Sprintf("URL %q is not absolute", raw)}
	}

	return raw, nil
}
