package httpkit

import (
	"net/url"
	"strings"
)

// QueryBuilder accumulates query parameters in insertion order. Values are
// percent-encoded only when the query is built, so the builder itself is a
// pure data container.
type QueryBuilder struct {
	params []queryParam
}

type queryParam struct {
	key   string
	value string
}

// Query returns an empty query builder.
func Query() *QueryBuilder {
	return &QueryBuilder{}
}

// Param appends a key/value pair.
func (b *QueryBuilder) Param(key, value string) *QueryBuilder {
	b.params = append(b.params, queryParam{key: key, value: value})
	return b
}

// OptionalParam appends the pair only when value is non-nil. A nil value is
// a no-op, which keeps call sites free of conditionals around optional
// filters.
func (b *QueryBuilder) OptionalParam(key string, value *string) *QueryBuilder {
	if value == nil {
		return b
	}
	return b.Param(key, *value)
}

// Params appends every pair from m. Map iteration order is not defined, so
// use repeated [QueryBuilder.Param] calls when relative order matters.
func (b *QueryBuilder) Params(m map[string]string) *QueryBuilder {
	for key, value := range m {
		b = b.Param(key, value)
	}
	return b
}

// Values returns the parameters as url.Values. Insertion order of values
// under the same key is preserved; ordering across keys is lost, as
// url.Values is a map.
func (b *QueryBuilder) Values() url.Values {
	values := url.Values{}
	for _, p := range b.params {
		values.Add(p.key, p.value)
	}
	return values
}

// Build returns the percent-encoded query string without the leading "?",
// with pairs in insertion order.
func (b *QueryBuilder) Build() string {
	if len(b.params) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, p := range b.params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}
