package httpkit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "request error",
			err:  &RequestError{Err: errors.New("connection refused")},
			want: "request error: connection refused",
		},
		{
			name: "timeout error",
			err:  &TimeoutError{Err: errors.New("deadline exceeded")},
			want: "timeout error: deadline exceeded",
		},
		{
			name: "response error",
			err:  &ResponseError{StatusCode: 404, Body: "not found"},
			want: "http 404: not found",
		},
		{
			name: "serialization error",
			err:  &SerializationError{Err: errors.New("unexpected end of JSON input")},
			want: "serialization error: unexpected end of JSON input",
		},
		{
			name: "configuration error without cause",
			err:  &ConfigurationError{Reason: "empty bearer token"},
			want: "configuration error: empty bearer token",
		},
		{
			name: "middleware error",
			err:  &MiddlewareError{Name: "auth", Err: errors.New("boom")},
			want: `middleware "auth": boom`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorUnwrapping(t *testing.T) {
	cause := errors.New("root cause")

	assert.ErrorIs(t, &RequestError{Err: cause}, cause)
	assert.ErrorIs(t, &TimeoutError{Err: cause}, cause)
	assert.ErrorIs(t, &SerializationError{Err: cause}, cause)
	assert.ErrorIs(t, &ConfigurationError{Reason: "r", Err: cause}, cause)
	assert.ErrorIs(t, &MiddlewareError{Name: "m", Err: cause}, cause)
}

type fakeNetError struct{ timeout bool }

func (e fakeNetError) Error() string   { return "fake net error" }
func (e fakeNetError) Timeout() bool   { return e.timeout }
func (e fakeNetError) Temporary() bool { return false }

func TestClassifyTransportError(t *testing.T) {
	t.Run("cancellation passes through untouched", func(t *testing.T) {
		err := classifyTransportError(context.Canceled)
		assert.Equal(t, context.Canceled, err)
	})

	t.Run("deadline becomes TimeoutError", func(t *testing.T) {
		err := classifyTransportError(context.DeadlineExceeded)

		var timeoutErr *TimeoutError
		require.True(t, errors.As(err, &timeoutErr))
	})

	t.Run("net timeout becomes TimeoutError", func(t *testing.T) {
		err := classifyTransportError(fakeNetError{timeout: true})

		var timeoutErr *TimeoutError
		require.True(t, errors.As(err, &timeoutErr))
	})

	t.Run("anything else becomes RequestError", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := classifyTransportError(cause)

		var reqErr *RequestError
		require.True(t, errors.As(err, &reqErr))
		assert.ErrorIs(t, err, cause)
	})
}
