package httpkit

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBufferLogger creates a logger that writes JSON records into buf.
func newBufferLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf)
}

func TestLogging_RequestRecord(t *testing.T) {
	var buf bytes.Buffer
	mw := Logging(newBufferLogger(&buf))

	req := newTestRequest(t, http.MethodGet, "https://api.example.com/users")
	require.NoError(t, mw.ProcessRequest(context.Background(), req))

	out := buf.String()
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"url":"https://api.example.com/users"`)
	assert.Contains(t, out, "http request")
}

func TestLogging_ResponseRecord(t *testing.T) {
	var buf bytes.Buffer
	mw := Logging(newBufferLogger(&buf))

	req := newTestRequest(t, http.MethodPost, "https://api.example.com/users")
	resp := &Response{
		StatusCode: http.StatusCreated,
		Body:       []byte("created"),
		Request:    req,
		Duration:   1500 * time.Millisecond,
	}
	require.NoError(t, mw.ProcessResponse(context.Background(), resp))

	out := buf.String()
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"size":7`)
	assert.Contains(t, out, `"duration":`)
	assert.Contains(t, out, "http response")
}

func TestLogging_NeverMutates(t *testing.T) {
	var buf bytes.Buffer
	mw := Logging(newBufferLogger(&buf))

	req := newTestRequest(t, http.MethodGet, "https://api.example.com/x")
	req.Header.Set("X-A", "1")
	req.Body = []byte("payload")

	require.NoError(t, mw.ProcessRequest(context.Background(), req))

	assert.Equal(t, "1", req.Header.Get("X-A"))
	assert.Equal(t, []byte("payload"), req.Body)
}

func TestLoggingRequests_SkipsResponses(t *testing.T) {
	var buf bytes.Buffer
	mw := LoggingRequests(newBufferLogger(&buf))

	require.NoError(t, mw.ProcessResponse(context.Background(), &Response{StatusCode: 200}))
	assert.Empty(t, buf.String())
}

func TestLoggingResponses_SkipsRequests(t *testing.T) {
	var buf bytes.Buffer
	mw := LoggingResponses(newBufferLogger(&buf))

	require.NoError(t, mw.ProcessRequest(context.Background(), newTestRequest(t, "GET", "https://api.example.com/x")))
	assert.Empty(t, buf.String())
}
