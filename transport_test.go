package httpkit

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestyTransport_RoundTrip(t *testing.T) {
	var gotMethod, gotPath, gotHeader string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotHeader = r.Header.Get("X-Custom")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("X-Server", "test")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	transport := newRestyTransport(DefaultConfig())

	req := newTestRequest(t, http.MethodPost, server.URL+"/items")
	req.Header.Set("X-Custom", "value")
	req.Body = []byte(`{"name":"a"}`)

	resp, err := transport.Do(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/items", gotPath)
	assert.Equal(t, "value", gotHeader)
	assert.Equal(t, `{"name":"a"}`, string(gotBody))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "test", resp.Header.Get("X-Server"))
	assert.Equal(t, `{"ok":true}`, string(resp.Body))
}

func TestRestyTransport_NonSuccessStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "teapot", http.StatusTeapot)
	}))
	defer server.Close()

	transport := newRestyTransport(DefaultConfig())

	resp, err := transport.Do(context.Background(), newTestRequest(t, http.MethodGet, server.URL))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}

func TestRestyTransport_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusFound)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("moved here"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	transport := newRestyTransport(DefaultConfig())

	resp, err := transport.Do(context.Background(), newTestRequest(t, http.MethodGet, server.URL+"/old"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "moved here", string(resp.Body))
}

func TestRestyTransport_RedirectsDisabledReturnsRedirectResponse(t *testing.T) {
	var newHits int
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusFound)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, _ *http.Request) {
		newHits++
		_, _ = w.Write([]byte("moved here"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg, err := NewConfig().RedirectPolicy(false, 0).Build()
	require.NoError(t, err)
	transport := newRestyTransport(cfg)

	resp, err := transport.Do(context.Background(), newTestRequest(t, http.MethodGet, server.URL+"/old"))
	require.NoError(t, err, "a redirect with following disabled is data, not an error")

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/new", resp.Header.Get("Location"))
	assert.Zero(t, newHits, "the redirect target must never be fetched")
}

func TestRestyTransport_TimeoutClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("late"))
	}))
	defer server.Close()

	cfg, err := NewConfig().Timeout(20 * time.Millisecond).Build()
	require.NoError(t, err)
	transport := newRestyTransport(cfg)

	_, err = transport.Do(context.Background(), newTestRequest(t, http.MethodGet, server.URL))
	require.Error(t, err)

	var timeoutErr *TimeoutError
	assert.True(t, errors.As(classifyTransportError(err), &timeoutErr),
		"a dispatch timeout must classify as TimeoutError, got %v", err)
}

func TestRestyTransport_CancelledContext(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	transport := newRestyTransport(DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := transport.Do(ctx, newTestRequest(t, http.MethodGet, server.URL))
	require.Error(t, err)

	assert.Equal(t, context.Canceled, classifyTransportError(err))
}

func TestTransportFunc_Adapts(t *testing.T) {
	want := &Response{StatusCode: http.StatusOK}
	transport := TransportFunc(func(_ context.Context, _ *Request) (*Response, error) {
		return want, nil
	})

	got, err := transport.Do(context.Background(), newTestRequest(t, "GET", "https://api.example.com"))
	require.NoError(t, err)
	assert.Same(t, want, got)
}
