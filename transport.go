// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package httpkit

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=transport.go -destination=internal/mock/transport_mock.go -package=mock

// Transport executes a fully-formed request and returns the raw response.
// It is the only network-facing boundary of the package; everything else is
// data transformation around it.
//
// Implementations receive the request after all request-phase middleware
// mutations and must honour ctx cancellation.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a plain function to the [Transport] interface.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

// Do calls f.
func (f TransportFunc) Do(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// restyTransport is the default dispatch backend. It delegates connection
// pooling, TLS, redirect following, and body transport to a resty client
// configured from the frozen [Config].
type restyTransport struct {
	client *resty.Client
}

func newRestyTransport(cfg *Config) *restyTransport {
	client := resty.New()

	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.ConnectTimeout > 0 {
		client.SetTransport(&http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   cfg.ConnectTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
		})
	}

	if cfg.FollowRedirects {
		client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(cfg.MaxRedirects))
	} else {
		// ErrUseLastResponse makes net/http hand the 3xx back as an ordinary
		// response instead of failing the request.
		client.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))
	}

	return &restyTransport{client: client}
}

func (t *restyTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	r := t.client.R().
		SetContext(ctx).
		SetHeaderMultiValues(req.Header)
	if len(req.Body) > 0 {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL.String())
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}
