// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package httpkit is a convenience layer around the resty HTTP client that
// adds a fluent configuration builder, an ordered middleware pipeline, and
// JSON convenience methods.
//
// The package does not open sockets itself. Connection pooling, TLS, DNS
// resolution, and redirect following are delegated to the wrapped client
// behind the [Transport] interface; httpkit owns everything that happens
// before a request reaches the wire and after a response comes back from it.
//
// A typical client is assembled once and shared between goroutines:
//
//	cfg, err := httpkit.NewConfig().
//	    BaseURL("https://api.example.com").
//	    JSONHeaders().
//	    Timeout(30 * time.Second).
//	    Build()
//	if err != nil {
//	    // handle configuration error
//	}
//
//	client, err := httpkit.NewClient(cfg,
//	    httpkit.WithMiddleware(
//	        httpkit.Logging(log),
//	        httpkit.BearerAuth(token),
//	    ),
//	)
//
//	var user User
//	err = client.GetJSON(ctx, "/users/1", &user)
//
// Middleware hooks run strictly sequentially in registration order, for both
// the request phase and the response phase. See [Middleware] for the
// execution contract and [RetryPolicy] for the retry decorator that wraps
// the whole pipeline invocation.
package httpkit
