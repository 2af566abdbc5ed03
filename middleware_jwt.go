// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package httpkit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSource produces a fresh bearer token. It is called from the request
// phase and may perform its own I/O; the pipeline does not time-bound it.
type TokenSource func(ctx context.Context) (string, error)

// jwtAuthMiddleware is a stateful bearer-auth middleware: it caches the last
// token issued by its source and refreshes it when the JWT exp claim falls
// inside the leeway window. The cache is guarded by its own mutex, since a
// middleware instance is shared by concurrent requests.
//
// The token is parsed without signature verification; the middleware only
// needs the expiry claim, not trust in it.
type jwtAuthMiddleware struct {
	source TokenSource
	leeway time.Duration
	parser *jwt.Parser

	mu    sync.Mutex
	token string
}

// JWTAuth returns a middleware that keeps a JWT bearer token attached to
// every request, refreshing it through source once the token's exp claim is
// within leeway of expiring. Tokens without an exp claim are treated as
// non-expiring; tokens that do not parse as JWTs at all are replaced on the
// next request.
func JWTAuth(source TokenSource, leeway time.Duration) Middleware {
	return &jwtAuthMiddleware{
		source: source,
		leeway: leeway,
		parser: jwt.NewParser(),
	}
}

func (m *jwtAuthMiddleware) Name() string { return "jwt_auth" }

func (m *jwtAuthMiddleware) ProcessRequest(ctx context.Context, req *Request) error {
	token, err := m.currentToken(ctx)
	if err != nil {
		return fmt.Errorf("refresh token: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

func (m *jwtAuthMiddleware) ProcessResponse(_ context.Context, _ *Response) error {
	return nil
}

func (m *jwtAuthMiddleware) currentToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" && !m.expiring(m.token) {
		return m.token, nil
	}

	token, err := m.source(ctx)
	if err != nil {
		return "", err
	}

	m.token = token
	return token, nil
}

// expiring reports whether the token's exp claim is inside the leeway
// window. Unparseable tokens count as expiring so a bad cached value heals
// itself.
func (m *jwtAuthMiddleware) expiring(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := m.parser.ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return time.Until(exp.Time) <= m.leeway
}
