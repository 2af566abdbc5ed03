// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package httpkit

import (
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// envConfig maps HTTPKIT_* environment variables onto configuration fields.
// Every overridable field is a pointer so that an explicit zero value
// ("false", "0") can be told apart from "not set" when defaults are merged
// in; zero is meaningful for the timeouts (no explicit bound).
type envConfig struct {
	BaseURL         string         `env:"HTTPKIT_BASE_URL"`
	Timeout         *time.Duration `env:"HTTPKIT_TIMEOUT"`
	ConnectTimeout  *time.Duration `env:"HTTPKIT_CONNECT_TIMEOUT"`
	FollowRedirects *bool          `env:"HTTPKIT_FOLLOW_REDIRECTS"`
	MaxRedirects    *int           `env:"HTTPKIT_MAX_REDIRECTS"`
}

func defaultEnvConfig() envConfig {
	timeout := DefaultTimeout
	connect := DefaultConnectTimeout
	follow := true
	hops := DefaultMaxRedirects
	return envConfig{
		Timeout:         &timeout,
		ConnectTimeout:  &connect,
		FollowRedirects: &follow,
		MaxRedirects:    &hops,
	}
}

// ConfigFromEnv builds a [Config] from HTTPKIT_* environment variables,
// filling anything left unset from [DefaultConfig]. Recognised variables:
//
//	HTTPKIT_BASE_URL          absolute base URL (optional)
//	HTTPKIT_TIMEOUT           request timeout, Go duration syntax
//	HTTPKIT_CONNECT_TIMEOUT   connection timeout, Go duration syntax
//	HTTPKIT_FOLLOW_REDIRECTS  true/false
//	HTTPKIT_MAX_REDIRECTS     maximum redirect hops
//
// The merged values go through the same validation as [ConfigBuilder], so an
// invalid HTTPKIT_BASE_URL surfaces as a [ConfigurationError].
func ConfigFromEnv() (*Config, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return nil, &ConfigurationError{Reason: "parsing environment", Err: err}
	}

	if err := mergo.Merge(&ec, defaultEnvConfig()); err != nil {
		return nil, &ConfigurationError{Reason: "merging defaults", Err: err}
	}

	b := NewConfig().
		Timeout(*ec.Timeout).
		ConnectTimeout(*ec.ConnectTimeout).
		RedirectPolicy(*ec.FollowRedirects, *ec.MaxRedirects)
	if ec.BaseURL != "" {
		b = b.BaseURL(ec.BaseURL)
	}

	return b.Build()
}
