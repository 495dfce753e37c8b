// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Default values applied by [StructuredConfig.applyDefaults] to fields that no
// source has set.
const (
	DefaultPort             = 3000
	DefaultHost             = "127.0.0.1"
	DefaultRESTPath         = "/rest/v1"
	DefaultResource         = "trans_users"
	DefaultRemoteTimeout    = 10 * time.Second
	DefaultCommitRetries    = 3
	DefaultCommitRetryDelay = 100 * time.Millisecond
	DefaultServerTimeout    = 30 * time.Second
	DefaultTokenIssuer      = "go-user-bff"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultLogLevel         = "debug"
)

// StructuredConfig is the top-level configuration container of the service.
// It is populated by merging values from environment variables, command-line
// flags, and an optional JSON file, and is passed explicitly into every
// constructor that needs it.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, hashing and logging settings.
	App App `envPrefix:"APP_"`

	// Remote holds the coordinates of the REST datastore.
	Remote Remote `envPrefix:"SUPABASE_"`

	// Server holds inbound HTTP settings.
	Server Server `envPrefix:"SERVER_"`

	// Port is the optional listening port used when Server.HTTPAddress is not
	// set explicitly.
	// Env: PORT
	Port int `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the work factor for password hashing.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Remote holds the settings of the REST datastore reached over HTTP.
type Remote struct {
	// URL is the base URL of the datastore (required).
	// Env: SUPABASE_URL
	URL string `env:"URL"`

	// APIKey is sent as the "apikey" header on every call (required).
	// Env: SUPABASE_ANON_KEY
	APIKey string `env:"ANON_KEY"`

	// RESTPath is the path prefix of the REST API under URL.
	// Env: SUPABASE_REST_PATH
	RESTPath string `env:"REST_PATH"`

	// Resource is the name of the user collection.
	// Env: SUPABASE_RESOURCE
	Resource string `env:"RESOURCE"`

	// RequestTimeout bounds every single remote call.
	// Env: SUPABASE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CommitRetries is how many times a failed commit RPC is retried before
	// the outcome is reported as indeterminate. Nil means unset; zero disables
	// retries.
	// Env: SUPABASE_COMMIT_RETRIES
	CommitRetries *int `env:"COMMIT_RETRIES"`

	// CommitRetryDelay is the base delay of the exponential commit backoff.
	// Env: SUPABASE_COMMIT_RETRY_DELAY
	CommitRetryDelay time.Duration `env:"COMMIT_RETRY_DELAY"`
}

// Server holds inbound HTTP settings.
type Server struct {
	// HTTPAddress is the listening address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the number of requests per minute allowed per client IP.
	// Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`

	// CORSOrigins lists the allowed CORS origins. Empty disables CORS headers.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables (a local .env file is loaded first, if present)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields that are still empty afterwards.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = net.JoinHostPort(DefaultHost, strconv.Itoa(cfg.Port))
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultServerTimeout
	}

	if cfg.Remote.RESTPath == "" {
		cfg.Remote.RESTPath = DefaultRESTPath
	}
	if cfg.Remote.Resource == "" {
		cfg.Remote.Resource = DefaultResource
	}
	if cfg.Remote.RequestTimeout == 0 {
		cfg.Remote.RequestTimeout = DefaultRemoteTimeout
	}
	if cfg.Remote.CommitRetries == nil {
		retries := DefaultCommitRetries
		cfg.Remote.CommitRetries = &retries
	}
	if cfg.Remote.CommitRetryDelay == 0 {
		cfg.Remote.CommitRetryDelay = DefaultCommitRetryDelay
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
}

// CommitRetryCount returns the configured number of commit retries, or
// [DefaultCommitRetries] when none was set.
func (r Remote) CommitRetryCount() int {
	if r.CommitRetries == nil {
		return DefaultCommitRetries
	}
	return *r.CommitRetries
}
