package common

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// ErrMissingAPIKey is wrapped by the ConfigurationError returned when no credential resolves
var ErrMissingAPIKey = errors.New("API key is not set")

// BaseClient contains connection settings shared by completion clients
type BaseClient struct {
	Keys    KeySource
	KeyName string
	BaseURL string
	Logger  *slog.Logger

	// zero means no timeout
	Timeout time.Duration
}

// ClientOption configures a BaseClient using the functional options pattern
type ClientOption func(*BaseClient)

// WithLogger sets the logger for any client
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *BaseClient) {
		c.Logger = logger
	}
}

// WithBaseURL sets the base URL for any client
func WithBaseURL(url string) ClientOption {
	return func(c *BaseClient) {
		c.BaseURL = url
	}
}

// WithTimeout bounds each request; zero disables the bound
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *BaseClient) {
		c.Timeout = timeout
	}
}

// WithKeyName sets the setting name reported when the credential is missing
func WithKeyName(name string) ClientOption {
	return func(c *BaseClient) {
		c.KeyName = name
	}
}

// NewBaseClient creates a base client with sensible defaults
func NewBaseClient(keys KeySource, defaultBaseURL string, opts ...ClientOption) *BaseClient {
	c := &BaseClient{
		Keys:    keys,
		BaseURL: defaultBaseURL,
		Logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}

	return c
}

// ResolveAPIKey reads the credential from the key source
func (c *BaseClient) ResolveAPIKey() (string, error) {
	var key string
	if c.Keys != nil {
		key = strings.TrimSpace(c.Keys())
	}
	if key == "" {
		return "", &ConfigurationError{Key: c.KeyName, Err: ErrMissingAPIKey}
	}
	return key, nil
}

// NewHTTPClient builds a single-use HTTP client that sends apiKey as a bearer token
// callers run the returned release func once the response has been consumed
func (c *BaseClient) NewHTTPClient(apiKey string) (*http.Client, func()) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	client := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey}),
			Base:   transport,
		},
		Timeout: c.Timeout,
	}

	return client, transport.CloseIdleConnections
}
