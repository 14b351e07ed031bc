package mcp

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Defaults for the client configuration.
const (
	// DefaultTimeout bounds the entire attempt sequence of a call,
	// including backoff sleeps, not each individual attempt.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxRetries is the number of additional attempts after the first.
	DefaultMaxRetries = 3
	// DefaultRetryDelay is the base interval for exponential backoff.
	DefaultRetryDelay = 1 * time.Second
)

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// clientConfig holds the configuration for a Client.
type clientConfig struct {
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	headers    map[string]string
	httpClient *http.Client
	logger     zerolog.Logger
}

// defaultConfig returns the default client configuration.
func defaultConfig() *clientConfig {
	return &clientConfig{
		timeout:    DefaultTimeout,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
		headers:    make(map[string]string),
		logger:     zerolog.Nop(),
	}
}

// WithTimeout sets the per-call timeout. The timeout covers the whole retry
// sequence of a call; a caller-supplied context deadline takes precedence.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets the number of additional attempts made after the first
// for connection-level failures and 5xx responses. Zero disables retries.
func WithMaxRetries(n int) ClientOption {
	return func(c *clientConfig) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// WithRetryDelay sets the base backoff interval. The delay doubles per
// attempt, capped at 30s, with ±20% jitter.
func WithRetryDelay(d time.Duration) ClientOption {
	return func(c *clientConfig) {
		if d > 0 {
			c.retryDelay = d
		}
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) ClientOption {
	return func(c *clientConfig) {
		c.headers[key] = value
	}
}

// WithHeaders adds a set of headers sent on every request.
func WithHeaders(headers map[string]string) ClientOption {
	return func(c *clientConfig) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. The supplied client
// should not set its own Timeout; the per-call timeout already bounds the
// whole attempt sequence and a transport-level timeout would additionally
// bound each attempt.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for debug-level retry events. Errors are
// always returned to the caller, never logged in their place; the default is
// a no-op logger.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// ListTasksOption configures a ListTasks call.
type ListTasksOption func(*listTasksOptions)

// listTasksOptions holds options for listing tasks.
type listTasksOptions struct {
	status TaskStatus
	agent  string
}

// WithStatusFilter filters tasks by status.
func WithStatusFilter(status TaskStatus) ListTasksOption {
	return func(o *listTasksOptions) {
		o.status = status
	}
}

// WithAgentFilter filters tasks by the agent they are assigned to.
func WithAgentFilter(agent string) ListTasksOption {
	return func(o *listTasksOptions) {
		o.agent = agent
	}
}
