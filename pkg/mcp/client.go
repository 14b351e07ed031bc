package mcp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "1.0.0"

// userAgent identifies the SDK and version on every request.
const userAgent = "mcp-go-sdk/" + Version

// Client is an HTTP client for the MCP task-orchestration server API.
//
// A Client holds no mutable state after construction and is safe for
// concurrent use from any number of goroutines. Construct one long-lived
// Client per process and share it by reference.
type Client struct {
	baseURL    string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	headers    map[string]string
	http       *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new MCP client for the server at baseURL.
//
// Example:
//
//	client, err := mcp.NewClient("http://localhost:8765",
//	    mcp.WithTimeout(10*time.Second),
//	    mcp.WithMaxRetries(2),
//	)
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL scheme %q: must be http or https", u.Scheme)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		// No transport-level timeout: the per-call context bounds the whole
		// attempt sequence instead.
		hc = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    cfg.timeout,
		maxRetries: cfg.maxRetries,
		retryDelay: cfg.retryDelay,
		headers:    cfg.headers,
		http:       hc,
		logger:     cfg.logger,
	}, nil
}

// GetStatus retrieves server status and version information.
func (c *Client) GetStatus(ctx context.Context) (*ServerStatus, error) {
	var status ServerStatus
	if err := c.call(ctx, http.MethodGet, "/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetHealth performs a health check and returns the server's health map.
func (c *Client) GetHealth(ctx context.Context) (map[string]any, error) {
	var health map[string]any
	if err := c.call(ctx, http.MethodGet, "/health", nil, &health); err != nil {
		return nil, err
	}
	return health, nil
}
