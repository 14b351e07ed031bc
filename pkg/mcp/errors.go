package mcp

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the common capability of every error the SDK surfaces.
// Exactly two concrete kinds implement it: *ConnectionError when no usable
// HTTP response was received, and *MCPError when the server reported failure.
type APIError interface {
	error
	apiError()
}

// ConnectionError indicates the transport never got a usable HTTP response:
// DNS failure, refused connection, timeout, TLS failure, or caller
// cancellation.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func (*ConnectionError) apiError() {}

// MCPError indicates a response was received but the server reported failure:
// the envelope carried ok=false, the HTTP status indicated an error, or the
// response body was malformed. RawResponse holds the decoded envelope (when
// decodable) so callers can inspect the full server reply.
type MCPError struct {
	StatusCode  int
	Message     string
	RawResponse map[string]any
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error (%d): %s", e.StatusCode, e.Message)
}

func (*MCPError) apiError() {}

// IsConnectionError reports whether err is (or wraps) a ConnectionError.
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// IsMCPError reports whether err is (or wraps) an MCPError.
func IsMCPError(err error) bool {
	var me *MCPError
	return errors.As(err, &me)
}

// AsMCPError extracts the MCPError from err, if any.
func AsMCPError(err error) (*MCPError, bool) {
	var me *MCPError
	if errors.As(err, &me) {
		return me, true
	}
	return nil, false
}

// IsNotFound reports whether err is an MCPError with HTTP status 404.
func IsNotFound(err error) bool {
	me, ok := AsMCPError(err)
	return ok && me.StatusCode == http.StatusNotFound
}

// IsServerError reports whether err is an MCPError with a 5xx HTTP status.
func IsServerError(err error) bool {
	me, ok := AsMCPError(err)
	return ok && me.StatusCode >= 500
}
