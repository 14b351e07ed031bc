package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/toolforge/mcp-go/pkg/reqid"
)

// maxBackoffInterval caps the delay between attempts.
const maxBackoffInterval = 30 * time.Second

// retryJitter is the randomization factor applied to each backoff interval
// (±20%) to desynchronize concurrent retrying clients.
const retryJitter = 0.2

// do performs an HTTP request with retry. It returns the final status code
// and raw body on success, or the last observed error once retries are
// exhausted. Connection-level failures and 5xx responses are retried; 4xx
// responses are surfaced immediately.
func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	// The per-call timeout bounds the entire attempt sequence including
	// backoff sleeps. A caller-supplied deadline takes precedence.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	// One request ID per logical call, shared by all attempts, so the server
	// can correlate retries.
	requestID := reqid.MustGenerate()

	bo := c.newRetryBackoff(ctx)
	attempt := 0
	for {
		attempt++
		status, raw, err := c.attempt(ctx, method, path, payload, requestID)
		if err == nil {
			return status, raw, nil
		}
		if !retryable(err) {
			return status, raw, err
		}

		next := bo.NextBackOff()
		if next == backoff.Stop {
			return status, raw, err
		}

		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Int("attempt", attempt).
			Dur("backoff", next).
			Err(err).
			Msg("retrying request")

		select {
		case <-ctx.Done():
			return 0, nil, &ConnectionError{Err: ctx.Err()}
		case <-time.After(next):
		}
	}
}

// attempt performs a single HTTP round trip.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, requestID string) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &ConnectionError{Err: err}
	}

	if resp.StatusCode >= 400 {
		return resp.StatusCode, raw, envelopeError(resp.StatusCode, raw)
	}

	return resp.StatusCode, raw, nil
}

// newRetryBackoff builds the exponential backoff used between attempts:
// base retryDelay, doubling per attempt, capped at 30s, with ±20% jitter,
// bounded by the call context rather than an elapsed-time limit.
func (c *Client) newRetryBackoff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryDelay
	b.MaxInterval = maxBackoffInterval
	b.RandomizationFactor = retryJitter
	b.Multiplier = 2.0
	b.MaxElapsedTime = 0
	b.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxRetries)), ctx)
}

// retryable reports whether an attempt error may be retried: connection-level
// failures and 5xx responses only. 4xx responses are client errors and are
// surfaced immediately.
func retryable(err error) bool {
	if IsConnectionError(err) {
		return true
	}
	return IsServerError(err)
}

// call performs a request and decodes the envelope payload into result.
// Passing a nil result discards the payload after envelope validation.
func (c *Client) call(ctx context.Context, method, path string, body, result any) error {
	payload, err := c.callRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return unmarshalPayload(payload, result)
}

// callRaw performs a request and returns the extracted envelope payload
// without decoding it into a typed result.
func (c *Client) callRaw(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	status, raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(status, raw)
}
