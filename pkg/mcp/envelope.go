package mcp

import (
	"encoding/json"
	"fmt"
)

// payloadKeys is the fixed priority order for extracting the payload from a
// successful envelope. The first key present wins. The order is a
// compatibility contract shared by every language port of this SDK and must
// not change; endpoints that place their fields at the document root are
// served by the full-document fallback in decodeEnvelope.
var payloadKeys = [...]string{"data", "status", "agents", "analytics"}

// defaultErrorMessage is used when a failed envelope carries no error string.
const defaultErrorMessage = "Unknown error"

// decodeEnvelope decodes the server's response envelope and extracts the
// payload. A missing or falsy "ok", invalid JSON, or a non-object document is
// a server-reported failure, never a silent empty success.
func decodeEnvelope(statusCode int, raw []byte) (json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &MCPError{
			StatusCode: statusCode,
			Message:    fmt.Sprintf("malformed response envelope: %v", err),
		}
	}

	var ok bool
	if rawOK, exists := doc["ok"]; exists {
		// A non-boolean "ok" is treated as falsy.
		_ = json.Unmarshal(rawOK, &ok)
	}
	if !ok {
		return nil, &MCPError{
			StatusCode:  statusCode,
			Message:     envelopeErrorMessage(doc),
			RawResponse: rawResponseMap(raw),
		}
	}

	for _, key := range payloadKeys {
		if payload, exists := doc[key]; exists {
			return payload, nil
		}
	}

	// Endpoints that return their fields at the document root.
	return json.RawMessage(raw), nil
}

// unmarshalPayload decodes the extracted payload into the caller's result.
func unmarshalPayload(payload json.RawMessage, into any) error {
	if err := json.Unmarshal(payload, into); err != nil {
		return fmt.Errorf("failed to decode response payload: %w", err)
	}
	return nil
}

// envelopeError builds the MCPError for an HTTP-level failure response,
// pulling the message out of the envelope when one is decodable.
func envelopeError(statusCode int, raw []byte) *MCPError {
	msg := defaultErrorMessage
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err == nil {
		msg = envelopeErrorMessage(doc)
	}
	return &MCPError{
		StatusCode:  statusCode,
		Message:     msg,
		RawResponse: rawResponseMap(raw),
	}
}

// envelopeErrorMessage extracts the "error" field from a decoded envelope.
func envelopeErrorMessage(doc map[string]json.RawMessage) string {
	rawErr, exists := doc["error"]
	if !exists {
		return defaultErrorMessage
	}
	var s string
	if err := json.Unmarshal(rawErr, &s); err != nil || s == "" {
		// Some endpoints report structured errors; keep them readable.
		if len(rawErr) > 0 && string(rawErr) != "null" {
			return string(rawErr)
		}
		return defaultErrorMessage
	}
	return s
}

// rawResponseMap decodes the full response body generically for inclusion in
// MCPError.RawResponse. Returns nil when the body is not a JSON object.
func rawResponseMap(raw []byte) map[string]any {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
