package reqid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	// Prefix for all generated request IDs.
	Prefix = "req"
	// IDLength is the number of hex characters after the prefix.
	IDLength = 8
)

// Generate creates a new request ID in the format "req-xxxxxxxx".
// Request IDs are attached to outgoing calls as X-Request-ID so the server
// can correlate retried attempts of the same logical call.
func Generate() (string, error) {
	bytes := make([]byte, IDLength/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate request ID: %w", err)
	}
	return fmt.Sprintf("%s-%s", Prefix, hex.EncodeToString(bytes)), nil
}

// MustGenerate creates a new request ID, panicking on error.
func MustGenerate() string {
	id, err := Generate()
	if err != nil {
		panic(err)
	}
	return id
}
