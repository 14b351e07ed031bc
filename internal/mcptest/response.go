package mcptest

import (
	"encoding/json"
	"net/http"
)

// writeOK writes a success envelope with the payload under the given key.
func writeOK(w http.ResponseWriter, status int, key string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"ok": true,
		key:  payload,
	})
}

// writeError writes a failure envelope with the given message.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"ok":    false,
		"error": message,
	})
}
