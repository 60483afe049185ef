package models

import "encoding/json"

// APIResponse is the envelope every endpoint wraps its payload in.
// On success Data holds the typed payload; on failure Message carries the
// server's description and Errors optionally lists per-field problems.
type APIResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
}
