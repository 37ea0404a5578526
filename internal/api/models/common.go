// Package models defines request and response types for the rootwalk
// REST API. All types are JSON-serializable.
package models

// ErrorResponse is the error payload for failed requests. State names
// the terminal resolution state when a lookup failed ("no_glue",
// "depth_exceeded", "protocol_error", "transport_failure").
type ErrorResponse struct {
	Error string `json:"error"`
	State string `json:"state,omitempty"`
}

// StatusResponse is a simple status payload.
type StatusResponse struct {
	Status string `json:"status"`
}
