// Package types holds the wire envelopes every handler writes.
package types

// SuccessEnvelope wraps 2xx payloads under a single data key.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-visible error body. Details is populated only for
// codes whose metadata allows it.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps an APIError under a single error key.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
