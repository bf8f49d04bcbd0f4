// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse represents a plain confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}
