package types

import "github.com/vibemix/playlist-api/internal/services/normalizer"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// GenerateResponse for successful playlist generation. PlaylistURL is
// always usable even when only part of the input resolved.
type GenerateResponse struct {
	BaseResponse
	PlaylistURL string               `json:"playlistURL"`
	PlaylistID  string               `json:"playlistId"`
	Queries     int                  `json:"queries"`  // Normalized input lines
	Resolved    int                  `json:"resolved"` // Lines with at least one candidate
	Inserted    int                  `json:"inserted"` // Videos actually added
	Warnings    []normalizer.Warning `json:"warnings,omitempty"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Services map[string]interface{} `json:"services,omitempty"`
}
