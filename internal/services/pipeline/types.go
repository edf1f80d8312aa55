package pipeline

import (
	"github.com/vibemix/playlist-api/internal/services/normalizer"
)

// Request modes
const (
	ModeManual = "manual"
	ModeVibe   = "vibe"
)

// Request is one playlist-generation request
type Request struct {
	Mode    string
	Content string
	Title   string
}

// ResolvedItem pairs a query with its search candidates, in relevance order.
// An empty candidate list means resolution found nothing (or failed); the
// item is skipped during assembly, never retried.
type ResolvedItem struct {
	Query      string
	Candidates []string
}

// Result is the outcome of a completed pipeline run
type Result struct {
	PlaylistID  string               `json:"playlistId"`
	PlaylistURL string               `json:"playlistURL"`
	Queries     int                  `json:"queries"`
	Resolved    int                  `json:"resolved"`
	Inserted    int                  `json:"inserted"`
	Warnings    []normalizer.Warning `json:"warnings,omitempty"`
}
