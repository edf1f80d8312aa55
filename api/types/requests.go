package types

// GenerateRequest represents a playlist generation request
type GenerateRequest struct {
	// Mode selects how Content is interpreted: "manual" is a literal song
	// list, "vibe" is a mood description expanded by the text generator
	Mode    string `json:"mode" binding:"required" example:"manual"`
	Content string `json:"content" binding:"required" example:"1. Bohemian Rhapsody – Queen"`
	Title   string `json:"title,omitempty" example:"Friday night"`
}
