package vibe

import "context"

// TextGenerator is the capability the expander needs from a language model.
// Implementations return the raw text of the first completion choice, or an
// empty string when the model produced no content.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}
