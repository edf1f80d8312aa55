package vibe

import (
	"context"
	"fmt"
)

// defaultTemperature favors variety over determinism: the same vibe asked
// twice should not produce the same ten songs.
const defaultTemperature = 0.7

const promptTemplate = `Suggest exactly 10 songs that match this vibe: %s

Rules:
- One song per line
- Format each line exactly as: Song Title – Artist Name
- Use an en-dash (–) between title and artist
- No numbering, no commentary, no extra text`

// Expander turns a mood/situation description into raw candidate-song text
// via a single-turn text generation call.
type Expander struct {
	generator   TextGenerator
	temperature float64
}

// NewExpander creates an Expander. A zero temperature selects the default.
func NewExpander(generator TextGenerator, temperature float64) *Expander {
	if temperature == 0 {
		temperature = defaultTemperature
	}
	return &Expander{
		generator:   generator,
		temperature: temperature,
	}
}

// Expand asks the generator for song candidates matching the vibe and
// returns the raw text. An empty completion is returned as "" rather than
// an error; it flows through the normalizer as zero queries. Call failures
// propagate, they are fatal for the request.
func (e *Expander) Expand(ctx context.Context, vibe string) (string, error) {
	prompt := fmt.Sprintf(promptTemplate, vibe)

	text, err := e.generator.Complete(ctx, prompt, e.temperature)
	if err != nil {
		return "", fmt.Errorf("expanding vibe: %w", err)
	}

	return text, nil
}
