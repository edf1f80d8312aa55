package tokens

import (
	"context"

	"golang.org/x/oauth2"
)

// Repository defines the interface for OAuth token persistence
type Repository interface {
	// Save upserts the token for a provider
	Save(ctx context.Context, provider string, token *oauth2.Token) error

	// Get returns the stored token for a provider, or ErrNotFound
	Get(ctx context.Context, provider string) (*oauth2.Token, error)
}
