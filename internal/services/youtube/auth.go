package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scope grants full playlist management on the authenticated account
const Scope = "https://www.googleapis.com/auth/youtube"

// LoadOAuthConfig reads an installed-app credentials.json and builds the
// OAuth config for the YouTube scope
func LoadOAuthConfig(credentialsPath string) (*oauth2.Config, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	cfg, err := google.ConfigFromJSON(data, Scope)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials file: %w", err)
	}

	return cfg, nil
}

// LoadTokenFile reads a previously issued token from a JSON file. Kept for
// deployments that mount token.json as a secret instead of using the
// database token store.
func LoadTokenFile(tokenPath string) (*oauth2.Token, error) {
	data, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("reading token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("parsing token file: %w", err)
	}

	return &token, nil
}

// NewAuthorizedClient wraps the token in an auto-refreshing HTTP client.
// Refresh happens inside the oauth2 transport; the pipeline treats the
// returned client as immutable.
func NewAuthorizedClient(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token) *http.Client {
	return cfg.Client(ctx, token)
}
