package tokens

import (
	"context"
	"errors"
	"fmt"

	"github.com/vibemix/playlist-api/internal/models"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

// ProviderYouTube is the provider key for the YouTube OAuth token
const ProviderYouTube = "youtube"

// ErrNotFound indicates no token has been stored for the provider yet
var ErrNotFound = errors.New("no stored token for provider")

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new token repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// Save upserts the token for a provider
func (r *RepositoryImpl) Save(ctx context.Context, provider string, token *oauth2.Token) error {
	if token == nil || token.AccessToken == "" {
		return fmt.Errorf("token must carry an access token")
	}

	record := models.AuthToken{
		Provider:     provider,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	}

	var existing models.AuthToken
	err := r.db.WithContext(ctx).Where("provider = ?", provider).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
			return fmt.Errorf("creating token: %w", err)
		}
	case err != nil:
		return fmt.Errorf("looking up token: %w", err)
	default:
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
			return fmt.Errorf("updating token: %w", err)
		}
	}

	return nil
}

// Get returns the stored token for a provider
func (r *RepositoryImpl) Get(ctx context.Context, provider string) (*oauth2.Token, error) {
	var record models.AuthToken
	if err := r.db.WithContext(ctx).Where("provider = ?", provider).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting token: %w", err)
	}

	return &oauth2.Token{
		AccessToken:  record.AccessToken,
		RefreshToken: record.RefreshToken,
		TokenType:    record.TokenType,
		Expiry:       record.Expiry,
	}, nil
}
