package models

import (
	"time"

	"gorm.io/gorm"
)

// AuthToken stores the OAuth token captured by the one-time `auth` bootstrap.
// There is exactly one row per provider; the pipeline itself never touches
// this table, it only receives the already-authenticated client.
type AuthToken struct {
	gorm.Model
	Provider     string    `json:"provider" gorm:"uniqueIndex;not null"`
	AccessToken  string    `json:"-" gorm:"not null"`
	RefreshToken string    `json:"-"`
	TokenType    string    `json:"token_type"`
	Expiry       time.Time `json:"expiry"`
}
