package dto

import (
	"valfantasy/pkg/database/models"
)

// AuthResult is returned after a successful OAuth exchange.
type AuthResult struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// FromUser builds the auth payload from the upserted user record.
func (AuthResult) FromUser(user *models.User, token string) *AuthResult {
	return &AuthResult{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
	}
}
