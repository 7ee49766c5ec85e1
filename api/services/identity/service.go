package identityservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"valfantasy/api/dto"
	userrepo "valfantasy/api/repositories/user"
	"valfantasy/pkg/apperrors"
	"valfantasy/pkg/config"
	"valfantasy/pkg/database/models"
	"valfantasy/pkg/messages"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

const (
	defaultTokenURL = "https://discord.com/api/oauth2/token"
	defaultUserURL  = "https://discord.com/api/users/@me"
)

// IdentityService exchanges an OAuth authorization code for a local
// identity record and a session token. The provider itself is opaque,
// the service only cares about a stable id and the profile fields.
type IdentityService struct {
	db             *gorm.DB
	httpClient     *http.Client
	discord        config.DiscordConfig
	auth           config.AuthConfig
	tokenURL       string
	userURL        string
	UserRepository userrepo.UserRepository
}

// IdentityServiceDeps is the dependency list for the identity service.
type IdentityServiceDeps struct {
	DB      *gorm.DB
	Discord config.DiscordConfig
	Auth    config.AuthConfig

	// Overridable for tests, default to the Discord API.
	HTTPClient *http.Client
	TokenURL   string
	UserURL    string
}

// NewIdentityService creates a identity service.
func NewIdentityService(deps *IdentityServiceDeps) *IdentityService {
	httpClient := deps.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	tokenURL := deps.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}

	userURL := deps.UserURL
	if userURL == "" {
		userURL = defaultUserURL
	}

	return &IdentityService{
		db:             deps.DB,
		httpClient:     httpClient,
		discord:        deps.Discord,
		auth:           deps.Auth,
		tokenURL:       tokenURL,
		userURL:        userURL,
		UserRepository: userrepo.NewUserRepository(deps.DB),
	}
}

// discordTokenResponse is the OAuth token exchange payload.
type discordTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// discordUser is the profile payload from the provider.
type discordUser struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar"`
}

// ResolveIdentity exchanges the authorization code, upserts the local
// identity record and issues a session token. The upsert runs on every
// login so the profile fields stay current.
func (is *IdentityService) ResolveIdentity(ctx context.Context, code string) (*dto.AuthResult, error) {
	accessToken, err := is.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	profile, err := is.fetchProfile(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        profile.ID,
		Username:  displayName(profile),
		AvatarURL: avatarURL(profile),
	}

	if err := is.UserRepository.Upsert(ctx, user); err != nil {
		return nil, err
	}

	token, err := is.signSession(user)
	if err != nil {
		return nil, err
	}

	var dtoHelper dto.AuthResult
	return dtoHelper.FromUser(user, token), nil
}

// exchangeCode trades the authorization code for an access token.
func (is *IdentityService) exchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{
		"client_id":     {is.discord.ClientID},
		"client_secret": {is.discord.ClientSecret},
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {is.discord.RedirectURI},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, is.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := is.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", messages.OAuthExchangeFailed, apperrors.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s (status %d): %w", messages.OAuthExchangeFailed, resp.StatusCode, apperrors.ErrUpstreamUnavailable)
	}

	var tokenResp discordTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("%s: %w", messages.OAuthExchangeFailed, apperrors.ErrUpstreamUnavailable)
	}

	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("%s: empty access token: %w", messages.OAuthExchangeFailed, apperrors.ErrUpstreamUnavailable)
	}

	return tokenResp.AccessToken, nil
}

// fetchProfile reads the provider profile with the access token.
func (is *IdentityService) fetchProfile(ctx context.Context, accessToken string) (*discordUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, is.userURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := is.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", messages.OAuthExchangeFailed, apperrors.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s (status %d): %w", messages.OAuthExchangeFailed, resp.StatusCode, apperrors.ErrUpstreamUnavailable)
	}

	var profile discordUser
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%s: %w", messages.OAuthExchangeFailed, apperrors.ErrUpstreamUnavailable)
	}

	if profile.ID == "" {
		return nil, fmt.Errorf("%s: empty user id: %w", messages.OAuthExchangeFailed, apperrors.ErrUpstreamUnavailable)
	}

	return &profile, nil
}

// signSession issues the HS256 session token for the user.
func (is *IdentityService) signSession(user *models.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(is.auth.SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(is.auth.JWTSecret))
}

// displayName mirrors the provider display rules: legacy accounts keep
// the name#discriminator form, migrated accounts just the username.
func displayName(profile *discordUser) string {
	if profile.Discriminator != "" && profile.Discriminator != "0" {
		return profile.Username + "#" + profile.Discriminator
	}
	return profile.Username
}

// avatarURL builds the CDN avatar location, empty when the user has none.
func avatarURL(profile *discordUser) string {
	if profile.Avatar == "" {
		return ""
	}
	return fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.png", profile.ID, profile.Avatar)
}
