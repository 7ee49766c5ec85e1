package identityservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"valfantasy/api/services/testutil"
	"valfantasy/pkg/apperrors"
	"valfantasy/pkg/config"
	"valfantasy/pkg/database/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

// fakeProvider stands in for the OAuth endpoints. The token handler
// checks the exchanged form, the user handler checks the bearer token.
func fakeProvider(t *testing.T, profile map[string]string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))

		if r.PostForm.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "provider-token",
			"token_type":   "Bearer",
		})
	})

	mux.HandleFunc("/users/@me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer provider-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(profile)
	})

	return httptest.NewServer(mux)
}

func setupTestService(t *testing.T, provider *httptest.Server) (*IdentityService, *testutil.MockUserRepository) {
	t.Helper()

	service := NewIdentityService(&IdentityServiceDeps{
		DB: new(gorm.DB),
		Discord: config.DiscordConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURI:  "http://localhost/callback",
		},
		Auth: config.AuthConfig{
			JWTSecret:  testJWTSecret,
			SessionTTL: time.Hour,
		},
		HTTPClient: provider.Client(),
		TokenURL:   provider.URL + "/oauth2/token",
		UserURL:    provider.URL + "/users/@me",
	})

	mockUserRepository := new(testutil.MockUserRepository)
	service.UserRepository = mockUserRepository

	return service, mockUserRepository
}

func TestResolveIdentity(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		provider := fakeProvider(t, map[string]string{
			"id":            "123456789",
			"username":      "shroud",
			"discriminator": "0",
			"avatar":        "abc123",
		})
		defer provider.Close()

		service, mockUserRepository := setupTestService(t, provider)

		mockUserRepository.On("Upsert", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.ID == "123456789" &&
				user.Username == "shroud" &&
				user.AvatarURL == "https://cdn.discordapp.com/avatars/123456789/abc123.png"
		})).Return(nil)

		result, err := service.ResolveIdentity(context.Background(), "good-code")

		assert.NoError(t, err)
		assert.Equal(t, "123456789", result.UserID)
		assert.Equal(t, "shroud", result.Username)
		assert.NotEmpty(t, result.Token)

		// The issued session must verify with the configured secret and
		// carry the provider id as subject.
		parsed, err := jwt.Parse(result.Token, func(token *jwt.Token) (any, error) {
			return []byte(testJWTSecret), nil
		})
		assert.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "123456789", claims["sub"])

		testutil.VerifyAllMocks(t, mockUserRepository)
	})

	t.Run("legacyDiscriminator", func(t *testing.T) {
		provider := fakeProvider(t, map[string]string{
			"id":            "42",
			"username":      "old",
			"discriminator": "1337",
		})
		defer provider.Close()

		service, mockUserRepository := setupTestService(t, provider)

		mockUserRepository.On("Upsert", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Username == "old#1337" && user.AvatarURL == ""
		})).Return(nil)

		result, err := service.ResolveIdentity(context.Background(), "good-code")

		assert.NoError(t, err)
		assert.Equal(t, "old#1337", result.Username)

		testutil.VerifyAllMocks(t, mockUserRepository)
	})

	t.Run("rejectedCode", func(t *testing.T) {
		provider := fakeProvider(t, map[string]string{"id": "42", "username": "old"})
		defer provider.Close()

		service, mockUserRepository := setupTestService(t, provider)

		result, err := service.ResolveIdentity(context.Background(), "bad-code")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)

		mockUserRepository.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("providerDown", func(t *testing.T) {
		provider := fakeProvider(t, nil)
		provider.Close()

		service, _ := setupTestService(t, provider)

		result, err := service.ResolveIdentity(context.Background(), "good-code")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	})

	t.Run("emptyProfileID", func(t *testing.T) {
		provider := fakeProvider(t, map[string]string{"username": "noid"})
		defer provider.Close()

		service, mockUserRepository := setupTestService(t, provider)

		result, err := service.ResolveIdentity(context.Background(), "good-code")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)

		mockUserRepository.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}
