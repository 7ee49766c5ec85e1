package handlers

import (
	"net/http"

	identityservice "valfantasy/api/services/identity"

	"github.com/gin-gonic/gin"
)

// AuthHandler is the handler for the OAuth login endpoint.
type AuthHandler struct {
	identityService *identityservice.IdentityService
}

// NewAuthHandler creates a new instance of the auth handler.
func NewAuthHandler(service *identityservice.IdentityService) *AuthHandler {
	return &AuthHandler{
		identityService: service,
	}
}

// oauthBody carries the authorization code from the frontend callback.
type oauthBody struct {
	Code string `json:"code" binding:"required"`
}

// ExchangeDiscordCode handles the OAuth code exchange and login.
func (h *AuthHandler) ExchangeDiscordCode(c *gin.Context) {
	var body oauthBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.identityService.ResolveIdentity(c.Request.Context(), body.Code)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
