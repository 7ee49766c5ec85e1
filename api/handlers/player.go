package handlers

import (
	"net/http"

	"valfantasy/api/filters"
	playerservice "valfantasy/api/services/player"

	"github.com/gin-gonic/gin"
)

// PlayerHandler is the handler for the player endpoints.
type PlayerHandler struct {
	playerService *playerservice.PlayerService
}

// NewPlayerHandler creates a new instance of the player handler.
func NewPlayerHandler(service *playerservice.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: service,
	}
}

// GetPlayers handles requests for the draftable player listing.
func (h *PlayerHandler) GetPlayers(c *gin.Context) {
	var qp filters.PlayerListParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.playerService.ListPlayers(c.Request.Context(), qp.AsFilter())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
