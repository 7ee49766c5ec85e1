package handlers

import (
	"net/http"

	leaderboardservice "valfantasy/api/services/leaderboard"

	"github.com/gin-gonic/gin"
)

// LeaderboardHandler is the handler for the leaderboard endpoint.
type LeaderboardHandler struct {
	leaderboardService *leaderboardservice.LeaderboardService
}

// NewLeaderboardHandler creates a new instance of the leaderboard handler.
func NewLeaderboardHandler(service *leaderboardservice.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: service,
	}
}

// GetLeaderboard handles requests for the ranked user totals.
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	result, err := h.leaderboardService.GetLeaderboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
