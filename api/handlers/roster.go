package handlers

import (
	"errors"
	"net/http"

	"valfantasy/api/middleware"
	rosterservice "valfantasy/api/services/roster"
	"valfantasy/pkg/apperrors"
	"valfantasy/pkg/fantasy"

	"github.com/gin-gonic/gin"
)

// RosterHandler is the handler for the roster endpoints.
type RosterHandler struct {
	rosterService *rosterservice.RosterService
}

// NewRosterHandler creates a new instance of the roster handler.
func NewRosterHandler(service *rosterservice.RosterService) *RosterHandler {
	return &RosterHandler{
		rosterService: service,
	}
}

// submitRosterBody is the submission payload: just the chosen ids.
// The MMR total is recomputed server side.
type submitRosterBody struct {
	PlayerIDs []uint `json:"player_ids" binding:"required"`
}

// validateSelectionBody is the interactive selection check payload.
type validateSelectionBody struct {
	CurrentIDs  []uint `json:"current_ids"`
	CandidateID uint   `json:"candidate_id" binding:"required"`
}

// GetRoster handles requests for the current user roster.
func (h *RosterHandler) GetRoster(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	result, err := h.rosterService.GetRoster(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// SubmitRoster handles a final roster submission.
func (h *RosterHandler) SubmitRoster(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var body submitRosterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.rosterService.SubmitRoster(c.Request.Context(), userID, body.PlayerIDs)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// ValidateSelection handles the interactive draft selection check.
func (h *RosterHandler) ValidateSelection(c *gin.Context) {
	var body validateSelectionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verdict, err := h.rosterService.ValidateSelection(c.Request.Context(), body.CurrentIDs, body.CandidateID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"verdict": verdict})
}

// GetDashboard handles requests for the per-user dashboard.
func (h *RosterHandler) GetDashboard(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	result, err := h.rosterService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// abortWithServiceError maps the service error taxonomy onto HTTP statuses.
func abortWithServiceError(c *gin.Context, err error) {
	if validation, ok := apperrors.AsValidation(err); ok {
		status := http.StatusBadRequest
		if validation.Verdict == fantasy.RejectLocked {
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"error": validation.Error(), "verdict": validation.Verdict})
		return
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
