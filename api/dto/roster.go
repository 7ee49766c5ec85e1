package dto

import (
	"time"

	"valfantasy/pkg/database/models"
)

// RosterResult is the fantasy team representation returned by the API.
type RosterResult struct {
	UserID      string    `json:"user_id"`
	PlayerIDs   []uint    `json:"player_ids"`
	MMRTotal    int       `json:"mmr_total"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// FromModel converts a fantasy team model into the API representation.
func (RosterResult) FromModel(team *models.FantasyTeam) *RosterResult {
	return &RosterResult{
		UserID:      team.UserID,
		PlayerIDs:   []uint(team.PlayerIDs),
		MMRTotal:    team.MMRTotal,
		SubmittedAt: team.UpdatedAt,
	}
}

// DashboardResult is the per-user dashboard payload: the roster plus
// the aggregated fantasy points of its players.
type DashboardResult struct {
	Roster          *RosterResult    `json:"roster"`
	PerPlayerPoints map[uint]float64 `json:"per_player_points"`
	Total           float64          `json:"total"`
}
