package dto

import (
	"valfantasy/pkg/database/models"
)

// PlayerResult is the player representation returned by the API.
type PlayerResult struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	MMR     int     `json:"mmr"`
	Kills   int     `json:"kills"`
	Deaths  int     `json:"deaths"`
	Assists int     `json:"assists"`
	ACS     float64 `json:"acs"`
}

// FromModel converts a player model into the API representation.
func (PlayerResult) FromModel(player *models.Player) *PlayerResult {
	return &PlayerResult{
		ID:      player.ID,
		Name:    player.Name,
		MMR:     player.MMR,
		Kills:   player.Kills,
		Deaths:  player.Deaths,
		Assists: player.Assists,
		ACS:     player.ACS,
	}
}

// FromModelSlice converts a slice of player models.
func (p PlayerResult) FromModelSlice(players []*models.Player) []*PlayerResult {
	results := make([]*PlayerResult, 0, len(players))
	for _, player := range players {
		results = append(results, p.FromModel(player))
	}
	return results
}
