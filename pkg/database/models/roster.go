package models

import (
	"time"

	"gorm.io/datatypes"
)

// FantasyTeam is the single roster a user owns.
// Resubmission overwrites the row wholesale, there are no partial edits.
type FantasyTeam struct {
	ID        uint                     `gorm:"primaryKey" json:"id"`
	UserID    string                   `gorm:"type:varchar(32);uniqueIndex;not null" json:"user_id"`
	PlayerIDs datatypes.JSONSlice[uint] `gorm:"not null" json:"player_ids"`

	// Sum of the selected players MMR at submission time.
	// Recomputed server side, never taken from the client.
	MMRTotal int `json:"mmr_total"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}
