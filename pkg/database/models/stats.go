package models

import (
	"time"
)

// PlayerMatchStat is one observation of a player in a match window.
// Rows are append-only and immutable once written; the fantasy points
// are computed at ingestion time and never recomputed afterwards.
type PlayerMatchStat struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	PlayerID uint   `gorm:"not null;index:idx_player_match,unique" json:"player_id"`
	MatchID  string `gorm:"type:varchar(36);not null;index:idx_player_match,unique" json:"match_id"`

	Kills         int     `json:"kills"`
	Deaths        int     `json:"deaths"`
	Assists       int     `json:"assists"`
	ACS           float64 `json:"acs"`
	FantasyPoints float64 `json:"fantasy_points"`

	CreatedAt time.Time `json:"-"`

	Player Player `gorm:"foreignKey:PlayerID" json:"-"`
}
