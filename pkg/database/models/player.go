package models

import (
	"time"
)

// Player is a league player tracked by the scraper.
// Players are never deleted, only flagged inactive when they stop
// appearing on the stats page.
type Player struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex" json:"name"`
	MMR  int    `gorm:"index" json:"mmr"`

	// Cumulative season totals, overwritten on every scrape.
	Kills   int     `json:"kills"`
	Deaths  int     `json:"deaths"`
	Assists int     `json:"assists"`
	ACS     float64 `json:"acs"`

	IsActive bool `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
