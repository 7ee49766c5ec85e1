package models

import (
	"time"
)

// User is a local identity record keyed by the Discord user id.
// Upserted on every login to keep the profile fields current.
type User struct {
	ID        string `gorm:"type:varchar(32);primaryKey" json:"id"`
	Username  string `gorm:"type:varchar(100)" json:"username"`
	AvatarURL string `gorm:"type:varchar(255)" json:"avatar_url"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
