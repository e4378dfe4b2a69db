package models

import "time"

// FishDexEntry is one caught fish in a user's dex. The CP score is always
// derived server-side from CatchAttempts and never accepted from a client.
// A user holds at most one entry per fish.
type FishDexEntry struct {
	ID     string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID string `gorm:"not null;index;uniqueIndex:idx_dex_user_fish" json:"user_id"`
	FishID string `gorm:"not null;uniqueIndex:idx_dex_user_fish" json:"fish_id"`

	CPScore       int `gorm:"not null" json:"cp_score"`       // 0-1000
	CatchAttempts int `gorm:"not null" json:"catch_attempts"` // >= 1

	// Optional R2-hosted photo taken at the catch.
	PhotoURL *string `json:"photo_url,omitempty"`

	Fish *Fish `gorm:"foreignKey:FishID" json:"fish,omitempty"`

	// Hard-deleted on removal so the (user, fish) unique index frees up
	// for a later re-catch.
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
