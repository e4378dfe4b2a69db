package models

import "time"

// Rarity tiers as reported by the external fish API.
const (
	RarityCommon = "COMMON"
	RarityRare   = "RARE"
	RarityEpic   = "EPIC"
)

// RarityMultiplier drives battle stat scaling per tier.
func RarityMultiplier(rarity string) float64 {
	switch rarity {
	case RarityRare:
		return 1.3
	case RarityEpic:
		return 1.6
	default:
		return 1.0
	}
}

// Fish is a local mirror of the external fish catalog, kept fresh by the
// sighting sync worker. The sighting columns hold the most recent report.
type Fish struct {
	ID     string  `gorm:"primaryKey" json:"id"` // external API id, not a local uuid
	Name   string  `gorm:"not null" json:"name"`
	Image  *string `json:"image,omitempty"`
	Rarity string  `gorm:"not null;index" json:"rarity"`

	LatestSightingLatitude  *float64 `json:"latest_sighting_latitude,omitempty"`
	LatestSightingLongitude *float64 `json:"latest_sighting_longitude,omitempty"`
	LatestSightingTimestamp *string  `json:"latest_sighting_timestamp,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
