package models

import "time"

// DefaultDivingRadiusKm bounds how far from a center a sighting may be posted.
const DefaultDivingRadiusKm = 2.8

// DivingCenter is a fixed dive location users track fish from. Seeded at
// boot; the ID is a slug of the center name so links stay stable.
type DivingCenter struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`
	RadiusKm  float64 `gorm:"default:2.8" json:"radius_km"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
