package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the local account row. Sessions are issued by the external auth
// provider; this service only reads the identity forwarded by the gateway.
type User struct {
	ID    string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name  string  `gorm:"not null" json:"name"`
	Email string  `gorm:"uniqueIndex;not null" json:"email"`
	Image *string `json:"image,omitempty"`

	// Coin balance credited by challenge completions.
	Coins int `gorm:"default:0" json:"coins"`

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
