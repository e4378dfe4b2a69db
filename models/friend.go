package models

import "time"

// Friendship links two users. Rows are stored once per pair; lookups must
// check both directions since either side may have initiated.
type Friendship struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID   string `gorm:"not null;index" json:"user_id"`
	FriendID string `gorm:"not null;index" json:"friend_id"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
