package models

import "time"

// ChallengeType enumerates the daily challenge kinds.
type ChallengeType string

const (
	ChallengeCatchCommonFish ChallengeType = "CATCH_COMMON_FISH"
	ChallengeCatchRareFish   ChallengeType = "CATCH_RARE_FISH"
	ChallengeCatchEpicFish   ChallengeType = "CATCH_EPIC_FISH"
	ChallengeCatchAnyFish    ChallengeType = "CATCH_ANY_FISH"
)

// DailyChallenge is one global challenge for a calendar date. The set is
// shared by all users; the unique index on (challenge_type, date) is what
// lets concurrent first-requests-of-the-day converge on one canonical set.
type DailyChallenge struct {
	ID            string        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ChallengeType ChallengeType `gorm:"not null;uniqueIndex:idx_challenge_type_date" json:"challenge_type"`
	Target        int           `gorm:"not null" json:"target"`
	Description   string        `gorm:"not null" json:"description"`
	Date          string        `gorm:"not null;index;uniqueIndex:idx_challenge_type_date" json:"date"` // YYYY-MM-DD

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// ChallengeProgress is one user's advancement on one daily challenge.
// Once CompletedAt is set the row is terminal and never touched again;
// that single check-and-set is the reward gate.
type ChallengeProgress struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID      string `gorm:"not null;index;uniqueIndex:idx_progress_user_challenge" json:"user_id"`
	ChallengeID string `gorm:"not null;uniqueIndex:idx_progress_user_challenge" json:"challenge_id"`

	CurrentProgress int        `gorm:"not null;default:0" json:"current_progress"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	Date            string     `gorm:"not null;index" json:"date"` // mirrors the challenge's date

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
