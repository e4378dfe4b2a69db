package services

import (
	"errors"
	"time"

	"fish-tracker-system/models"

	"gorm.io/gorm"
)

var (
	ErrSelfFriend     = errors.New("cannot add yourself as a friend")
	ErrUserNotFound   = errors.New("user not found")
	ErrAlreadyFriends = errors.New("friendship already exists")
	ErrFriendNotFound = errors.New("friendship not found")
)

// FriendService manages the friends list. Friendships are stored once per
// pair, so every lookup checks both directions.
type FriendService struct {
	DB *gorm.DB
}

func NewFriendService(db *gorm.DB) *FriendService {
	return &FriendService{DB: db}
}

// FriendView flattens a friendship row with the friend's public profile.
type FriendView struct {
	ID        string  `json:"id"` // friendship id
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Image     *string `json:"image,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// ListFriends merges friendships from both directions into one list.
func (s *FriendService) ListFriends(userID string) ([]FriendView, error) {
	var rows []struct {
		ID           string    `gorm:"column:id"`
		CreatedAt    time.Time `gorm:"column:created_at"`
		FriendUserID string    `gorm:"column:friend_user_id"`
		Name         string    `gorm:"column:name"`
		Email        string    `gorm:"column:email"`
		Image        *string   `gorm:"column:image"`
	}

	err := s.DB.Raw(`
		SELECT f.id, f.created_at, u.id AS friend_user_id, u.name, u.email, u.image
		FROM friendships f
		INNER JOIN users u ON u.id = CASE WHEN f.user_id = ? THEN f.friend_id ELSE f.user_id END
		WHERE f.user_id = ? OR f.friend_id = ?
		ORDER BY f.created_at DESC
	`, userID, userID, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]FriendView, 0, len(rows))
	for _, r := range rows {
		out = append(out, FriendView{
			ID:        r.ID,
			UserID:    r.FriendUserID,
			Name:      r.Name,
			Email:     r.Email,
			Image:     r.Image,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// AddFriend creates a friendship after the usual guards: no self-friending,
// the target must exist, and the pair must not already be linked in either
// direction.
func (s *FriendService) AddFriend(userID, friendID string) (*models.Friendship, error) {
	if friendID == userID {
		return nil, ErrSelfFriend
	}

	var target models.User
	if err := s.DB.Where("id = ?", friendID).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&models.Friendship{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyFriends
	}

	friendship := models.Friendship{UserID: userID, FriendID: friendID}
	if err := s.DB.Create(&friendship).Error; err != nil {
		return nil, err
	}
	return &friendship, nil
}

// RemoveFriend deletes a friendship the user is part of.
func (s *FriendService) RemoveFriend(userID, friendshipID string) error {
	res := s.DB.Where("id = ? AND (user_id = ? OR friend_id = ?)", friendshipID, userID, userID).
		Delete(&models.Friendship{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFriendNotFound
	}
	return nil
}
