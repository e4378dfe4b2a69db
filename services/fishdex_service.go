package services

import (
	"errors"
	"log"

	"fish-tracker-system/models"

	"gorm.io/gorm"
)

var (
	ErrFishNotFound = errors.New("fish not found")
	ErrAlreadyInDex = errors.New("fish already in dex")
	ErrNotInDex     = errors.New("fish not found in dex")
	ErrNotFriends   = errors.New("user is not your friend")
)

// FishDexService manages each user's caught-fish collection and feeds the
// challenge engine after every successful catch.
type FishDexService struct {
	DB         *gorm.DB
	Challenges *ChallengeService
}

func NewFishDexService(db *gorm.DB, challenges *ChallengeService) *FishDexService {
	return &FishDexService{DB: db, Challenges: challenges}
}

// AddCatch records a successful catch. The CP score is computed here from
// the attempt count; clients never supply it. Challenge bookkeeping runs
// after the entry is committed and must never fail the catch, so its errors
// are logged and dropped.
func (s *FishDexService) AddCatch(userID, fishID string, catchAttempts int) (*models.FishDexEntry, error) {
	if catchAttempts < 1 {
		catchAttempts = 1
	}

	var caught models.Fish
	if err := s.DB.Where("id = ?", fishID).First(&caught).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFishNotFound
		}
		return nil, err
	}

	entry := models.FishDexEntry{
		UserID:        userID,
		FishID:        fishID,
		CPScore:       CalculateCPScore(catchAttempts),
		CatchAttempts: catchAttempts,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyInDex
		}
		return nil, err
	}

	if err := s.Challenges.RecordCatch(userID, fishID); err != nil {
		log.Printf("⚠️ Challenge update failed for catch %s (user %s): %v", fishID, userID, err)
	}

	return &entry, nil
}

// ListDex returns the user's collection with catalog data attached.
func (s *FishDexService) ListDex(userID string) ([]models.FishDexEntry, error) {
	var entries []models.FishDexEntry
	err := s.DB.Preload("Fish").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// RemoveEntry deletes one fish from the user's dex.
func (s *FishDexService) RemoveEntry(userID, fishID string) error {
	res := s.DB.Where("user_id = ? AND fish_id = ?", userID, fishID).
		Delete(&models.FishDexEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotInDex
	}
	return nil
}

// GetEntry fetches one dex entry owned by the user.
func (s *FishDexService) GetEntry(userID, dexID string) (*models.FishDexEntry, error) {
	var entry models.FishDexEntry
	err := s.DB.Preload("Fish").
		Where("id = ? AND user_id = ?", dexID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInDex
		}
		return nil, err
	}
	return &entry, nil
}

// SetPhoto stores the R2 URL of a catch photo on the entry.
func (s *FishDexService) SetPhoto(userID, dexID, photoURL string) error {
	res := s.DB.Model(&models.FishDexEntry{}).
		Where("id = ? AND user_id = ?", dexID, userID).
		Update("photo_url", photoURL)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotInDex
	}
	return nil
}

// FriendDex returns a friend's collection, but only if the two users are
// actually friends.
func (s *FishDexService) FriendDex(userID, friendID string) ([]models.FishDexEntry, error) {
	var count int64
	if err := s.DB.Model(&models.Friendship{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFriends
	}
	return s.ListDex(friendID)
}
