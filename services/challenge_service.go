package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"fish-tracker-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// challengesPerDay is how many challenges exist for any calendar date.
const challengesPerDay = 3

type challengeTemplate struct {
	Type     models.ChallengeType
	Targets  []int
	Describe func(target int) string
}

var challengeTemplates = []challengeTemplate{
	{
		Type:     models.ChallengeCatchCommonFish,
		Targets:  []int{2, 3, 5},
		Describe: func(target int) string { return fmt.Sprintf("Catch %d common fish", target) },
	},
	{
		Type:     models.ChallengeCatchRareFish,
		Targets:  []int{1, 2, 3},
		Describe: func(target int) string { return fmt.Sprintf("Catch %d rare fish", target) },
	},
	{
		Type:     models.ChallengeCatchEpicFish,
		Targets:  []int{1, 2},
		Describe: func(target int) string { return fmt.Sprintf("Catch %d epic fish", target) },
	},
	{
		Type:     models.ChallengeCatchAnyFish,
		Targets:  []int{3, 5, 7, 10},
		Describe: func(target int) string { return fmt.Sprintf("Catch %d fish", target) },
	},
}

// ChallengeService generates the global daily challenge set, tracks per-user
// progress and credits coins on completion. Randomness and the clock are
// injected so challenge generation is reproducible in tests.
type ChallengeService struct {
	DB *gorm.DB

	rng *rand.Rand
	mu  sync.Mutex // guards rng; fiber handlers call concurrently
	now func() time.Time
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{
		DB:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// WithRand replaces the random source (tests).
func (s *ChallengeService) WithRand(rng *rand.Rand) *ChallengeService {
	s.rng = rng
	return s
}

// WithClock replaces the time source (tests).
func (s *ChallengeService) WithClock(now func() time.Time) *ChallengeService {
	s.now = now
	return s
}

// Today returns the service's current calendar date in YYYY-MM-DD form.
func (s *ChallengeService) Today() string {
	return s.now().Format("2006-01-02")
}

// ChallengeWithProgress is the API view of one challenge joined with the
// requesting user's progress, zero-valued when the user has none yet.
type ChallengeWithProgress struct {
	ID              string               `json:"id"`
	ChallengeType   models.ChallengeType `json:"challenge_type"`
	Target          int                  `json:"target"`
	Description     string               `json:"description"`
	Date            string               `json:"date"`
	CurrentProgress int                  `json:"current_progress"`
	Completed       bool                 `json:"completed"`
	CompletedAt     *time.Time           `json:"completed_at,omitempty"`
}

// EnsureTodaysChallenges lazily creates today's challenge set: 3 distinct
// kinds drawn at random, each with a target from its candidate set. Safe to
// call concurrently — if another request won the insert race, the duplicate
// key error is swallowed and the existing rows are returned.
func (s *ChallengeService) EnsureTodaysChallenges() ([]models.DailyChallenge, error) {
	today := s.Today()

	var existing []models.DailyChallenge
	if err := s.DB.Where("date = ?", today).Find(&existing).Error; err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	fresh := s.rollChallenges(today)
	if err := s.DB.Create(&fresh).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent caller created today's set first; converge on it.
			var rows []models.DailyChallenge
			if ferr := s.DB.Where("date = ?", today).Find(&rows).Error; ferr != nil {
				return nil, ferr
			}
			if len(rows) > 0 {
				return rows, nil
			}
		}
		return nil, err
	}

	log.Printf("🎯 Generated %d daily challenges for %s", len(fresh), today)
	return fresh, nil
}

// rollChallenges draws the random challenge set for a date.
func (s *ChallengeService) rollChallenges(date string) []models.DailyChallenge {
	s.mu.Lock()
	defer s.mu.Unlock()

	picks := make([]challengeTemplate, len(challengeTemplates))
	copy(picks, challengeTemplates)
	s.rng.Shuffle(len(picks), func(i, j int) {
		picks[i], picks[j] = picks[j], picks[i]
	})

	challenges := make([]models.DailyChallenge, 0, challengesPerDay)
	for _, tpl := range picks[:challengesPerDay] {
		target := tpl.Targets[s.rng.Intn(len(tpl.Targets))]
		challenges = append(challenges, models.DailyChallenge{
			ChallengeType: tpl.Type,
			Target:        target,
			Description:   tpl.Describe(target),
			Date:          date,
		})
	}
	return challenges
}

// GetUserProgress returns today's challenges joined with the user's progress.
func (s *ChallengeService) GetUserProgress(userID string) ([]ChallengeWithProgress, error) {
	challenges, err := s.EnsureTodaysChallenges()
	if err != nil {
		return nil, err
	}

	var rows []models.ChallengeProgress
	if err := s.DB.Where("user_id = ? AND date = ?", userID, s.Today()).Find(&rows).Error; err != nil {
		return nil, err
	}
	byChallenge := make(map[string]models.ChallengeProgress, len(rows))
	for _, p := range rows {
		byChallenge[p.ChallengeID] = p
	}

	out := make([]ChallengeWithProgress, 0, len(challenges))
	for _, ch := range challenges {
		view := ChallengeWithProgress{
			ID:            ch.ID,
			ChallengeType: ch.ChallengeType,
			Target:        ch.Target,
			Description:   ch.Description,
			Date:          ch.Date,
		}
		if p, ok := byChallenge[ch.ID]; ok {
			view.CurrentProgress = p.CurrentProgress
			view.Completed = p.CompletedAt != nil
			view.CompletedAt = p.CompletedAt
		}
		out = append(out, view)
	}
	return out, nil
}

// challengeMatchesRarity is the kind-to-rarity predicate: the exact-rarity
// kinds match only their tier, CATCH_ANY_FISH matches every catch.
func challengeMatchesRarity(kind models.ChallengeType, rarity string) bool {
	switch kind {
	case models.ChallengeCatchCommonFish:
		return rarity == models.RarityCommon
	case models.ChallengeCatchRareFish:
		return rarity == models.RarityRare
	case models.ChallengeCatchEpicFish:
		return rarity == models.RarityEpic
	case models.ChallengeCatchAnyFish:
		return true
	}
	return false
}

// RecordCatch advances every matching challenge for the user after a catch.
// A single catch may advance several challenges at once. An unknown fish is
// a silent no-op. Callers on the catch path log our errors instead of
// failing the catch itself.
func (s *ChallengeService) RecordCatch(userID, fishID string) error {
	var caught models.Fish
	if err := s.DB.Where("id = ?", fishID).First(&caught).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	challenges, err := s.EnsureTodaysChallenges()
	if err != nil {
		return err
	}

	for _, challenge := range challenges {
		if !challengeMatchesRarity(challenge.ChallengeType, caught.Rarity) {
			continue
		}
		if err := s.applyCatch(userID, challenge); err != nil {
			return fmt.Errorf("challenge %s: %w", challenge.ID, err)
		}
	}
	return nil
}

// applyCatch advances one challenge for one catch inside a transaction. The
// progress row is seeded at zero with ON CONFLICT DO NOTHING so concurrent
// catches never abort the transaction, then incremented under a row lock so
// no update is lost. The completion check-and-set is the only reward gate:
// a row with CompletedAt set is never modified again, so the coin credit
// happens at most once per (user, challenge).
func (s *ChallengeService) applyCatch(userID string, challenge models.DailyChallenge) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		now := s.now()

		seed := models.ChallengeProgress{
			UserID:      userID,
			ChallengeID: challenge.ID,
			Date:        challenge.Date,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return err
		}

		var prog models.ChallengeProgress
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND challenge_id = ?", userID, challenge.ID).
			First(&prog).Error; err != nil {
			return err
		}
		if prog.CompletedAt != nil {
			return nil // terminal, nothing to re-earn
		}

		prog.CurrentProgress++
		if prog.CurrentProgress >= challenge.Target {
			prog.CompletedAt = &now
		}
		if err := tx.Save(&prog).Error; err != nil {
			return err
		}

		if prog.CompletedAt != nil {
			return s.awardChallengeCoins(tx, userID, challenge)
		}
		return nil
	})
}

// awardChallengeCoins credits the fixed completion reward. The increment is
// a single UPDATE so concurrent completions for the same user serialize on
// the row instead of losing credits.
func (s *ChallengeService) awardChallengeCoins(tx *gorm.DB, userID string, challenge models.DailyChallenge) error {
	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		Update("coins", gorm.Expr("coins + ?", ChallengeRewardCoins))
	if res.Error != nil {
		return res.Error
	}
	log.Printf("🪙 Challenge complete: %s earned %d coins (%s)", userID, ChallengeRewardCoins, challenge.Description)
	return nil
}

// RegenerateTodaysChallenges wipes today's challenge set together with every
// user's progress on it and rolls a fresh set. Challenges are global, so
// this resets the day for all users, not just the caller.
func (s *ChallengeService) RegenerateTodaysChallenges() ([]models.DailyChallenge, error) {
	today := s.Today()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Model(&models.DailyChallenge{}).
			Where("date = ?", today).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("date = ? AND challenge_id IN ?", today, ids).
			Delete(&models.ChallengeProgress{}).Error; err != nil {
			return err
		}
		return tx.Where("date = ?", today).Delete(&models.DailyChallenge{}).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("♻️ Regenerated daily challenges for %s", today)
	return s.EnsureTodaysChallenges()
}
