package services

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"fish-tracker-system/models"

	"gorm.io/gorm"
)

// defaultBattleCP is assumed when a dex entry carries no CP score.
const defaultBattleCP = 500

// BattleStats are the derived combat numbers for one fish. They exist only
// for the duration of a simulation and are never persisted.
type BattleStats struct {
	MaxHP   int `json:"max_hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
}

// CalculateBattleStats derives combat stats from a CP score and rarity.
func CalculateBattleStats(cpScore int, rarity string) BattleStats {
	if cpScore <= 0 {
		cpScore = defaultBattleCP
	}
	mult := models.RarityMultiplier(rarity)
	return BattleStats{
		MaxHP:   int(math.Floor(float64(cpScore) * 2 * mult)),
		Attack:  int(math.Floor(float64(cpScore) / 10 * mult)),
		Defense: int(math.Floor(float64(cpScore) / 15 * mult)),
	}
}

// BattleFish is one combatant entering a simulation.
type BattleFish struct {
	Name   string      `json:"name"`
	Rarity string      `json:"rarity"`
	Stats  BattleStats `json:"stats"`
}

// BattleTurn is one attack in the log.
type BattleTurn struct {
	Attacker    int    `json:"attacker"` // 1 or 2
	Damage      int    `json:"damage"`
	DefenderHP  int    `json:"defender_hp"` // remaining after the hit
	Description string `json:"description"`
}

// BattleResult is a finished simulation: the full turn log and the winner.
type BattleResult struct {
	Winner int          `json:"winner"` // 1 or 2
	Turns  []BattleTurn `json:"turns"`
	Fish1  BattleFish   `json:"fish1"`
	Fish2  BattleFish   `json:"fish2"`
}

// SimulateBattle runs a full battle between two fish. Fighter 1 always
// opens, turns alternate strictly, and each hit lands for
// max(1, floor(attack * U(0.8, 1.2)) - defense) so HP strictly decreases
// and the fight always terminates. The rng is the only source of
// randomness; pass a seeded one for a reproducible outcome.
func SimulateBattle(fish1, fish2 BattleFish, rng *rand.Rand) BattleResult {
	result := BattleResult{Fish1: fish1, Fish2: fish2}

	hp1 := fish1.Stats.MaxHP
	hp2 := fish2.Stats.MaxHP
	attacker := 1

	for hp1 > 0 && hp2 > 0 {
		var atk BattleFish
		var defHP *int
		var def BattleFish
		if attacker == 1 {
			atk, def, defHP = fish1, fish2, &hp2
		} else {
			atk, def, defHP = fish2, fish1, &hp1
		}

		variation := 0.8 + rng.Float64()*0.4
		damage := int(math.Floor(float64(atk.Stats.Attack)*variation)) - def.Stats.Defense
		if damage < 1 {
			damage = 1
		}

		*defHP -= damage
		if *defHP < 0 {
			*defHP = 0
		}

		result.Turns = append(result.Turns, BattleTurn{
			Attacker:    attacker,
			Damage:      damage,
			DefenderHP:  *defHP,
			Description: fmt.Sprintf("%s attacks %s for %d damage!", atk.Name, def.Name, damage),
		})

		if *defHP == 0 {
			result.Winner = attacker
			break
		}
		attacker = 3 - attacker
	}

	return result
}

// BattleService resolves dex entries into combatants and runs simulations.
type BattleService struct {
	DB *gorm.DB
}

func NewBattleService(db *gorm.DB) *BattleService {
	return &BattleService{DB: db}
}

var ErrDexEntryNotFound = errors.New("fish dex entry not found")

// loadCombatant turns a dex entry id into a BattleFish with derived stats.
func (s *BattleService) loadCombatant(dexID string) (BattleFish, error) {
	var entry models.FishDexEntry
	if err := s.DB.Preload("Fish").Where("id = ?", dexID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BattleFish{}, ErrDexEntryNotFound
		}
		return BattleFish{}, err
	}

	name := entry.FishID
	rarity := models.RarityCommon
	if entry.Fish != nil {
		name = entry.Fish.Name
		rarity = entry.Fish.Rarity
	}
	return BattleFish{
		Name:   name,
		Rarity: rarity,
		Stats:  CalculateBattleStats(entry.CPScore, rarity),
	}, nil
}

// Simulate runs a battle between two dex entries. A zero seed means a fresh
// time-based seed; any other value reproduces the same fight exactly.
func (s *BattleService) Simulate(dexID1, dexID2 string, seed int64) (BattleResult, error) {
	fish1, err := s.loadCombatant(dexID1)
	if err != nil {
		return BattleResult{}, fmt.Errorf("fighter 1: %w", err)
	}
	fish2, err := s.loadCombatant(dexID2)
	if err != nil {
		return BattleResult{}, fmt.Errorf("fighter 2: %w", err)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return SimulateBattle(fish1, fish2, rng), nil
}
