package services

import (
	"math/rand"
	"testing"

	"fish-tracker-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBattleStats(t *testing.T) {
	tests := []struct {
		name    string
		cp      int
		rarity  string
		hp      int
		attack  int
		defense int
	}{
		{name: "cp1000 common", cp: 1000, rarity: models.RarityCommon, hp: 2000, attack: 100, defense: 66},
		{name: "cp200 epic", cp: 200, rarity: models.RarityEpic, hp: 640, attack: 32, defense: 21},
		{name: "cp500 rare", cp: 500, rarity: models.RarityRare, hp: 1300, attack: 65, defense: 43},
		{name: "missing cp defaults to 500", cp: 0, rarity: models.RarityCommon, hp: 1000, attack: 50, defense: 33},
		{name: "unknown rarity is 1.0x", cp: 600, rarity: "MYTHIC", hp: 1200, attack: 60, defense: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := CalculateBattleStats(tt.cp, tt.rarity)
			assert.Equal(t, tt.hp, stats.MaxHP)
			assert.Equal(t, tt.attack, stats.Attack)
			assert.Equal(t, tt.defense, stats.Defense)
		})
	}
}

func battleFish(name string, cp int, rarity string) BattleFish {
	return BattleFish{Name: name, Rarity: rarity, Stats: CalculateBattleStats(cp, rarity)}
}

func TestSimulateBattleTerminatesWithWinner(t *testing.T) {
	f1 := battleFish("Tuna", 1000, models.RarityCommon)
	f2 := battleFish("Moray", 200, models.RarityEpic)

	result := SimulateBattle(f1, f2, rand.New(rand.NewSource(42)))

	require.NotZero(t, result.Winner)
	assert.Contains(t, []int{1, 2}, result.Winner)
	require.NotEmpty(t, result.Turns)

	last := result.Turns[len(result.Turns)-1]
	assert.Equal(t, result.Winner, last.Attacker)
	assert.Equal(t, 0, last.DefenderHP)
}

func TestSimulateBattleAlternatesTurns(t *testing.T) {
	f1 := battleFish("Tuna", 800, models.RarityCommon)
	f2 := battleFish("Grouper", 800, models.RarityCommon)

	result := SimulateBattle(f1, f2, rand.New(rand.NewSource(7)))

	for i, turn := range result.Turns {
		want := 1
		if i%2 == 1 {
			want = 2
		}
		assert.Equal(t, want, turn.Attacker, "turn %d", i)
	}
}

func TestSimulateBattleLoserHPFullyDepleted(t *testing.T) {
	f1 := battleFish("Tuna", 1000, models.RarityCommon)
	f2 := battleFish("Moray", 200, models.RarityEpic)

	result := SimulateBattle(f1, f2, rand.New(rand.NewSource(99)))

	loser := 3 - result.Winner
	loserMaxHP := f1.Stats.MaxHP
	if loser == 2 {
		loserMaxHP = f2.Stats.MaxHP
	}

	// Replay the log: hits on the loser must walk its HP from max to 0.
	hp := loserMaxHP
	for _, turn := range result.Turns {
		if turn.Attacker == loser {
			continue
		}
		hp -= turn.Damage
		if hp < 0 {
			hp = 0
		}
		assert.Equal(t, hp, turn.DefenderHP)
	}
	assert.Equal(t, 0, hp)
}

func TestSimulateBattleReproducibleWithSeed(t *testing.T) {
	f1 := battleFish("Tuna", 1000, models.RarityCommon)
	f2 := battleFish("Moray", 200, models.RarityEpic)

	first := SimulateBattle(f1, f2, rand.New(rand.NewSource(1234)))
	second := SimulateBattle(f1, f2, rand.New(rand.NewSource(1234)))

	assert.Equal(t, first.Winner, second.Winner)
	assert.Equal(t, len(first.Turns), len(second.Turns))
	assert.Equal(t, first.Turns, second.Turns)
}

func TestSimulateBattleDamageFloor(t *testing.T) {
	// Defense far above attack: every hit still lands for at least 1, so
	// even this fight terminates.
	weak := BattleFish{Name: "Minnow", Rarity: models.RarityCommon, Stats: BattleStats{MaxHP: 10, Attack: 1, Defense: 1000}}
	tank := BattleFish{Name: "Whale", Rarity: models.RarityCommon, Stats: BattleStats{MaxHP: 10, Attack: 1, Defense: 1000}}

	result := SimulateBattle(weak, tank, rand.New(rand.NewSource(5)))

	require.NotZero(t, result.Winner)
	for _, turn := range result.Turns {
		assert.Equal(t, 1, turn.Damage)
	}
	// Fighter 1 opens, both have 10 HP and every hit is 1: fighter 1 wins
	// on the 19th attack.
	assert.Equal(t, 1, result.Winner)
	assert.Len(t, result.Turns, 19)
}
