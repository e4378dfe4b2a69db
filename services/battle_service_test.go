package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fish-tracker-system/models"
)

func TestBattleServiceSimulate(t *testing.T) {
	clearDatabase(t)
	dex := newTestDexService(30)
	battles := NewBattleService(testDb)
	user := createTestUser(t, "nemo")
	createTestFish(t, "fish-common", "Tuna", models.RarityCommon)
	createTestFish(t, "fish-epic", "Moray", models.RarityEpic)

	// attempts 1 -> CP 1000; attempts 7 -> CP 200
	entry1, err := dex.AddCatch(user.ID, "fish-common", 1)
	require.NoError(t, err)
	entry2, err := dex.AddCatch(user.ID, "fish-epic", 7)
	require.NoError(t, err)

	result, err := battles.Simulate(entry1.ID, entry2.ID, 4242)
	require.NoError(t, err)

	assert.Equal(t, BattleStats{MaxHP: 2000, Attack: 100, Defense: 66}, result.Fish1.Stats)
	assert.Equal(t, BattleStats{MaxHP: 640, Attack: 32, Defense: 21}, result.Fish2.Stats)
	assert.Contains(t, []int{1, 2}, result.Winner)
	assert.NotEmpty(t, result.Turns)

	// Same seed, same fight.
	again, err := battles.Simulate(entry1.ID, entry2.ID, 4242)
	require.NoError(t, err)
	assert.Equal(t, result.Winner, again.Winner)
	assert.Equal(t, result.Turns, again.Turns)
}

func TestBattleServiceUnknownEntry(t *testing.T) {
	clearDatabase(t)
	battles := NewBattleService(testDb)

	_, err := battles.Simulate("11111111-1111-1111-1111-111111111111", "22222222-2222-2222-2222-222222222222", 1)
	assert.ErrorIs(t, err, ErrDexEntryNotFound)
}
