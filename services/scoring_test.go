package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCPScore(t *testing.T) {
	tests := []struct {
		attempts int
		want     int
	}{
		{attempts: 1, want: 1000},
		{attempts: 2, want: 800},
		{attempts: 3, want: 600},
		{attempts: 4, want: 400},
		{attempts: 5, want: 400},
		{attempts: 6, want: 250},
		{attempts: 7, want: 200},
		{attempts: 10, want: 200},
		{attempts: 100, want: 200},
		{attempts: 0, want: 0},
		{attempts: -3, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateCPScore(tt.attempts), "attempts=%d", tt.attempts)
	}
}

func TestCPTier(t *testing.T) {
	tests := []struct {
		score int
		tier  string
	}{
		{score: 1000, tier: "LEGENDARY"},
		{score: 900, tier: "LEGENDARY"},
		{score: 899, tier: "EXCELLENT"},
		{score: 700, tier: "EXCELLENT"},
		{score: 699, tier: "GOOD"},
		{score: 500, tier: "GOOD"},
		{score: 499, tier: "FAIR"},
		{score: 300, tier: "FAIR"},
		{score: 299, tier: "POOR"},
		{score: 0, tier: "POOR"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.tier, CPTier(tt.score).Tier, "score=%d", tt.score)
	}
}

func TestCPTierDescriptionsNotEmpty(t *testing.T) {
	for _, score := range []int{0, 300, 500, 700, 900} {
		assert.NotEmpty(t, CPTier(score).Description)
	}
}
