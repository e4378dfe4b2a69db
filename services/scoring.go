package services

// CP scoring: a catch is worth at most 1000 CP, dropping per extra attempt
// down to a 200 floor. Zero or negative attempt counts should never reach us
// from the mini-game, but score 0 rather than error so the function stays
// total.

const (
	MaxCPScore           = 1000
	MinCPScore           = 200
	ChallengeRewardCoins = 100
)

// CalculateCPScore maps a catch-attempt count to a CP score in [0, 1000].
func CalculateCPScore(attempts int) int {
	switch {
	case attempts <= 0:
		return 0
	case attempts == 1:
		return MaxCPScore // perfect catch
	case attempts == 2:
		return 800
	case attempts == 3:
		return 600
	case attempts == 4:
		return 400
	default:
		// 5 or more: linear decay, clamped at the floor
		score := MaxCPScore - (attempts-1)*150
		if score < MinCPScore {
			score = MinCPScore
		}
		return score
	}
}

// CPTierInfo is a display-only classification of a CP score.
type CPTierInfo struct {
	Tier        string `json:"tier"`
	Description string `json:"description"`
}

// CPTier buckets a score into one of five ordered tiers.
func CPTier(score int) CPTierInfo {
	switch {
	case score >= 900:
		return CPTierInfo{Tier: "LEGENDARY", Description: "Perfect catch!"}
	case score >= 700:
		return CPTierInfo{Tier: "EXCELLENT", Description: "Great catch!"}
	case score >= 500:
		return CPTierInfo{Tier: "GOOD", Description: "Good catch"}
	case score >= 300:
		return CPTierInfo{Tier: "FAIR", Description: "Decent catch"}
	default:
		return CPTierInfo{Tier: "POOR", Description: "Needs improvement"}
	}
}
