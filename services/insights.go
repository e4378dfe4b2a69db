package services

// Fish insights are pseudo-generated facts seeded from the fish name, so a
// given fish always gets the same answer without storing anything.

// FishInsights is the display payload for the fish detail page.
type FishInsights struct {
	Food     []string `json:"food"`
	MaxSize  string   `json:"max_size"`
	Enemies  []string `json:"enemies"`
	Habitat  string   `json:"habitat"`
	Behavior string   `json:"behavior"`
	FunFact  string   `json:"fun_fact"`
}

var insightFoodTypes = [][]string{
	{"plankton", "small crustaceans", "algae"},
	{"small fish", "shrimp", "squid"},
	{"krill", "zooplankton", "detritus"},
	{"insects", "worms", "small invertebrates"},
	{"fish eggs", "larvae", "microorganisms"},
	{"seaweed", "mollusks", "crustaceans"},
}

var insightEnemyTypes = [][]string{
	{"larger predatory fish", "sharks", "sea birds"},
	{"dolphins", "seals", "fishermen"},
	{"barracudas", "tuna", "marlins"},
	{"octopuses", "squid", "cuttlefish"},
	{"sea snakes", "eels", "groupers"},
}

var insightSizeRanges = map[string][]string{
	"COMMON": {"5-15 cm", "10-25 cm", "15-30 cm", "20-40 cm"},
	"RARE":   {"30-60 cm", "50-100 cm", "80-150 cm", "100-200 cm"},
	"EPIC":   {"150-300 cm", "200-400 cm", "300-500 cm", "400-600 cm"},
}

var insightBehaviors = []string{
	"solitary hunter, active during dawn and dusk",
	"schooling fish, travels in groups of 20-50",
	"nocturnal predator, hunts at night",
	"diurnal feeder, most active during daylight",
	"ambush predator, lies in wait for prey",
	"active swimmer, constantly on the move",
	"bottom dweller, rarely surfaces",
	"surface feeder, often seen near the water's edge",
}

var insightFunFacts = []string{
	"This species can change color to blend with its surroundings",
	"Known for its incredible speed, reaching up to 60 km/h",
	"Has a unique bioluminescent pattern used for communication",
	"Can survive in both saltwater and freshwater environments",
	"Uses electroreception to detect prey in murky waters",
	"Has a lifespan of up to 20 years in the wild",
	"Capable of producing sounds for social communication",
	"Exhibits complex social behaviors and hierarchy",
}

// GenerateFishInsights builds deterministic insights for a fish. The seed is
// the char-sum of the name; latitude overrides the habitat band.
func GenerateFishInsights(name, rarity string, latitude, longitude float64) FishInsights {
	seed := 0
	for _, ch := range name {
		seed += int(ch)
	}

	maxSize := "unknown"
	if sizes, ok := insightSizeRanges[rarity]; ok {
		maxSize = sizes[(seed*3)%len(sizes)]
	}

	// Habitat is keyed off the latitude band rather than the seed.
	var habitat string
	switch {
	case latitude > 60 || latitude < -60:
		habitat = "polar regions"
	case latitude < 30 && latitude > -30:
		habitat = "tropical waters"
	default:
		habitat = "temperate waters"
	}

	return FishInsights{
		Food:     insightFoodTypes[seed%len(insightFoodTypes)],
		MaxSize:  maxSize,
		Enemies:  insightEnemyTypes[(seed*2)%len(insightEnemyTypes)],
		Habitat:  habitat,
		Behavior: insightBehaviors[(seed*7)%len(insightBehaviors)],
		FunFact:  insightFunFacts[(seed*11)%len(insightFunFacts)],
	}
}
