package scoring

// Weights holds the constants of the additive model that are not part of a
// category lookup table. Tier and genre tables live with their factors.
type Weights struct {
	BaseRate float64

	// Clamp applied to the accumulated score.
	MinProbability float64
	MaxProbability float64

	// ExpectedPopularity = PopularityOffset + p*PopularityScale
	PopularityOffset float64
	PopularityScale  float64

	// Runtime
	SweetSpotMin         int // inclusive
	SweetSpotMax         int // inclusive
	SweetSpotBonus       float64
	LongRuntimeThreshold int // strictly greater than
	LongRuntimePenalty   float64

	// Seasonality
	PeakMonths      []int
	PeakSeasonBonus float64
}

// Defaults returns the default model weights.
func Defaults() Weights {
	return Weights{
		BaseRate: 0.35,

		MinProbability: 0.05,
		MaxProbability: 0.95,

		PopularityOffset: 10,
		PopularityScale:  90,

		SweetSpotMin:         95,
		SweetSpotMax:         135,
		SweetSpotBonus:       0.06,
		LongRuntimeThreshold: 160,
		LongRuntimePenalty:   -0.04,

		PeakMonths:      []int{6, 7, 11, 12},
		PeakSeasonBonus: 0.05,
	}
}
