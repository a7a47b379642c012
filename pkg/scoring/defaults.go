package scoring

// DefaultFactors returns the standard factors in explanation order.
func DefaultFactors() []Factor {
	w := Defaults()
	return []Factor{
		&ActorTierFactor{},
		&GenreFactor{},
		&RuntimeFactor{
			SweetSpotMin:   w.SweetSpotMin,
			SweetSpotMax:   w.SweetSpotMax,
			SweetSpotBonus: w.SweetSpotBonus,
			LongThreshold:  w.LongRuntimeThreshold,
			LongPenalty:    w.LongRuntimePenalty,
		},
		&SeasonalityFactor{
			PeakMonths: w.PeakMonths,
			Bonus:      w.PeakSeasonBonus,
		},
	}
}

// NewDefaultEngine returns an engine with default weights and factors.
func NewDefaultEngine() *Engine {
	return NewEngine(Defaults(), DefaultFactors()...)
}
