package scoring

import (
	"fmt"
	"slices"

	"github.com/blockbuster/blockbuster/pkg/concept"
)

// SeasonalityFactor rewards releases in peak box-office months.
type SeasonalityFactor struct {
	PeakMonths []int
	Bonus      float64
}

func (f *SeasonalityFactor) Key() string  { return "release_timing" }
func (f *SeasonalityFactor) Name() string { return "Release timing" }

func (f *SeasonalityFactor) Evaluate(c concept.Concept) FactorResult {
	if slices.Contains(f.PeakMonths, c.ReleaseMonth) {
		return FactorResult{
			Key:          f.Key(),
			Name:         f.Name(),
			Category:     "peak",
			Contribution: f.Bonus,
			Line:         fmt.Sprintf("Release timing: peak season (%+.2f)", f.Bonus),
		}
	}
	return FactorResult{
		Key:      f.Key(),
		Name:     f.Name(),
		Category: "neutral",
		Line:     "Release timing: neutral (+0.00)",
	}
}
