package scoring

import (
	"fmt"

	"github.com/blockbuster/blockbuster/pkg/concept"
)

// RuntimeFactor rewards runtimes inside a sweet spot and penalizes very long ones.
//
// Branches are checked in order: sweet spot, then long, then neutral. Short
// runtimes and the band between SweetSpotMax and LongThreshold are neutral.
type RuntimeFactor struct {
	SweetSpotMin   int     // inclusive
	SweetSpotMax   int     // inclusive
	SweetSpotBonus float64 // contribution inside the sweet spot
	LongThreshold  int     // runtimes strictly above this are penalized
	LongPenalty    float64 // contribution above LongThreshold (negative)
}

func (f *RuntimeFactor) Key() string  { return "runtime" }
func (f *RuntimeFactor) Name() string { return "Runtime" }

func (f *RuntimeFactor) Evaluate(c concept.Concept) FactorResult {
	result := FactorResult{
		Key:  f.Key(),
		Name: f.Name(),
	}

	switch {
	case c.Runtime >= f.SweetSpotMin && c.Runtime <= f.SweetSpotMax:
		result.Category = "sweet_spot"
		result.Contribution = f.SweetSpotBonus
		result.Line = fmt.Sprintf("Runtime in sweet spot %d–%d min (%+.2f)", f.SweetSpotMin, f.SweetSpotMax, f.SweetSpotBonus)
	case c.Runtime > f.LongThreshold:
		result.Category = "very_long"
		result.Contribution = f.LongPenalty
		result.Line = fmt.Sprintf("Very long runtime >%d min (%+.2f)", f.LongThreshold, f.LongPenalty)
	default:
		result.Category = "neutral"
		result.Line = "Runtime neutral (+0.00)"
	}

	return result
}
