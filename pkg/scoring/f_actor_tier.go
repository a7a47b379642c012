package scoring

import (
	"fmt"

	"github.com/blockbuster/blockbuster/pkg/concept"
)

// ActorTierFactor scores the market tier of the lead actor.
type ActorTierFactor struct{}

func (f *ActorTierFactor) Key() string  { return "actor_tier" }
func (f *ActorTierFactor) Name() string { return "Actor tier" }

func (f *ActorTierFactor) Evaluate(c concept.Concept) FactorResult {
	v := TierBonus(c.ActorTier)
	return FactorResult{
		Key:          f.Key(),
		Name:         f.Name(),
		Category:     string(c.ActorTier),
		Contribution: v,
		Line:         fmt.Sprintf("Actor tier: %s (%+.2f)", c.ActorTier, v),
	}
}

// TierBonus returns the score contribution of an actor tier.
// Unrecognized tiers contribute 0.
func TierBonus(t concept.ActorTier) float64 {
	switch t {
	case concept.TierUnknown:
		return 0.00
	case concept.TierRising:
		return 0.08
	case concept.TierStar:
		return 0.18
	case concept.TierSuperstar:
		return 0.28
	default:
		return 0.0
	}
}
