// Package scoring implements the blockbuster hit-probability engine.
// It scores a movie concept with a fixed additive model and produces an
// explainable, line-per-factor breakdown.
package scoring

import "github.com/blockbuster/blockbuster/pkg/concept"

// Result is the output of evaluating a concept. Immutable once computed.
type Result struct {
	HitProbability     float64        `json:"hit_probability"`     // clamped to [0.05, 0.95]
	ExpectedPopularity float64        `json:"expected_popularity"` // 10 + 90*HitProbability
	Explanation        []string       `json:"explanation"`         // one line per factor, fixed order
	Breakdown          []FactorResult `json:"breakdown"`
}

// FactorResult is the output of a single scoring factor.
type FactorResult struct {
	Key          string  `json:"key"`          // machine key: "actor_tier"
	Name         string  `json:"name"`         // human name: "Actor tier"
	Category     string  `json:"category"`     // matched bucket: "Star", "sweet_spot"
	Contribution float64 `json:"contribution"` // signed score contribution
	Line         string  `json:"line"`         // explanation line shown to users
}

// Verdict is the qualitative bucket of a hit probability.
type Verdict string

const (
	VerdictHighPotential Verdict = "High Potential"
	VerdictPromising     Verdict = "Promising"
	VerdictModerate      Verdict = "Moderate"
	VerdictHighRisk      Verdict = "High Risk"
)

// Verdict thresholds. A probability exactly on a threshold takes the higher label.
const (
	HighPotentialThreshold = 0.75
	PromisingThreshold     = 0.55
	ModerateThreshold      = 0.40
)

// Rank orders verdicts from High Risk (0) to High Potential (3).
// Unknown verdicts rank -1.
func (v Verdict) Rank() int {
	switch v {
	case VerdictHighRisk:
		return 0
	case VerdictModerate:
		return 1
	case VerdictPromising:
		return 2
	case VerdictHighPotential:
		return 3
	default:
		return -1
	}
}

// LabelFromProbability maps a hit probability to a verdict.
// Thresholds are checked top-down; NaN falls through to High Risk.
func LabelFromProbability(p float64) Verdict {
	switch {
	case p >= HighPotentialThreshold:
		return VerdictHighPotential
	case p >= PromisingThreshold:
		return VerdictPromising
	case p >= ModerateThreshold:
		return VerdictModerate
	default:
		return VerdictHighRisk
	}
}

// Suggested business actions.
const (
	ActionPrioritize = "Prioritize marketing and distribution planning early; consider premium release windows."
	ActionProceed    = "Proceed with standard investment; run sensitivity checks on casting and release timing."
	ActionDerisk     = "Treat as higher risk; explore alternative casting/genre positioning or reduce spend."
)

// RecommendationFor returns the suggested business action for a hit probability.
// It has one bucket fewer than LabelFromProbability: Moderate and High Risk share
// the same advice.
func RecommendationFor(p float64) string {
	switch {
	case p >= HighPotentialThreshold:
		return ActionPrioritize
	case p >= PromisingThreshold:
		return ActionProceed
	default:
		return ActionDerisk
	}
}

// Prediction bundles everything a front end shows for one concept.
type Prediction struct {
	Concept        concept.Concept `json:"concept"`
	Result         Result          `json:"result"`
	Verdict        Verdict         `json:"verdict"`
	Recommendation string          `json:"recommendation"`
}
