package scoring

import (
	"math"

	"github.com/blockbuster/blockbuster/pkg/concept"
)

// Factor is the interface that all scoring factors implement.
type Factor interface {
	// Key returns the machine-readable factor identifier.
	Key() string
	// Name returns the human-readable factor name.
	Name() string
	// Evaluate computes the factor's contribution for a concept.
	// It must not fail for any input.
	Evaluate(c concept.Concept) FactorResult
}

// Engine adds factor contributions to a base rate and clamps the total.
// An Engine is never mutated after construction and is safe for concurrent use.
type Engine struct {
	weights Weights
	factors []Factor
}

// NewEngine creates a scoring engine with the given weights and factors.
// Factors are evaluated, and explained, in the order given.
func NewEngine(w Weights, factors ...Factor) *Engine {
	return &Engine{weights: w, factors: factors}
}

// Evaluate scores a concept. It is total: unknown genres or tiers and
// out-of-range numbers contribute according to their fallback branches.
func (e *Engine) Evaluate(c concept.Concept) Result {
	score := e.weights.BaseRate
	result := Result{
		Explanation: make([]string, 0, len(e.factors)),
		Breakdown:   make([]FactorResult, 0, len(e.factors)),
	}

	for _, f := range e.factors {
		fr := f.Evaluate(c)
		score += fr.Contribution
		result.Breakdown = append(result.Breakdown, fr)
		result.Explanation = append(result.Explanation, fr.Line)
	}

	result.HitProbability = math.Max(e.weights.MinProbability, math.Min(e.weights.MaxProbability, score))
	result.ExpectedPopularity = e.weights.PopularityOffset + result.HitProbability*e.weights.PopularityScale
	return result
}

// Predict evaluates a concept and attaches its verdict and recommendation.
func (e *Engine) Predict(c concept.Concept) Prediction {
	r := e.Evaluate(c)
	return Prediction{
		Concept:        c,
		Result:         r,
		Verdict:        LabelFromProbability(r.HitProbability),
		Recommendation: RecommendationFor(r.HitProbability),
	}
}

// Evaluate scores a concept with the default engine.
func Evaluate(c concept.Concept) Result {
	return NewDefaultEngine().Evaluate(c)
}

// Predict scores a concept with the default engine.
func Predict(c concept.Concept) Prediction {
	return NewDefaultEngine().Predict(c)
}
