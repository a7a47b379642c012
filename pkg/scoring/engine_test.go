package scoring_test

import (
	"math"
	"reflect"
	"sync"
	"testing"

	"github.com/blockbuster/blockbuster/pkg/concept"
	"github.com/blockbuster/blockbuster/pkg/scoring"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		name           string
		c              concept.Concept
		wantProb       float64
		wantPopularity float64
		wantVerdict    scoring.Verdict
		wantLines      []string
	}{
		{
			name:           "action star summer",
			c:              concept.Concept{Genre: "Action", ActorTier: "Star", Runtime: 115, ReleaseMonth: 6},
			wantProb:       0.74,
			wantPopularity: 76.6,
			wantVerdict:    scoring.VerdictPromising,
			wantLines: []string{
				"Actor tier: Star (+0.18)",
				"Genre: Action (+0.10)",
				"Runtime in sweet spot 95–135 min (+0.06)",
				"Release timing: peak season (+0.05)",
			},
		},
		{
			// 200 minutes is past the long-runtime threshold, so the penalty applies.
			name:           "long documentary in march",
			c:              concept.Concept{Genre: "Documentary", ActorTier: "Unknown", Runtime: 200, ReleaseMonth: 3},
			wantProb:       0.29,
			wantPopularity: 36.1,
			wantVerdict:    scoring.VerdictHighRisk,
			wantLines: []string{
				"Actor tier: Unknown (+0.00)",
				"Genre: Documentary (-0.02)",
				"Very long runtime >160 min (-0.04)",
				"Release timing: neutral (+0.00)",
			},
		},
		{
			name:           "superstar animation in december",
			c:              concept.Concept{Genre: "Animation", ActorTier: "Superstar", Runtime: 120, ReleaseMonth: 12},
			wantProb:       0.83,
			wantPopularity: 84.7,
			wantVerdict:    scoring.VerdictHighPotential,
			wantLines: []string{
				"Actor tier: Superstar (+0.28)",
				"Genre: Animation (+0.09)",
				"Runtime in sweet spot 95–135 min (+0.06)",
				"Release timing: peak season (+0.05)",
			},
		},
		{
			name:           "short rising drama",
			c:              concept.Concept{Genre: "Drama", ActorTier: "Rising", Runtime: 80, ReleaseMonth: 2},
			wantProb:       0.46,
			wantPopularity: 51.4,
			wantVerdict:    scoring.VerdictModerate,
			wantLines: []string{
				"Actor tier: Rising (+0.08)",
				"Genre: Drama (+0.03)",
				"Runtime neutral (+0.00)",
				"Release timing: neutral (+0.00)",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := scoring.Predict(tc.c)
			if !approx(p.Result.HitProbability, tc.wantProb) {
				t.Errorf("HitProbability = %v, want %v", p.Result.HitProbability, tc.wantProb)
			}
			if !approx(p.Result.ExpectedPopularity, tc.wantPopularity) {
				t.Errorf("ExpectedPopularity = %v, want %v", p.Result.ExpectedPopularity, tc.wantPopularity)
			}
			if !reflect.DeepEqual(p.Result.Explanation, tc.wantLines) {
				t.Errorf("Explanation = %q, want %q", p.Result.Explanation, tc.wantLines)
			}
			if p.Concept != tc.c {
				t.Errorf("Concept = %+v, want %+v", p.Concept, tc.c)
			}
			if p.Verdict != tc.wantVerdict {
				t.Errorf("Verdict = %q, want %q", p.Verdict, tc.wantVerdict)
			}
		})
	}
}

func TestEvaluate_BreakdownOrder(t *testing.T) {
	r := scoring.Evaluate(concept.Default())

	wantKeys := []string{"actor_tier", "genre", "runtime", "release_timing"}
	if len(r.Breakdown) != len(wantKeys) {
		t.Fatalf("expected %d breakdown entries, got %d", len(wantKeys), len(r.Breakdown))
	}
	for i, key := range wantKeys {
		if r.Breakdown[i].Key != key {
			t.Errorf("breakdown[%d].Key = %q, want %q", i, r.Breakdown[i].Key, key)
		}
		if r.Breakdown[i].Line != r.Explanation[i] {
			t.Errorf("breakdown[%d].Line = %q does not match explanation %q", i, r.Breakdown[i].Line, r.Explanation[i])
		}
	}

	// Base rate is never emitted as a line.
	var sum float64
	for _, fr := range r.Breakdown {
		sum += fr.Contribution
	}
	if !approx(r.HitProbability, 0.35+sum) {
		t.Errorf("HitProbability = %v, want base + contributions = %v", r.HitProbability, 0.35+sum)
	}
}

func TestEvaluate_BoundsAndPopularity(t *testing.T) {
	engine := scoring.NewDefaultEngine()
	genres := append(concept.AllGenres(), "Unknown Genre XYZ", "")
	tiers := append(concept.AllActorTiers(), "Legend", "")

	for _, g := range genres {
		for _, tier := range tiers {
			for runtime := -100; runtime <= 400; runtime += 7 {
				for month := -2; month <= 14; month++ {
					r := engine.Evaluate(concept.Concept{Genre: g, ActorTier: tier, Runtime: runtime, ReleaseMonth: month})
					if r.HitProbability < 0.05 || r.HitProbability > 0.95 {
						t.Fatalf("HitProbability %v out of bounds for %s/%s/%d/%d", r.HitProbability, g, tier, runtime, month)
					}
					if r.ExpectedPopularity != 10+90*r.HitProbability {
						t.Fatalf("ExpectedPopularity %v != 10+90*%v", r.ExpectedPopularity, r.HitProbability)
					}
					if len(r.Explanation) != 4 {
						t.Fatalf("expected 4 explanation lines, got %d", len(r.Explanation))
					}
				}
			}
		}
	}
}

func TestEvaluate_UnknownGenreIsNeutral(t *testing.T) {
	base := concept.Concept{Genre: "Unknown Genre XYZ", ActorTier: "Rising", Runtime: 150, ReleaseMonth: 11}
	neutral := base
	neutral.Genre = concept.GenreWar // 0.00 contribution

	got := scoring.Evaluate(base)
	want := scoring.Evaluate(neutral)

	if got.HitProbability != want.HitProbability {
		t.Errorf("HitProbability = %v, want %v", got.HitProbability, want.HitProbability)
	}
	if got.Explanation[1] != "Genre: Unknown Genre XYZ (+0.00)" {
		t.Errorf("unexpected genre line %q", got.Explanation[1])
	}
}

func TestEvaluate_UnknownTierIsNeutral(t *testing.T) {
	got := scoring.Evaluate(concept.Concept{Genre: "Drama", ActorTier: "Legend", Runtime: 100, ReleaseMonth: 1})
	want := scoring.Evaluate(concept.Concept{Genre: "Drama", ActorTier: "Unknown", Runtime: 100, ReleaseMonth: 1})

	if got.HitProbability != want.HitProbability {
		t.Errorf("HitProbability = %v, want %v", got.HitProbability, want.HitProbability)
	}
	if got.Explanation[0] != "Actor tier: Legend (+0.00)" {
		t.Errorf("unexpected tier line %q", got.Explanation[0])
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	c := concept.Concept{Genre: "Horror", ActorTier: "Superstar", Runtime: 170, ReleaseMonth: 10}
	a := scoring.Evaluate(c)
	b := scoring.Evaluate(c)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("results differ:\n%+v\n%+v", a, b)
	}
	if math.Float64bits(a.HitProbability) != math.Float64bits(b.HitProbability) {
		t.Error("HitProbability is not bit-identical")
	}
}

func TestEngine_ConcurrentUse(t *testing.T) {
	engine := scoring.NewDefaultEngine()
	want := engine.Evaluate(concept.Default())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := engine.Evaluate(concept.Default()); got.HitProbability != want.HitProbability {
					t.Errorf("HitProbability = %v, want %v", got.HitProbability, want.HitProbability)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// constFactor contributes a fixed amount, for exercising the clamp.
type constFactor float64

func (f constFactor) Key() string  { return "const" }
func (f constFactor) Name() string { return "Constant" }
func (f constFactor) Evaluate(concept.Concept) scoring.FactorResult {
	return scoring.FactorResult{Key: f.Key(), Name: f.Name(), Contribution: float64(f), Line: "const"}
}

func TestEngine_Clamp(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"above max", 5, 0.95},
		{"below min", -5, 0.05},
		{"inside", 0.1, 0.45},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine := scoring.NewEngine(scoring.Defaults(), constFactor(tc.delta))
			r := engine.Evaluate(concept.Default())
			if !approx(r.HitProbability, tc.want) {
				t.Errorf("HitProbability = %v, want %v", r.HitProbability, tc.want)
			}
			if !approx(r.ExpectedPopularity, 10+90*tc.want) {
				t.Errorf("ExpectedPopularity = %v, want %v", r.ExpectedPopularity, 10+90*tc.want)
			}
		})
	}
}

func TestEngine_NoFactors(t *testing.T) {
	r := scoring.NewEngine(scoring.Defaults()).Evaluate(concept.Default())
	if r.HitProbability != 0.35 {
		t.Errorf("expected base rate 0.35, got %v", r.HitProbability)
	}
	if len(r.Explanation) != 0 {
		t.Errorf("expected no explanation lines, got %q", r.Explanation)
	}
}
