package scoring_test

import (
	"fmt"
	"testing"

	"github.com/blockbuster/blockbuster/pkg/concept"
	"github.com/blockbuster/blockbuster/pkg/scoring"
)

func TestGenreFactor_Table(t *testing.T) {
	want := map[concept.Genre]float64{
		"Action":          0.10,
		"Adventure":       0.08,
		"Animation":       0.09,
		"Comedy":          0.06,
		"Drama":           0.03,
		"Horror":          0.07,
		"Thriller":        0.06,
		"Romance":         0.02,
		"Science Fiction": 0.08,
		"Fantasy":         0.06,
		"Documentary":     -0.02,
		"Crime":           0.04,
		"Family":          0.04,
		"Mystery":         0.04,
		"History":         0.01,
		"War":             0.00,
		"Western":         -0.01,
		"Music":           0.00,
		"TV Movie":        -0.03,
	}
	if len(want) != len(concept.AllGenres()) {
		t.Fatalf("table has %d genres, AllGenres has %d", len(want), len(concept.AllGenres()))
	}

	f := &scoring.GenreFactor{}
	for _, g := range concept.AllGenres() {
		w, ok := want[g]
		if !ok {
			t.Errorf("genre %q missing from expected table", g)
			continue
		}
		result := f.Evaluate(concept.Concept{Genre: g})
		if !approx(result.Contribution, w) {
			t.Errorf("genre %q: contribution = %v, want %v", g, result.Contribution, w)
		}
		wantLine := fmt.Sprintf("Genre: %s (%+.2f)", g, w)
		if result.Line != wantLine {
			t.Errorf("genre %q: line = %q, want %q", g, result.Line, wantLine)
		}
	}
}

func TestGenreFactor_NegativeFormatting(t *testing.T) {
	f := &scoring.GenreFactor{}
	if got := f.Evaluate(concept.Concept{Genre: "Western"}).Line; got != "Genre: Western (-0.01)" {
		t.Errorf("unexpected line %q", got)
	}
}

func TestGenreFactor_Unrecognized(t *testing.T) {
	f := &scoring.GenreFactor{}
	for _, g := range []concept.Genre{"Unknown Genre XYZ", "", "action", "Sci-Fi"} {
		result := f.Evaluate(concept.Concept{Genre: g})
		if result.Contribution != 0 {
			t.Errorf("genre %q: expected zero contribution, got %v", g, result.Contribution)
		}
	}
}
