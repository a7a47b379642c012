package scoring

import (
	"fmt"

	"github.com/blockbuster/blockbuster/pkg/concept"
)

// GenreFactor scores the primary genre.
type GenreFactor struct{}

func (f *GenreFactor) Key() string  { return "genre" }
func (f *GenreFactor) Name() string { return "Genre" }

func (f *GenreFactor) Evaluate(c concept.Concept) FactorResult {
	v := GenreBonus(c.Genre)
	return FactorResult{
		Key:          f.Key(),
		Name:         f.Name(),
		Category:     string(c.Genre),
		Contribution: v,
		Line:         fmt.Sprintf("Genre: %s (%+.2f)", c.Genre, v),
	}
}

// GenreBonus returns the score contribution of a genre.
// Unrecognized genres contribute 0.
func GenreBonus(g concept.Genre) float64 {
	switch g {
	case concept.GenreAction:
		return 0.10
	case concept.GenreAdventure:
		return 0.08
	case concept.GenreAnimation:
		return 0.09
	case concept.GenreComedy:
		return 0.06
	case concept.GenreDrama:
		return 0.03
	case concept.GenreHorror:
		return 0.07
	case concept.GenreThriller:
		return 0.06
	case concept.GenreRomance:
		return 0.02
	case concept.GenreScienceFiction:
		return 0.08
	case concept.GenreFantasy:
		return 0.06
	case concept.GenreDocumentary:
		return -0.02
	case concept.GenreCrime:
		return 0.04
	case concept.GenreFamily:
		return 0.04
	case concept.GenreMystery:
		return 0.04
	case concept.GenreHistory:
		return 0.01
	case concept.GenreWar:
		return 0.00
	case concept.GenreWestern:
		return -0.01
	case concept.GenreMusic:
		return 0.00
	case concept.GenreTVMovie:
		return -0.03
	default:
		return 0.0
	}
}
