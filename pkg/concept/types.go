// Package concept defines the movie concept a prediction is made for.
// These types are the shared vocabulary between scoring, rendering and the
// HTTP and CLI front ends.
package concept

import "fmt"

// Genre is the primary genre of a movie concept.
// Values outside the known set are legal and score as neutral.
type Genre string

const (
	GenreAction         Genre = "Action"
	GenreAdventure      Genre = "Adventure"
	GenreAnimation      Genre = "Animation"
	GenreComedy         Genre = "Comedy"
	GenreCrime          Genre = "Crime"
	GenreDocumentary    Genre = "Documentary"
	GenreDrama          Genre = "Drama"
	GenreFamily         Genre = "Family"
	GenreFantasy        Genre = "Fantasy"
	GenreHistory        Genre = "History"
	GenreHorror         Genre = "Horror"
	GenreMusic          Genre = "Music"
	GenreMystery        Genre = "Mystery"
	GenreRomance        Genre = "Romance"
	GenreScienceFiction Genre = "Science Fiction"
	GenreTVMovie        Genre = "TV Movie"
	GenreThriller       Genre = "Thriller"
	GenreWar            Genre = "War"
	GenreWestern        Genre = "Western"
)

// AllGenres returns the known genres in display order.
func AllGenres() []Genre {
	return []Genre{
		GenreAction, GenreAdventure, GenreAnimation, GenreComedy, GenreCrime,
		GenreDocumentary, GenreDrama, GenreFamily, GenreFantasy, GenreHistory,
		GenreHorror, GenreMusic, GenreMystery, GenreRomance,
		GenreScienceFiction, GenreTVMovie, GenreThriller, GenreWar, GenreWestern,
	}
}

// Known reports whether g is one of the genres returned by AllGenres.
func (g Genre) Known() bool {
	for _, k := range AllGenres() {
		if g == k {
			return true
		}
	}
	return false
}

// ActorTier is the market tier of the lead actor.
type ActorTier string

const (
	TierUnknown   ActorTier = "Unknown"
	TierRising    ActorTier = "Rising"
	TierStar      ActorTier = "Star"
	TierSuperstar ActorTier = "Superstar"
)

// AllActorTiers returns the known tiers from weakest to strongest.
func AllActorTiers() []ActorTier {
	return []ActorTier{TierUnknown, TierRising, TierStar, TierSuperstar}
}

// Known reports whether t is one of the tiers returned by AllActorTiers.
func (t ActorTier) Known() bool {
	switch t {
	case TierUnknown, TierRising, TierStar, TierSuperstar:
		return true
	default:
		return false
	}
}

// Bounds used by input widgets. Scoring itself accepts any integer.
const (
	MinRuntime  = 60
	MaxRuntime  = 220
	RuntimeStep = 5
	MinMonth    = 1
	MaxMonth    = 12
)

// Concept describes a hypothetical movie. It carries no validation:
// every combination of values can be scored.
type Concept struct {
	Genre        Genre     `json:"genre" yaml:"genre"`
	ActorTier    ActorTier `json:"actor_tier" yaml:"actor_tier"`
	Runtime      int       `json:"runtime" yaml:"runtime"`             // minutes
	ReleaseMonth int       `json:"release_month" yaml:"release_month"` // 1-12
}

// Default returns the concept the input form starts with.
func Default() Concept {
	return Concept{
		Genre:        GenreAction,
		ActorTier:    TierStar,
		Runtime:      115,
		ReleaseMonth: 6,
	}
}

func (c Concept) String() string {
	return fmt.Sprintf("%s / %s / %d min / %s", c.Genre, c.ActorTier, c.Runtime, MonthName(c.ReleaseMonth))
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name of month m (1-12).
// Out-of-range values render as "Month m".
func MonthName(m int) string {
	if m < MinMonth || m > MaxMonth {
		return fmt.Sprintf("Month %d", m)
	}
	return monthNames[m-1]
}
