package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blockbuster/blockbuster/internal/observability"
	"github.com/blockbuster/blockbuster/pkg/concept"
	"github.com/blockbuster/blockbuster/pkg/scoring"
	"github.com/blockbuster/blockbuster/pkg/surface"
)

const maxRequestBytes = 64 << 10

// predictRequest is the body of POST /api/v1/predict.
// Genre and tier are free-form: unknown values score as neutral.
type predictRequest struct {
	Genre        concept.Genre     `json:"genre"`
	ActorTier    concept.ActorTier `json:"actor_tier"`
	Runtime      *int              `json:"runtime" validate:"required"`
	ReleaseMonth *int              `json:"release_month" validate:"required"`
}

type predictResponse struct {
	PredictionID string `json:"prediction_id"`
	scoring.Prediction
	Display displayView `json:"display"`
}

// displayView carries the values pre-formatted the way the page shows them.
type displayView struct {
	HitProbability     string `json:"hit_probability"`
	ExpectedPopularity string `json:"expected_popularity"`
	ReleaseMonth       string `json:"release_month"`
}

func newDisplayView(p scoring.Prediction) displayView {
	return displayView{
		HitProbability:     surface.FormatPercent(p.Result.HitProbability),
		ExpectedPopularity: surface.FormatPopularity(p.Result.ExpectedPopularity),
		ReleaseMonth:       concept.MonthName(p.Concept.ReleaseMonth),
	}
}

func (h *Handler) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	c := concept.Concept{
		Genre:        req.Genre,
		ActorTier:    req.ActorTier,
		Runtime:      *req.Runtime,
		ReleaseMonth: *req.ReleaseMonth,
	}
	p := h.engine.Predict(c)
	resp := predictResponse{
		PredictionID: uuid.NewString(),
		Prediction:   p,
		Display:      newDisplayView(p),
	}

	observability.FromContext(r.Context()).Debug("prediction served",
		zap.String("prediction_id", resp.PredictionID),
		zap.String("genre", string(c.Genre)),
		zap.Bool("genre_known", c.Genre.Known()),
		zap.String("actor_tier", string(c.ActorTier)),
		zap.Float64("hit_probability", p.Result.HitProbability),
	)

	writeJSON(w, http.StatusOK, resp)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("field %s is %s", verrs[0].Field(), verrs[0].Tag())
	}
	return "invalid request"
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type optionsResponse struct {
	Genres        []categoryOption `json:"genres"`
	ActorTiers    []categoryOption `json:"actor_tiers"`
	Runtime       runtimeOption    `json:"runtime"`
	ReleaseMonths []monthOption    `json:"release_months"`
	Defaults      concept.Concept  `json:"defaults"`
}

type categoryOption struct {
	Name         string  `json:"name"`
	Contribution float64 `json:"contribution"`
}

type runtimeOption struct {
	Min  int `json:"min"`
	Max  int `json:"max"`
	Step int `json:"step"`
}

type monthOption struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
	Peak  bool   `json:"peak"`
}

func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	resp := optionsResponse{
		Runtime:  runtimeOption{Min: concept.MinRuntime, Max: concept.MaxRuntime, Step: concept.RuntimeStep},
		Defaults: h.defaults,
	}
	for _, g := range concept.AllGenres() {
		resp.Genres = append(resp.Genres, categoryOption{Name: string(g), Contribution: scoring.GenreBonus(g)})
	}
	for _, t := range concept.AllActorTiers() {
		resp.ActorTiers = append(resp.ActorTiers, categoryOption{Name: string(t), Contribution: scoring.TierBonus(t)})
	}
	for m := concept.MinMonth; m <= concept.MaxMonth; m++ {
		resp.ReleaseMonths = append(resp.ReleaseMonths, monthOption{
			Value: m,
			Name:  concept.MonthName(m),
			Peak:  slices.Contains(h.weights.PeakMonths, m),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
