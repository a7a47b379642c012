package scenarios

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blockbuster/blockbuster/pkg/concept"
	"github.com/blockbuster/blockbuster/pkg/scoring"
)

// Outcome is the prediction for one named scenario.
type Outcome struct {
	Name       string             `json:"name"`
	Prediction scoring.Prediction `json:"prediction"`
}

// Batch is the result of evaluating a scenario file. Nothing is persisted:
// a Batch lives only as long as the caller keeps it.
type Batch struct {
	ID          string                  `json:"id"`
	Source      string                  `json:"source"`
	EvaluatedAt time.Time               `json:"evaluated_at"`
	Outcomes    []Outcome               `json:"outcomes"`
	Verdicts    map[scoring.Verdict]int `json:"verdicts"`
}

// Best returns the outcome with the highest hit probability. Ties keep the
// earliest scenario. ok is false for an empty batch.
func (b *Batch) Best() (best Outcome, ok bool) {
	for i, o := range b.Outcomes {
		if i == 0 || o.Prediction.Result.HitProbability > best.Prediction.Result.HitProbability {
			best = o
			ok = true
		}
	}
	return best, ok
}

// Runner loads scenario files and scores every scenario in them.
type Runner struct {
	engine *scoring.Engine
	logger *zap.Logger
	now    func() time.Time
}

// NewRunner creates a Runner. A nil engine uses the default engine; a nil
// logger discards logs.
func NewRunner(engine *scoring.Engine, logger *zap.Logger) *Runner {
	if engine == nil {
		engine = scoring.NewDefaultEngine()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{engine: engine, logger: logger, now: time.Now}
}

// Run fetches key from store, parses it by extension and evaluates it.
func (r *Runner) Run(ctx context.Context, store Store, key string) (*Batch, error) {
	format, err := concept.FormatFromPath(key)
	if err != nil {
		return nil, err
	}

	data, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("fetching scenarios: %w", err)
	}

	list, err := concept.ParseScenarios(data, format)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("scenarios loaded", zap.String("source", key), zap.Int("count", len(list)))
	return r.Evaluate(ctx, key, list)
}

// Evaluate scores scenarios in order. It stops early only if ctx is cancelled.
func (r *Runner) Evaluate(ctx context.Context, source string, list []concept.Scenario) (*Batch, error) {
	batch := &Batch{
		ID:          uuid.NewString(),
		Source:      source,
		EvaluatedAt: r.now().UTC(),
		Outcomes:    make([]Outcome, 0, len(list)),
		Verdicts:    make(map[scoring.Verdict]int),
	}

	for _, sc := range list {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("evaluating scenarios: %w", err)
		}
		p := r.engine.Predict(sc.Concept)
		batch.Outcomes = append(batch.Outcomes, Outcome{Name: sc.Name, Prediction: p})
		batch.Verdicts[p.Verdict]++
	}

	r.logger.Info("scenario batch evaluated",
		zap.String("batch_id", batch.ID),
		zap.String("source", source),
		zap.Int("scenarios", len(batch.Outcomes)),
	)
	return batch, nil
}
