package surface

import (
	"encoding/json"
	"io"

	"github.com/blockbuster/blockbuster/pkg/scoring"
)

// JSONRenderer marshals a Prediction to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, p *scoring.Prediction) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
