// Package surface defines output rendering for blockbuster predictions.
// Implementations handle different output targets: terminal, JSON, markdown, HTML.
package surface

import (
	"fmt"
	"io"

	"github.com/blockbuster/blockbuster/pkg/scoring"
)

// Renderer produces formatted output from a Prediction.
type Renderer interface {
	// Render writes the formatted prediction to the writer.
	Render(w io.Writer, p *scoring.Prediction) error
}

// Title is the product name shown in every surface.
const Title = "The Next Blockbuster"

// FormatPercent renders a probability as a whole percentage: 0.74 -> "74%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}

// FormatPopularity renders an expected popularity on its 100-point scale.
func FormatPopularity(v float64) string {
	return fmt.Sprintf("%.1f / 100", v)
}

// ForFormat returns the renderer for an output format name.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return &TerminalRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "markdown", "md":
		return &MarkdownRenderer{}, nil
	case "html":
		return NewHTMLRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json, markdown or html)", format)
	}
}
