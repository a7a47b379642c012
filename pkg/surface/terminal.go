package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/blockbuster/blockbuster/pkg/scoring"
)

// TerminalRenderer renders a Prediction as colored terminal output.
type TerminalRenderer struct{}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

// paint builds a color that follows NO_COLOR rather than TTY detection,
// so piped output keeps colors unless the user opts out.
func paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if noColor() {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

func verdictColor(v scoring.Verdict) *color.Color {
	switch v {
	case scoring.VerdictHighPotential, scoring.VerdictPromising:
		return paint(color.FgGreen, color.Bold)
	case scoring.VerdictModerate:
		return paint(color.FgYellow, color.Bold)
	case scoring.VerdictHighRisk:
		return paint(color.FgRed, color.Bold)
	default:
		return paint(color.Bold)
	}
}

func (r *TerminalRenderer) Render(w io.Writer, p *scoring.Prediction) error {
	bold := paint(color.Bold)
	dim := paint(color.Faint)
	vc := verdictColor(p.Verdict)

	// Header
	fmt.Fprintf(w, "%s\n", bold.Sprintf("%s: %s", Title, vc.Sprint(p.Verdict)))
	fmt.Fprintf(w, "%s\n\n", dim.Sprintf("Concept: %s", p.Concept))

	fmt.Fprintf(w, "Hit probability:      %s\n", bold.Sprint(FormatPercent(p.Result.HitProbability)))
	fmt.Fprintf(w, "Expected popularity:  %s\n", FormatPopularity(p.Result.ExpectedPopularity))
	fmt.Fprintf(w, "Recommendation:       %s\n\n", vc.Sprint(p.Verdict))

	fmt.Fprintln(w, "Drivers (explainable summary):")
	if len(p.Result.Explanation) == 0 {
		fmt.Fprintln(w, "  No drivers.")
	}
	for _, line := range p.Result.Explanation {
		fmt.Fprintf(w, "  - %s\n", line)
	}
	fmt.Fprintln(w)

	if p.Recommendation != "" {
		fmt.Fprintln(w, "Suggested business action:")
		for _, line := range wrapText(p.Recommendation, 70) {
			fmt.Fprintf(w, "  %s\n", dim.Sprint(line))
		}
		fmt.Fprintln(w)
	}

	return nil
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
