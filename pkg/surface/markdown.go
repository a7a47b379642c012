package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/blockbuster/blockbuster/pkg/concept"
	"github.com/blockbuster/blockbuster/pkg/scoring"
)

// MarkdownRenderer renders a Prediction as a markdown summary.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, p *scoring.Prediction) error {
	_, err := io.WriteString(w, BuildMarkdownSummary(p))
	return err
}

// BuildMarkdownSummary creates the markdown body for a prediction.
func BuildMarkdownSummary(p *scoring.Prediction) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## %s: %s\n\n", Title, p.Verdict))

	sb.WriteString("| Input | Value |\n|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Primary genre | %s |\n", escapeCell(string(p.Concept.Genre))))
	sb.WriteString(fmt.Sprintf("| Lead actor tier | %s |\n", escapeCell(string(p.Concept.ActorTier))))
	sb.WriteString(fmt.Sprintf("| Runtime | %d min |\n", p.Concept.Runtime))
	sb.WriteString(fmt.Sprintf("| Release month | %s |\n", concept.MonthName(p.Concept.ReleaseMonth)))
	sb.WriteString("\n")

	sb.WriteString("| Metric | Value |\n|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Hit probability | %s |\n", FormatPercent(p.Result.HitProbability)))
	sb.WriteString(fmt.Sprintf("| Expected popularity (mock) | %s |\n", FormatPopularity(p.Result.ExpectedPopularity)))
	sb.WriteString(fmt.Sprintf("| Recommendation | **%s** |\n", p.Verdict))
	sb.WriteString("\n")

	sb.WriteString("### Drivers (explainable summary)\n\n")
	for _, line := range p.Result.Explanation {
		sb.WriteString(fmt.Sprintf("- %s\n", escapeInline(line)))
	}
	sb.WriteString("\n")

	if p.Recommendation != "" {
		sb.WriteString("### Suggested business action\n\n")
		sb.WriteString(p.Recommendation)
		sb.WriteString("\n")
	}

	return sb.String()
}

var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
)

// escapeInline neutralizes markdown syntax in user-supplied text.
func escapeInline(s string) string {
	return inlineEscaper.Replace(s)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(escapeInline(s), "|", `\|`)
}
