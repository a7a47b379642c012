package surface

import (
	"bytes"
	"fmt"
	"io"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/blockbuster/blockbuster/pkg/scoring"
)

// HTMLRenderer renders a Prediction as a sanitized HTML fragment.
// The markdown summary is converted with goldmark and passed through a
// bluemonday UGC policy, since concept fields come straight from users.
type HTMLRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewHTMLRenderer creates an HTMLRenderer with GitHub-flavored markdown tables.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
	}
}

func (r *HTMLRenderer) Render(w io.Writer, p *scoring.Prediction) error {
	out, err := r.Fragment(p)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Fragment returns the sanitized HTML for a prediction.
func (r *HTMLRenderer) Fragment(p *scoring.Prediction) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(BuildMarkdownSummary(p)), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return `<section class="prediction">` + r.policy.Sanitize(buf.String()) + `</section>`, nil
}
