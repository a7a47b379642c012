package api

import (
	"html/template"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/blockbuster/blockbuster/internal/observability"
	"github.com/blockbuster/blockbuster/pkg/concept"
	"github.com/blockbuster/blockbuster/pkg/surface"
)

type pageData struct {
	Title       string
	Form        concept.Concept
	Genres      []concept.Genre
	Tiers       []concept.ActorTier
	Months      []monthOption
	RuntimeMin  int
	RuntimeMax  int
	RuntimeStep int
	Result      template.HTML // sanitized prediction fragment, empty before the first run
}

var pageFuncs = template.FuncMap{
	"monthName": concept.MonthName,
}

// conceptFromQuery overlays query parameters on the default concept.
// Absent or non-numeric numbers keep their defaults; genre and tier are
// taken verbatim when present.
func conceptFromQuery(q url.Values, def concept.Concept) concept.Concept {
	c := def
	if q.Has("genre") {
		c.Genre = concept.Genre(q.Get("genre"))
	}
	if q.Has("actor_tier") {
		c.ActorTier = concept.ActorTier(q.Get("actor_tier"))
	}
	if v, err := strconv.Atoi(q.Get("runtime")); err == nil {
		c.Runtime = v
	}
	if v, err := strconv.Atoi(q.Get("release_month")); err == nil {
		c.ReleaseMonth = v
	}
	return c
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := pageData{
		Title:       surface.Title,
		Form:        conceptFromQuery(q, h.defaults),
		Genres:      concept.AllGenres(),
		Tiers:       concept.AllActorTiers(),
		RuntimeMin:  concept.MinRuntime,
		RuntimeMax:  concept.MaxRuntime,
		RuntimeStep: concept.RuntimeStep,
	}
	for m := concept.MinMonth; m <= concept.MaxMonth; m++ {
		data.Months = append(data.Months, monthOption{
			Value: m,
			Name:  concept.MonthName(m),
			Peak:  slices.Contains(h.weights.PeakMonths, m),
		})
	}

	if q.Has("predict") {
		p := h.engine.Predict(data.Form)
		fragment, err := h.html.Fragment(&p)
		if err != nil {
			observability.FromContext(r.Context()).Error("rendering prediction", zap.Error(err))
			http.Error(w, "rendering failed", http.StatusInternalServerError)
			return
		}
		// Fragment output has been through the bluemonday policy.
		data.Result = template.HTML(fragment)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page.Execute(w, data); err != nil {
		observability.FromContext(r.Context()).Error("executing page template", zap.Error(err))
	}
}

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  body {font-family: system-ui, sans-serif; background: #101018; color: #eee; margin: 0; padding: 1.2rem 2rem 2rem;}
  .hero {padding: 1.2rem 1.4rem; border-radius: 18px; border: 1px solid rgba(255,255,255,0.10);
         background: linear-gradient(135deg, rgba(120,30,60,0.35), rgba(20,20,40,0.35));}
  .big {font-size: 2.2rem; font-weight: 800; line-height: 1;}
  .small {font-size: 0.95rem; opacity: 0.85;}
  .label {display: inline-block; padding: 0.15rem 0.55rem; margin-right: 0.35rem; border-radius: 999px;
          background: rgba(255,255,255,0.06); border: 1px solid rgba(255,255,255,0.10);}
  .cols {display: grid; grid-template-columns: 1.05fr 0.95fr; gap: 2rem; margin-top: 1.2rem;}
  .card {padding: 1.2rem 1.4rem; border-radius: 18px; background: rgba(255,255,255,0.04);
         border: 1px solid rgba(255,255,255,0.10);}
  label {display: block; margin-top: 0.9rem;}
  button {margin-top: 1.2rem; width: 100%; padding: 0.6rem; font-weight: 700;}
  table {border-collapse: collapse;} td, th {padding: 0.2rem 0.8rem 0.2rem 0; text-align: left;}
</style>
</head>
<body>
<div class="hero">
  <div class="big">{{.Title}}</div>
  <div class="small">Demo of a pre-release success predictor (genre + actor). Scores come from a fixed illustrative formula.</div>
  <div style="margin-top:0.6rem;"><span class="label">Pre-release</span><span class="label">Business-oriented</span><span class="label">Explainable</span></div>
</div>
<div class="cols">
  <form class="card" method="get" action="/">
    <h3>Input: movie concept</h3>
    <label>Primary genre
      <select name="genre">
        {{- range .Genres}}
        <option value="{{.}}"{{if eq . $.Form.Genre}} selected{{end}}>{{.}}</option>
        {{- end}}
      </select>
    </label>
    <label>Lead actor market tier</label>
    {{- range .Tiers}}
    <label style="display:inline-block; margin-right:1rem;"><input type="radio" name="actor_tier" value="{{.}}"{{if eq . $.Form.ActorTier}} checked{{end}}> {{.}}</label>
    {{- end}}
    <label>Runtime (minutes): <output id="rt">{{.Form.Runtime}}</output>
      <input type="range" name="runtime" min="{{.RuntimeMin}}" max="{{.RuntimeMax}}" step="{{.RuntimeStep}}" value="{{.Form.Runtime}}" oninput="document.getElementById('rt').value=this.value">
    </label>
    <label>Release month
      <select name="release_month">
        {{- range .Months}}
        <option value="{{.Value}}"{{if eq .Value $.Form.ReleaseMonth}} selected{{end}}>{{.Name}}{{if .Peak}} (peak){{end}}</option>
        {{- end}}
      </select>
    </label>
    <button type="submit" name="predict" value="1">Predict success</button>
  </form>
  <div class="card">
    <h3>Output: decision support</h3>
    {{- if .Result}}
    <p class="small">{{.Form.Genre}} / {{.Form.ActorTier}} / {{.Form.Runtime}} min / {{monthName .Form.ReleaseMonth}}</p>
    {{.Result}}
    {{- else}}
    <p>Select inputs on the left and click <strong>Predict success</strong>.</p>
    <p class="small">No API calls and no ML models are used.</p>
    {{- end}}
  </div>
</div>
</body>
</html>
`
