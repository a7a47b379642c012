package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blockbuster/blockbuster/internal/scenarios"
	"github.com/blockbuster/blockbuster/pkg/concept"
	"github.com/blockbuster/blockbuster/pkg/scoring"
)

func TestPredictCmdFlags(t *testing.T) {
	cmd := newPredictCmd()
	f := cmd.Flags()

	genre, _ := f.GetString("genre")
	if genre != "Action" {
		t.Errorf("default genre = %q, want Action", genre)
	}
	tier, _ := f.GetString("actor-tier")
	if tier != "Star" {
		t.Errorf("default actor-tier = %q, want Star", tier)
	}
	runtime, _ := f.GetInt("runtime")
	if runtime != 115 {
		t.Errorf("default runtime = %d, want 115", runtime)
	}
	month, _ := f.GetInt("release-month")
	if month != 6 {
		t.Errorf("default release-month = %d, want 6", month)
	}
	outputFmt, _ := f.GetString("output")
	if outputFmt != "text" {
		t.Errorf("default output = %q, want text", outputFmt)
	}

	for _, flag := range []string{"genre", "actor-tier", "runtime", "release-month", "output", "config"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestBatchCmdFlags(t *testing.T) {
	cmd := newBatchCmd()
	f := cmd.Flags()

	outputFmt, _ := f.GetString("output")
	if outputFmt != "text" {
		t.Errorf("default output = %q, want text", outputFmt)
	}
	for _, flag := range []string{"from", "output", "config"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestServeCmdFlags(t *testing.T) {
	f := newServeCmd().Flags()
	for _, flag := range []string{"addr", "config"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"a", "b", "c"}, "a"},
		{[]string{"", "b", "c"}, "b"},
		{[]string{"", "", "c"}, "c"},
		{[]string{"", "", ""}, ""},
	}

	for _, tt := range tests {
		got := firstNonEmpty(tt.args...)
		if got != tt.want {
			t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestOverlayDefaults(t *testing.T) {
	cmd := newPredictCmd()
	if err := cmd.Flags().Parse([]string{"--genre", "Horror", "--runtime", "90"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	def := concept.Concept{Genre: "Drama", ActorTier: "Rising", Runtime: 100, ReleaseMonth: 11}
	in := concept.Concept{Genre: "Horror", ActorTier: "Star", Runtime: 90, ReleaseMonth: 6}
	got := overlayDefaults(cmd, in, def)

	want := concept.Concept{Genre: "Horror", ActorTier: "Rising", Runtime: 90, ReleaseMonth: 11}
	if got != want {
		t.Errorf("overlayDefaults = %+v, want %+v", got, want)
	}
}

func TestRunPredict_Text(t *testing.T) {
	var buf bytes.Buffer
	c := concept.Concept{Genre: "Animation", ActorTier: "Superstar", Runtime: 120, ReleaseMonth: 12}
	if err := runPredict(&buf, c, "text"); err != nil {
		t.Fatalf("runPredict: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"83%", "84.7 / 100", "High Potential", "Genre: Animation (+0.09)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRunPredict_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := runPredict(&buf, concept.Default(), "json"); err != nil {
		t.Fatalf("runPredict: %v", err)
	}

	var p scoring.Prediction
	if err := json.Unmarshal(buf.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Verdict != scoring.VerdictPromising {
		t.Errorf("verdict = %q, want Promising", p.Verdict)
	}
	if len(p.Result.Explanation) != 4 {
		t.Errorf("expected 4 explanation lines, got %d", len(p.Result.Explanation))
	}
}

func TestRunPredict_UnknownFormat(t *testing.T) {
	if err := runPredict(&bytes.Buffer{}, concept.Default(), "yaml"); err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestPrintOptions(t *testing.T) {
	var buf bytes.Buffer
	if err := printOptions(&buf, scoring.Defaults()); err != nil {
		t.Fatalf("printOptions: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Base rate: 0.35",
		"Science Fiction",
		"TV Movie",
		"-0.03",
		"Superstar",
		"+0.28",
		"95-135 min",
		">160 min",
		"June, July, November, December",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in options output:\n%s", want, out)
		}
	}
}

func TestRenderBatchTable(t *testing.T) {
	list := []concept.Scenario{
		{Name: "summer tentpole", Concept: concept.Concept{Genre: "Action", ActorTier: "Star", Runtime: 115, ReleaseMonth: 6}},
		{Name: "long doc", Concept: concept.Concept{Genre: "Documentary", ActorTier: "Unknown", Runtime: 200, ReleaseMonth: 3}},
	}
	batch, err := scenarios.NewRunner(nil, nil).Evaluate(context.Background(), "inline", list)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	var buf bytes.Buffer
	if err := renderBatchTable(&buf, batch); err != nil {
		t.Fatalf("renderBatchTable: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"SCENARIO",
		"summer tentpole",
		"74%",
		"Promising",
		"long doc",
		"High Risk",
		"Strongest concept: summer tentpole (74%)",
		batch.ID,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in batch output:\n%s", want, out)
		}
	}
}

func TestRunBatch_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slate.yaml")
	doc := `scenarios:
  - name: holiday family
    genre: Family
    actor_tier: Rising
    runtime: 100
    release_month: 11
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := runBatch(context.Background(), &buf, batchOpts{from: path, outputFmt: "json"})
	if err != nil {
		t.Fatalf("runBatch: %v", err)
	}

	var batch scenarios.Batch
	if err := json.Unmarshal(buf.Bytes(), &batch); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(batch.Outcomes) != 1 || batch.Outcomes[0].Name != "holiday family" {
		t.Fatalf("unexpected outcomes %+v", batch.Outcomes)
	}
	// 0.35 + 0.08 + 0.04 + 0.06 + 0.05
	if got := batch.Outcomes[0].Prediction.Result.HitProbability; got < 0.579999 || got > 0.580001 {
		t.Errorf("hit probability = %v, want 0.58", got)
	}
}

func TestRunBatch_BadOutput(t *testing.T) {
	err := runBatch(context.Background(), &bytes.Buffer{}, batchOpts{from: "x.yaml", outputFmt: "markdown"})
	if err == nil {
		t.Error("expected error for unsupported batch output")
	}
}
