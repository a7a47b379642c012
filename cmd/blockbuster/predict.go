package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockbuster/blockbuster/pkg/concept"
	"github.com/blockbuster/blockbuster/pkg/config"
	"github.com/blockbuster/blockbuster/pkg/scoring"
	"github.com/blockbuster/blockbuster/pkg/surface"
)

func newPredictCmd() *cobra.Command {
	var (
		genre        string
		actorTier    string
		runtime      int
		releaseMonth int
		outputFmt    string
		configPath   string
	)

	def := concept.Default()
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Score a single movie concept",
		Long: `Scores one concept and prints the hit probability, expected popularity,
verdict, explanation and suggested action. Unknown genres and tiers are scored
as neutral rather than rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := concept.Concept{
				Genre:        concept.Genre(genre),
				ActorTier:    concept.ActorTier(actorTier),
				Runtime:      runtime,
				ReleaseMonth: releaseMonth,
			}
			cfg, err := config.Resolve(configPath)
			if err != nil {
				return err
			}
			c = overlayDefaults(cmd, c, cfg.Defaults)
			return runPredict(cmd.OutOrStdout(), c, outputFmt)
		},
	}

	cmd.Flags().StringVar(&genre, "genre", string(def.Genre), "Primary genre")
	cmd.Flags().StringVar(&actorTier, "actor-tier", string(def.ActorTier), "Lead actor market tier: Unknown, Rising, Star or Superstar")
	cmd.Flags().IntVar(&runtime, "runtime", def.Runtime, "Runtime in minutes")
	cmd.Flags().IntVar(&releaseMonth, "release-month", def.ReleaseMonth, "Release month (1-12)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json, markdown or html")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: nearest .blockbuster/config.yaml)")

	return cmd
}

func runPredict(w io.Writer, c concept.Concept, outputFmt string) error {
	renderer, err := surface.ForFormat(outputFmt)
	if err != nil {
		return err
	}

	if !c.Genre.Known() {
		fmt.Fprintf(os.Stderr, "Note: genre %q is not in the known list; it contributes +0.00\n", c.Genre)
	}
	if !c.ActorTier.Known() {
		fmt.Fprintf(os.Stderr, "Note: actor tier %q is not recognized; it contributes +0.00\n", c.ActorTier)
	}

	p := scoring.Predict(c)
	if err := renderer.Render(w, &p); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}

// overlayDefaults takes every field whose flag was not set explicitly from
// the configured default concept.
func overlayDefaults(cmd *cobra.Command, c, def concept.Concept) concept.Concept {
	f := cmd.Flags()
	if !f.Changed("genre") {
		c.Genre = def.Genre
	}
	if !f.Changed("actor-tier") {
		c.ActorTier = def.ActorTier
	}
	if !f.Changed("runtime") {
		c.Runtime = def.Runtime
	}
	if !f.Changed("release-month") {
		c.ReleaseMonth = def.ReleaseMonth
	}
	return c
}
