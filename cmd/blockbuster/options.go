package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blockbuster/blockbuster/pkg/concept"
	"github.com/blockbuster/blockbuster/pkg/scoring"
)

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List genres, actor tiers and their score contributions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOptions(cmd.OutOrStdout(), scoring.Defaults())
		},
	}
}

func printOptions(w io.Writer, weights scoring.Weights) error {
	fmt.Fprintf(w, "Base rate: %.2f\n\n", weights.BaseRate)

	fmt.Fprintln(w, "Genres:")
	for _, g := range concept.AllGenres() {
		fmt.Fprintf(w, "  %-16s %+.2f\n", g, scoring.GenreBonus(g))
	}

	fmt.Fprintln(w, "\nActor tiers:")
	for _, t := range concept.AllActorTiers() {
		fmt.Fprintf(w, "  %-16s %+.2f\n", t, scoring.TierBonus(t))
	}

	fmt.Fprintln(w, "\nRuntime:")
	fmt.Fprintf(w, "  %-16s %+.2f\n", fmt.Sprintf("%d-%d min", weights.SweetSpotMin, weights.SweetSpotMax), weights.SweetSpotBonus)
	fmt.Fprintf(w, "  %-16s %+.2f\n", fmt.Sprintf(">%d min", weights.LongRuntimeThreshold), weights.LongRuntimePenalty)
	fmt.Fprintf(w, "  %-16s %+.2f\n", "otherwise", 0.0)

	months := make([]string, 0, len(weights.PeakMonths))
	for _, m := range slices.Sorted(slices.Values(weights.PeakMonths)) {
		months = append(months, concept.MonthName(m))
	}
	fmt.Fprintf(w, "\nPeak release months (%+.2f): %s\n", weights.PeakSeasonBonus, strings.Join(months, ", "))
	return nil
}
