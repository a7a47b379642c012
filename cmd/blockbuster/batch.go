package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/blockbuster/blockbuster/internal/observability"
	"github.com/blockbuster/blockbuster/internal/scenarios"
	"github.com/blockbuster/blockbuster/pkg/config"
	"github.com/blockbuster/blockbuster/pkg/scoring"
	"github.com/blockbuster/blockbuster/pkg/surface"
)

func newBatchCmd() *cobra.Command {
	var (
		from       string
		outputFmt  string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Score every scenario in a YAML or JSON file",
		Long: `Reads a scenario file from a local path, s3://bucket/key or gs://bucket/key
and scores each named concept. Results are printed only; nothing is stored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), cmd.OutOrStdout(), batchOpts{
				from:       from,
				outputFmt:  outputFmt,
				configPath: configPath,
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Scenario file: path, s3://bucket/key or gs://bucket/key (required)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: nearest .blockbuster/config.yaml)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

type batchOpts struct {
	from       string
	outputFmt  string
	configPath string
}

func runBatch(ctx context.Context, w io.Writer, opts batchOpts) error {
	if opts.outputFmt != "text" && opts.outputFmt != "json" {
		return fmt.Errorf("unknown output format %q (want text or json)", opts.outputFmt)
	}

	cfg, err := config.Resolve(opts.configPath)
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.Log.Level, "console")
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, key, err := scenarios.OpenURI(ctx, opts.from, cfg.Scenarios)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Loading scenarios from %s...\n", opts.from)
	batch, err := scenarios.NewRunner(nil, logger).Run(ctx, store, key)
	if err != nil {
		return err
	}

	switch opts.outputFmt {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(batch); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	default:
		return renderBatchTable(w, batch)
	}
}

// renderBatchTable prints one row per scenario followed by a verdict tally.
func renderBatchTable(w io.Writer, batch *scenarios.Batch) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tCONCEPT\tHIT\tPOPULARITY\tVERDICT")
	for _, o := range batch.Outcomes {
		p := o.Prediction
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			o.Name,
			p.Concept.String(),
			surface.FormatPercent(p.Result.HitProbability),
			surface.FormatPopularity(p.Result.ExpectedPopularity),
			p.Verdict,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	for _, v := range []scoring.Verdict{
		scoring.VerdictHighPotential,
		scoring.VerdictPromising,
		scoring.VerdictModerate,
		scoring.VerdictHighRisk,
	} {
		if n := batch.Verdicts[v]; n > 0 {
			fmt.Fprintf(w, "%-15s %d\n", v, n)
		}
	}
	if best, ok := batch.Best(); ok {
		fmt.Fprintf(w, "\nStrongest concept: %s (%s)\n", best.Name, surface.FormatPercent(best.Prediction.Result.HitProbability))
	}
	fmt.Fprintf(w, "Batch: %s\n", batch.ID)
	return nil
}
