// Package main provides the blockbuster CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "blockbuster",
		Short: "Pre-release success predictor for movie concepts",
		Long: `Blockbuster scores a movie concept (genre, lead actor tier, runtime and
release month) with a fixed, explainable formula and suggests a business action.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newPredictCmd(),
		newBatchCmd(),
		newServeCmd(),
		newOptionsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// firstNonEmpty returns the first non-empty string from the arguments.
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
