// Command predictor is the terminal front end to the prediction engine. It
// predicts a single fixture from flags, renders an interactive form, or
// prints the active model parameters.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pitchside/predictor-api/internal/models"
)

var rootCmd = &cobra.Command{
	Use:   "predictor",
	Short: "Match outcome predictor",
	Long: `Predictor estimates the outcome of a single fixture from recent form,
league position, scoring record, squad availability and head-to-head
history. The same engine backs the HTTP API; results are deterministic.`,
}

func main() {
	rootCmd.Version = models.ModelVersion

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(weightsCmd)

	rootCmd.PersistentFlags().String("params", "", "path to a TOML model parameter file (default: built-in)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
