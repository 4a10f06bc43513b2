// Package cli implements the sagcalc command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sagcalc",
	Short: "Overhead conductor sag, tension, and clearance calculator",
	Long: `sagcalc - overhead conductor sag and clearance calculator

Computes conductor sag and tension under combined ice and wind loading
and checks ground clearance against NESC Rule 232.

The calculation chain covers:
  - Working tensions from rated breaking strength
  - Parabolic sag under bare and loaded conditions
  - ASCE terrain-dependent wind pressure with gust response
  - Radial ice loading and the combined load vector
  - NESC Rule 232 ground clearance verdict

Use 'sagcalc calc' for a single span or 'sagcalc scenario' for a
multi-line study file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
