package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gridclear/sagcalc/internal/engine"
)

var constantsCmd = &cobra.Command{
	Use:   "constants [category]",
	Short: "Show tension factors and exposure category constants",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConstants,
}

func init() {
	rootCmd.AddCommand(constantsCmd)
}

func runConstants(cmd *cobra.Command, args []string) error {
	categories := engine.ExposureCategories()
	if len(args) == 1 {
		if _, err := engine.Exposure(args[0]); err != nil {
			return err
		}
		categories = []string{strings.ToUpper(args[0])}
	}

	fmt.Println()
	fmt.Println("WORKING TENSION FACTORS (fractions of RBS):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Initial (stringing):\t%.2f\n", engine.InitialTensionFactor)
	fmt.Fprintf(w, "  Final (long-term):\t%.2f\n", engine.FinalTensionFactor)
	fmt.Fprintf(w, "  Design (deflected):\t%.2f\n", engine.DesignTensionFactor)
	w.Flush()
	fmt.Println()

	fmt.Println("ASCE EXPOSURE CATEGORIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  CATEGORY\tZg (ft)\tALPHA\tK\tALPHA_FM\tLS (ft)")
	for _, category := range categories {
		exp, err := engine.Exposure(category)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s\t%.0f\t%.1f\t%.3f\t%.1f\t%.0f\n",
			category, exp.Zg, exp.Alpha, exp.K, exp.AlphaFM, exp.LS)
	}
	w.Flush()
	fmt.Println()

	return nil
}
