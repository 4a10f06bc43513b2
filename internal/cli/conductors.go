package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gridclear/sagcalc/internal/catalog"
)

var conductorsCmd = &cobra.Command{
	Use:   "conductors",
	Short: "List the built-in ACSR conductor catalog",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("ACSR CONDUCTOR CATALOG:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  CODE\tSIZE (kcmil)\tDIAMETER (in)\tWEIGHT (lbs/ft)\tRBS (lbs)")
		for _, e := range catalog.Entries() {
			fmt.Fprintf(w, "  %s\t%.1f\t%.3f\t%.3f\t%.0f\n",
				e.Code, e.SizeKcmil, e.Spec.Diameter, e.Spec.Weight, e.Spec.RBS)
		}
		w.Flush()
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(conductorsCmd)
}
