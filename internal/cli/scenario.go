package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gridclear/sagcalc/internal/engine"
	"github.com/gridclear/sagcalc/internal/scenario"
)

var scenarioJSON bool

var scenarioCmd = &cobra.Command{
	Use:   "scenario <file.hcl>",
	Short: "Run every line in a scenario study file",
	Long: `Load an HCL scenario file and run the sag and clearance calculation
for each line block, printing a per-line summary.

Example scenario file:

  line "river-crossing" {
    voltage_kv = 115

    conductor {
      catalog = "drake"
    }
    span {
      length = 300
      height = 70
    }
    environment {
      ice_thickness = 0.25
      wind_speed    = 30
    }
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runScenario,
}

func init() {
	scenarioCmd.Flags().BoolVar(&scenarioJSON, "json", false, "Emit all results as JSON")
	rootCmd.AddCommand(scenarioCmd)
}

type scenarioResult struct {
	Name   string        `json:"name"`
	Result engine.Result `json:"result"`
}

func runScenario(cmd *cobra.Command, args []string) error {
	cases, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	results := make([]scenarioResult, 0, len(cases))
	for _, c := range cases {
		result, err := engine.Compute(c.Input)
		if err != nil {
			return fmt.Errorf("line %q: %w", c.Name, err)
		}
		results = append(results, scenarioResult{Name: c.Name, Result: result})
	}

	if scenarioJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Println()
	fmt.Printf("SCENARIO: %s (%d lines)\n", args[0], len(results))
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  LINE\tTOTAL SAG (ft)\tCLEARANCE (ft)\tREQUIRED (ft)\tMARGIN (ft)\tNESC 232")
	for _, r := range results {
		verdict := "PASS"
		if !r.Result.NESC.Compliant {
			verdict = "FAIL"
		}
		fmt.Fprintf(w, "  %s\t%.4f\t%.4f\t%.4f\t%.4f\t%s\n",
			r.Name,
			r.Result.TotalSagFt,
			r.Result.FinalClearanceFt,
			r.Result.NESC.RequiredClearanceFt,
			r.Result.NESC.MarginFt,
			verdict,
		)
	}
	w.Flush()
	fmt.Println()

	for _, r := range results {
		for _, warning := range r.Result.Warnings {
			fmt.Printf("  [%s] %s: %s\n", warning.Level, r.Name, warning.Message)
		}
	}

	return nil
}
