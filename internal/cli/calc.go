package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gridclear/sagcalc/internal/catalog"
	"github.com/gridclear/sagcalc/internal/engine"
)

var (
	// Conductor inputs
	calcConductorCode string
	calcName          string
	calcDiameter      float64
	calcWeight        float64
	calcRBS           float64

	// Span and environment inputs
	calcSpan     float64
	calcWindSpan float64
	calcHeight   float64
	calcIce      float64
	calcWind     float64
	calcVoltage  float64
	calcExposure string

	calcJSON bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate sag, tension, and clearance for a single span",
	Long: `Run the full sag and clearance calculation for one span.

The conductor comes either from the built-in ACSR catalog (--conductor)
or from explicit properties (--diameter, --weight, --rbs).

Examples:
  # Catalog conductor, 300 ft span at 70 ft, quarter inch of ice, 30 mph wind
  sagcalc calc --conductor drake --span 300 --height 70 --ice 0.25 --wind 30 --voltage 115

  # Explicit conductor properties, exposure category D
  sagcalc calc --diameter 1.107 --weight 1.093 --rbs 31500 \
    --span 300 --height 70 --ice 0.25 --wind 30 --voltage 115 --exposure D`,
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	// Conductor flags
	calcCmd.Flags().StringVarP(&calcConductorCode, "conductor", "c", "", "ACSR catalog code word (e.g. drake)")
	calcCmd.Flags().StringVar(&calcName, "name", "", "Conductor name for explicit properties")
	calcCmd.Flags().Float64VarP(&calcDiameter, "diameter", "d", 0, "Conductor diameter (in)")
	calcCmd.Flags().Float64VarP(&calcWeight, "weight", "w", 0, "Conductor weight (lbs/ft)")
	calcCmd.Flags().Float64Var(&calcRBS, "rbs", 0, "Rated breaking strength (lbs)")

	// Span flags
	calcCmd.Flags().Float64VarP(&calcSpan, "span", "s", 0, "Span length (ft) [required]")
	calcCmd.Flags().Float64Var(&calcWindSpan, "wind-span", 0, "Wind span (ft), defaults to span length")
	calcCmd.Flags().Float64Var(&calcHeight, "height", 0, "Average conductor height above ground (ft) [required]")

	// Environment flags
	calcCmd.Flags().Float64VarP(&calcIce, "ice", "i", 0, "Radial ice thickness (in)")
	calcCmd.Flags().Float64Var(&calcWind, "wind", 0, "Basic wind speed (mph)")
	calcCmd.Flags().Float64VarP(&calcVoltage, "voltage", "v", 0, "Phase-to-phase voltage class (kV) [required]")
	calcCmd.Flags().StringVarP(&calcExposure, "exposure", "e", "C", "ASCE exposure category (B, C, or D)")

	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "Emit the full result as JSON")

	calcCmd.MarkFlagRequired("span")
	calcCmd.MarkFlagRequired("height")
	calcCmd.MarkFlagRequired("voltage")
}

func runCalc(cmd *cobra.Command, args []string) error {
	in, err := buildCalcInput()
	if err != nil {
		return err
	}

	if err := engine.Validate(in); err != nil {
		return err
	}

	result, err := engine.Compute(in)
	if err != nil {
		return err
	}

	if calcJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printReport(in, result)
	return nil
}

func buildCalcInput() (engine.Input, error) {
	var spec engine.ConductorSpec

	switch {
	case calcConductorCode != "" && calcDiameter != 0:
		return engine.Input{}, errors.New("use --conductor or explicit properties, not both")
	case calcConductorCode != "":
		entry, err := catalog.Lookup(calcConductorCode)
		if err != nil {
			return engine.Input{}, err
		}
		spec = entry.Spec
	default:
		spec = engine.ConductorSpec{
			Name:     calcName,
			Diameter: calcDiameter,
			Weight:   calcWeight,
			RBS:      calcRBS,
		}
	}

	windSpan := calcWindSpan
	if windSpan == 0 {
		windSpan = calcSpan
	}

	exp, err := engine.Exposure(calcExposure)
	if err != nil {
		return engine.Input{}, err
	}

	return engine.Input{
		Conductor: spec,
		Span: engine.SpanGeometry{
			Length:    calcSpan,
			WindSpan:  windSpan,
			AvgHeight: calcHeight,
		},
		Environment: engine.EnvironmentalInput{
			IceThickness: calcIce,
			WindSpeed:    calcWind,
		},
		VoltageClassKV: calcVoltage,
		Exposure:       &exp,
	}, nil
}

func printReport(in engine.Input, result engine.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CONDUCTOR SAG AND CLEARANCE ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if in.Conductor.Name != "" {
		fmt.Fprintf(w, "  Conductor:\t%s\n", in.Conductor.Name)
	}
	fmt.Fprintf(w, "  Diameter (d):\t%.3f in\n", in.Conductor.Diameter)
	fmt.Fprintf(w, "  Weight (Wc):\t%.3f lbs/ft\n", in.Conductor.Weight)
	fmt.Fprintf(w, "  Rated Breaking Strength:\t%.0f lbs\n", in.Conductor.RBS)
	fmt.Fprintf(w, "  Span Length (l):\t%.0f ft\n", in.Span.Length)
	fmt.Fprintf(w, "  Wind Span (S):\t%.0f ft\n", in.Span.WindSpan)
	fmt.Fprintf(w, "  Avg Height (Zh):\t%.1f ft\n", in.Span.AvgHeight)
	fmt.Fprintf(w, "  Ice Thickness (I):\t%.2f in\n", in.Environment.IceThickness)
	fmt.Fprintf(w, "  Wind Speed (VI):\t%.0f mph\n", in.Environment.WindSpeed)
	fmt.Fprintf(w, "  Voltage Class:\t%.0f kV\n", in.VoltageClassKV)
	w.Flush()
	fmt.Println()

	fmt.Println("TENSIONS AND BARE SAGS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Initial Tension (35%% RBS):\t%.1f lbs\n", result.InitialTensionLbs)
	fmt.Fprintf(w, "  Final Tension (25%% RBS):\t%.1f lbs\n", result.FinalTensionLbs)
	fmt.Fprintf(w, "  Initial Sag:\t%.4f ft\n", result.InitialSagFt)
	fmt.Fprintf(w, "  Final Sag:\t%.4f ft\n", result.FinalSagFt)
	w.Flush()
	fmt.Println()

	fmt.Println("WIND PRESSURE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Height Factor (Kz):\t%.5f\n", result.Kz)
	fmt.Fprintf(w, "  Turbulence Intensity (E):\t%.5f\n", result.TurbulenceIntensity)
	fmt.Fprintf(w, "  Background Response (Bw):\t%.5f\n", result.BackgroundResponse)
	fmt.Fprintf(w, "  Gust Effect Factor (Gw):\t%.5f\n", result.GustEffectFactor)
	fmt.Fprintf(w, "  Gust Response (Kv):\t%.5f\n", result.GustResponseKv)
	fmt.Fprintf(w, "  Wind Pressure (F):\t%.4f psf\n", result.WindPressurePsf)
	w.Flush()
	fmt.Println()

	fmt.Println("LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Design Ice Thickness (Iz):\t%.4f in\n", result.DesignIceThicknessIn)
	fmt.Fprintf(w, "  Ice Load (Wi):\t%.4f lbs/ft\n", result.IceLoadLbsPerFt)
	fmt.Fprintf(w, "  Iced Diameter (di):\t%.4f in\n", result.IcedDiameterIn)
	fmt.Fprintf(w, "  Wind Load (Ww):\t%.4f lbs/ft\n", result.WindLoadLbsPerFt)
	fmt.Fprintf(w, "  Effective Load (Wt):\t%.4f lbs/ft\n", result.EffectiveLoadLbsPerFt)
	w.Flush()
	fmt.Println()

	fmt.Println("LOADED SAGS AND CLEARANCE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Design Tension (80%% RBS):\t%.1f lbs\n", result.DesignTensionLbs)
	fmt.Fprintf(w, "  Deflected Sag:\t%.4f ft\n", result.DeflectedSagFt)
	fmt.Fprintf(w, "  Vertical Sag:\t%.4f ft\n", result.VerticalSagFt)
	fmt.Fprintf(w, "  Total Sag:\t%.4f ft\n", result.TotalSagFt)
	fmt.Fprintf(w, "  Final Clearance:\t%.4f ft\n", result.FinalClearanceFt)
	w.Flush()
	fmt.Println()

	fmt.Println("NESC RULE 232 CHECK:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Adjusted Voltage:\t%.2f kV\n", result.NESC.AdjustedVoltageKV)
	fmt.Fprintf(w, "  Phase-to-Ground Voltage:\t%.2f kV\n", result.NESC.PhaseVoltageKV)
	fmt.Fprintf(w, "  Clearance Adder:\t%.2f in\n", result.NESC.ClearanceAdderIn)
	fmt.Fprintf(w, "  Required Clearance:\t%.4f ft\n", result.NESC.RequiredClearanceFt)
	fmt.Fprintf(w, "  Margin:\t%.4f ft\n", result.NESC.MarginFt)
	w.Flush()
	fmt.Println()

	verdict := "PASS ✓"
	if !result.NESC.Compliant {
		verdict = "FAIL ✗"
	}
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  NESC RULE 232 VERDICT: %s\n", verdict)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	if len(result.Warnings) > 0 {
		fmt.Println("WARNINGS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, warning := range result.Warnings {
			fmt.Printf("  [%s] %s\n", warning.Level, warning.Message)
		}
		fmt.Println()
	}
}
