package engine

import "fmt"

// NESC-compliant working tensions as fractions of rated breaking strength.
const (
	InitialTensionFactor = 0.35 // stringing tension
	FinalTensionFactor   = 0.25 // long-term operating tension
	DesignTensionFactor  = 0.80 // deflected-sag design tension
)

// ExposureConstants is the set of terrain constants feeding the wind-pressure
// formulas (ASCE exposure category model). Values are fixed per category and
// never mutated at runtime; substituting a category never touches formula
// code.
type ExposureConstants struct {
	// Zg is the gradient height of the atmospheric boundary layer in ft.
	Zg float64 `json:"zg_ft"`
	// Alpha is the power-law exponent of the wind profile.
	Alpha float64 `json:"alpha"`
	// K is the surface roughness coefficient.
	K float64 `json:"k"`
	// AlphaFM is the turbulence-intensity exponent.
	AlphaFM float64 `json:"alpha_fm"`
	// LS is the integral length scale of turbulence in ft.
	LS float64 `json:"ls_ft"`
	// Q is the velocity pressure constant, psf/mph².
	Q float64 `json:"q"`
	// Kzt is the topographic factor (1.0 for flat terrain).
	Kzt float64 `json:"kzt"`
	// Cf is the force coefficient for cylindrical conductors.
	Cf float64 `json:"cf"`
}

// exposureCategories maps ASCE exposure category letters to their constants.
// Unexported so the canonical values cannot be mutated; Exposure returns
// copies.
var exposureCategories = map[string]ExposureConstants{
	"B": {Zg: 1200, Alpha: 7.0, K: 0.010, AlphaFM: 4.5, LS: 170, Q: 0.00256, Kzt: 1, Cf: 1},
	"C": {Zg: 900, Alpha: 9.5, K: 0.005, AlphaFM: 7.0, LS: 200, Q: 0.00256, Kzt: 1, Cf: 1},
	"D": {Zg: 700, Alpha: 11.5, K: 0.003, AlphaFM: 10.0, LS: 250, Q: 0.00256, Kzt: 1, Cf: 1},
}

// CategoryC returns the open-terrain (category C) constants, the default for
// every calculation that does not select a category explicitly.
func CategoryC() ExposureConstants {
	return exposureCategories["C"]
}

// Exposure returns the constants for an exposure category letter ("B", "C",
// or "D", case-insensitive). The returned struct is a copy.
func Exposure(category string) (ExposureConstants, error) {
	c, ok := exposureCategories[normalizeCategory(category)]
	if !ok {
		return ExposureConstants{}, fmt.Errorf("unknown exposure category %q: must be B, C, or D", category)
	}
	return c, nil
}

// ExposureCategories lists the recognized category letters in order.
func ExposureCategories() []string {
	return []string{"B", "C", "D"}
}

func normalizeCategory(category string) string {
	switch category {
	case "b":
		return "B"
	case "c":
		return "C"
	case "d":
		return "D"
	}
	return category
}
