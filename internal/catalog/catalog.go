// Package catalog holds a built-in table of common ACSR conductors. The
// engine never consults it; it exists so callers (CLI flags, scenario files,
// the conductor listing endpoint) can name a conductor instead of typing its
// physical properties by hand.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gridclear/sagcalc/internal/engine"
)

// Entry pairs a catalog code word with its conductor properties and size.
type Entry struct {
	// Code is the ACSR bird-name code word, the lookup key.
	Code string `json:"code"`
	// SizeKcmil is the aluminum area in kcmil, informational.
	SizeKcmil float64 `json:"size_kcmil"`
	// Spec holds the physical properties fed to the engine.
	Spec engine.ConductorSpec `json:"spec"`
}

// conductors lists standard ACSR sizes with diameter (in), weight (lbs/ft),
// and rated breaking strength (lbs) from manufacturer tables.
var conductors = []Entry{
	{Code: "Partridge", SizeKcmil: 266.8, Spec: engine.ConductorSpec{Name: "ACSR Partridge 266.8 kcmil 26/7", Diameter: 0.642, Weight: 0.367, RBS: 11250}},
	{Code: "Linnet", SizeKcmil: 336.4, Spec: engine.ConductorSpec{Name: "ACSR Linnet 336.4 kcmil 26/7", Diameter: 0.720, Weight: 0.463, RBS: 14100}},
	{Code: "Hawk", SizeKcmil: 477, Spec: engine.ConductorSpec{Name: "ACSR Hawk 477 kcmil 26/7", Diameter: 0.858, Weight: 0.656, RBS: 19500}},
	{Code: "Dove", SizeKcmil: 556.5, Spec: engine.ConductorSpec{Name: "ACSR Dove 556.5 kcmil 26/7", Diameter: 0.927, Weight: 0.765, RBS: 22600}},
	{Code: "Drake", SizeKcmil: 795, Spec: engine.ConductorSpec{Name: "ACSR Drake 795 kcmil 26/7", Diameter: 1.108, Weight: 1.094, RBS: 31500}},
	{Code: "Cardinal", SizeKcmil: 954, Spec: engine.ConductorSpec{Name: "ACSR Cardinal 954 kcmil 54/7", Diameter: 1.196, Weight: 1.229, RBS: 33800}},
	{Code: "Bluebird", SizeKcmil: 2156, Spec: engine.ConductorSpec{Name: "ACSR Bluebird 2156 kcmil 84/19", Diameter: 1.762, Weight: 2.511, RBS: 60300}},
}

// Lookup resolves a conductor code word, case-insensitively.
func Lookup(code string) (Entry, error) {
	needle := strings.ToLower(strings.TrimSpace(code))
	for _, e := range conductors {
		if strings.ToLower(e.Code) == needle {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("unknown conductor %q: known code words are %s", code, strings.Join(Codes(), ", "))
}

// Entries returns the full table ordered by conductor size.
func Entries() []Entry {
	out := make([]Entry, len(conductors))
	copy(out, conductors)
	sort.Slice(out, func(i, j int) bool { return out[i].SizeKcmil < out[j].SizeKcmil })
	return out
}

// Codes returns the known code words ordered by conductor size.
func Codes() []string {
	entries := Entries()
	codes := make([]string, len(entries))
	for i, e := range entries {
		codes[i] = e.Code
	}
	return codes
}
