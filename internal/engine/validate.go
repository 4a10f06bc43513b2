package engine

import (
	"fmt"
	"math"
)

// MinAvgHeight is the smallest accepted average conductor height in ft. Zh
// appears under 33/Zh and as a power-law base, so validation keeps it away
// from zero instead of trusting the formulas to stay finite.
const MinAvgHeight = 1.0

// Advisory thresholds from the legacy validation ranges. Exceeding one
// produces a warning, never an error.
const (
	typicalMaxWeight       = 10.0  // lbs/ft
	typicalMaxDiameter     = 5.0   // in
	typicalMaxIceThickness = 2.0   // in
	typicalMaxWindSpeed    = 200.0 // mph
	maxSagToSpanRatio      = 0.5
)

// Validate checks every precondition on an Input and returns a
// *ValidationError naming all violated fields, or nil. Compute calls it
// first; callers may also use it directly for early form validation.
func Validate(in Input) error {
	var fields []FieldError

	add := func(field, msg string) {
		fields = append(fields, FieldError{Field: field, Message: msg})
	}
	requirePositive := func(field string, v float64) {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			add(field, "must be a finite number")
		case v <= 0:
			add(field, "must be greater than zero")
		}
	}
	requireNonNegative := func(field string, v float64) {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			add(field, "must be a finite number")
		case v < 0:
			add(field, "must not be negative")
		}
	}

	requirePositive("conductor.diameter_in", in.Conductor.Diameter)
	requirePositive("conductor.weight_lbs_per_ft", in.Conductor.Weight)
	requirePositive("conductor.rbs_lbs", in.Conductor.RBS)
	requirePositive("span.length_ft", in.Span.Length)
	requirePositive("span.wind_span_ft", in.Span.WindSpan)
	requireNonNegative("environment.ice_thickness_in", in.Environment.IceThickness)
	requireNonNegative("environment.wind_speed_mph", in.Environment.WindSpeed)
	requirePositive("voltage_class_kv", in.VoltageClassKV)

	switch zh := in.Span.AvgHeight; {
	case math.IsNaN(zh) || math.IsInf(zh, 0):
		add("span.avg_height_ft", "must be a finite number")
	case zh < MinAvgHeight:
		add("span.avg_height_ft", fmt.Sprintf("must be at least %g ft", MinAvgHeight))
	}

	if exp := in.Exposure; exp != nil {
		requirePositive("exposure.zg_ft", exp.Zg)
		requirePositive("exposure.alpha", exp.Alpha)
		requirePositive("exposure.k", exp.K)
		requirePositive("exposure.alpha_fm", exp.AlphaFM)
		requirePositive("exposure.ls_ft", exp.LS)
		requirePositive("exposure.q", exp.Q)
		requirePositive("exposure.kzt", exp.Kzt)
		requirePositive("exposure.cf", exp.Cf)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// inputWarnings flags legal but atypical inputs, mirroring the sanity ranges
// the legacy validators enforced as soft checks.
func inputWarnings(in Input) []Warning {
	var ws []Warning

	if in.Conductor.Weight > typicalMaxWeight {
		ws = append(ws, Warning{
			Level:   WarnCaution,
			Field:   "conductor.weight_lbs_per_ft",
			Message: fmt.Sprintf("conductor weight %.2f lbs/ft is unusually high, verify the specification", in.Conductor.Weight),
		})
	}
	if in.Conductor.Diameter > typicalMaxDiameter {
		ws = append(ws, Warning{
			Level:   WarnCaution,
			Field:   "conductor.diameter_in",
			Message: fmt.Sprintf("conductor diameter %.2f in is unusually large, verify the specification", in.Conductor.Diameter),
		})
	}
	if in.Environment.IceThickness > typicalMaxIceThickness {
		ws = append(ws, Warning{
			Level:   WarnCaution,
			Field:   "environment.ice_thickness_in",
			Message: fmt.Sprintf("ice thickness %.2f in exceeds typical NESC loading districts", in.Environment.IceThickness),
		})
	}
	if in.Environment.WindSpeed > typicalMaxWindSpeed {
		ws = append(ws, Warning{
			Level:   WarnCaution,
			Field:   "environment.wind_speed_mph",
			Message: fmt.Sprintf("wind speed %.0f mph exceeds typical basic wind speed maps", in.Environment.WindSpeed),
		})
	}

	return ws
}

// resultWarnings flags physically suspect outcomes of a completed pipeline
// run. A verdict is still produced; these annotate it.
func resultWarnings(in Input, r *Result) []Warning {
	var ws []Warning

	if maxSag := in.Span.Length * maxSagToSpanRatio; r.DeflectedSagFt > maxSag {
		ws = append(ws, Warning{
			Level:   WarnError,
			Field:   "deflected_sag_ft",
			Message: fmt.Sprintf("deflected sag %.2f ft exceeds half the span (%.2f ft), parabolic approximation is unreliable", r.DeflectedSagFt, maxSag),
		})
	}
	if r.FinalClearanceFt < 0 {
		ws = append(ws, Warning{
			Level:   WarnError,
			Field:   "final_clearance_ft",
			Message: fmt.Sprintf("conductor sags below grade: total sag %.2f ft exceeds average height %.2f ft", r.TotalSagFt, in.Span.AvgHeight),
		})
	}

	return ws
}
