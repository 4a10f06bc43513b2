package engine

import (
	"math"
)

// Formula constants.
const (
	// gustClosure is the fixed product Gw·Kv closing the two-equation gust
	// system.
	gustClosure = 1.43

	// iceDensityFactor is the radial ice weight factor, lbs/ft per in².
	iceDensityFactor = 1.24

	// NESC Rule 232-C / Table 232-1 constants.
	overvoltageFactor  = 1.1  // 10% overvoltage allowance
	voltageThresholdKV = 22.0 // phase voltage above which the adder applies
	clearanceAdderRate = 0.4  // inches per kV above the threshold
	baseClearanceFt    = 18.5 // clearance floor for the lowest voltage bracket
)

var sqrt3 = math.Sqrt(3)

// Compute runs the full load, sag, and clearance pipeline for one span and
// returns every intermediate quantity plus the NESC verdict. It is pure and
// deterministic: identical inputs produce bit-identical numeric results (the
// ComputedAt stamp aside), and concurrent invocations need no coordination.
//
// The returned error is a *ValidationError when the input violates a
// precondition, or a *DomainError when a bypassed validation drives an
// intermediate out of the real domain. No partial result is returned in
// either case.
func Compute(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	exposure := CategoryC()
	if in.Exposure != nil {
		exposure = *in.Exposure
	}

	var (
		d   = in.Conductor.Diameter
		wc  = in.Conductor.Weight
		rbs = in.Conductor.RBS
		l   = in.Span.Length
		s   = in.Span.WindSpan
		zh  = in.Span.AvgHeight
		ice = in.Environment.IceThickness
		vi  = in.Environment.WindSpeed
	)

	r := Result{
		Warnings:   inputWarnings(in),
		ComputedAt: clock.Now(),
	}

	// Steps 1-4: working tensions and no-load sags (parabolic approximation).
	r.InitialTensionLbs = InitialTensionFactor * rbs
	r.FinalTensionLbs = FinalTensionFactor * rbs
	spanMoment := wc * l * l
	r.InitialSagFt = spanMoment / (8 * r.InitialTensionLbs)
	r.FinalSagFt = spanMoment / (8 * r.FinalTensionLbs)

	// Step 5: velocity pressure exposure coefficient.
	r.Kz = 2.01 * math.Pow(zh/exposure.Zg, 2/exposure.Alpha)

	// Step 6: gust effect factor. E and Bw are known, so the closure
	// Gw·Kv = 1.43 together with Gw·Kv² = 1 + 2.7·E·√Bw pins Gw to a single
	// positive real; no iterative search.
	radicand := exposure.K * math.Pow(33/zh, 1/exposure.AlphaFM)
	root, err := sqrtChecked("turbulence_intensity", radicand)
	if err != nil {
		return Result{}, err
	}
	e := 4.9 * root
	r.TurbulenceIntensity = e
	r.BackgroundResponse = 1 / (1 + 0.8*s/exposure.LS)
	rootBw, err := sqrtChecked("background_response", r.BackgroundResponse)
	if err != nil {
		return Result{}, err
	}
	r.GustEffectFactor = gustClosure * gustClosure / (1 + 2.7*e*rootBw)
	r.GustResponseKv = gustClosure / r.GustEffectFactor
	if r.GustEffectFactor <= 0 || !isFinite(r.GustEffectFactor) {
		return Result{}, &DomainError{Quantity: "gust_effect_factor", Value: r.GustEffectFactor}
	}

	// Step 7: wind pressure under ice.
	r.WindPressurePsf = exposure.Q * r.Kz * exposure.Kzt * vi * vi * r.GustEffectFactor * exposure.Cf

	// Steps 8-9: height-adjusted ice thickness and ice load. At I = 0 both
	// collapse to zero without branching.
	r.DesignIceThicknessIn = ice * math.Pow(zh/33, 0.10)
	r.IceLoadLbsPerFt = iceDensityFactor * (d + r.DesignIceThicknessIn) * r.DesignIceThicknessIn

	// Steps 10-11: iced diameter and wind load on the unit-length area di×1.
	r.IcedDiameterIn = 2*ice + d
	r.WindLoadLbsPerFt = r.WindPressurePsf * r.IcedDiameterIn

	// Step 12: effective load, vector sum of vertical and transverse loads.
	vertical := wc + r.IceLoadLbsPerFt
	wt, err := sqrtChecked("effective_load", vertical*vertical+r.WindLoadLbsPerFt*r.WindLoadLbsPerFt)
	if err != nil {
		return Result{}, err
	}
	r.EffectiveLoadLbsPerFt = wt

	// Steps 13-14: deflected sag at the design tension and its vertical
	// component. The denominator of Sver is by definition Wt; reusing the
	// step-12 value keeps the two uses bit-identical.
	r.DesignTensionLbs = DesignTensionFactor * rbs
	r.DeflectedSagFt = (wt * l * l) / (8 * r.DesignTensionLbs)
	r.VerticalSagFt = r.DeflectedSagFt * vertical / wt

	// Steps 15-16: total sag and ground clearance. Total sag is the final
	// no-load sag plus the vertical deflected component; initial sag does not
	// enter the governing condition.
	r.TotalSagFt = r.FinalSagFt + r.VerticalSagFt
	r.FinalClearanceFt = zh - r.TotalSagFt

	// Step 17: NESC Rule 232-C.
	r.NESC = checkNESC(in.VoltageClassKV, r.FinalClearanceFt)

	r.Warnings = append(r.Warnings, resultWarnings(in, &r)...)
	return r, nil
}

// checkNESC evaluates the Rule 232-C ground-clearance requirement for an
// arbitrary voltage class. Below the 22 kV phase-voltage threshold the adder
// floors at zero and the base bracket clearance governs.
func checkNESC(voltageClassKV, finalClearanceFt float64) NESCCheck {
	adjusted := voltageClassKV * overvoltageFactor
	phase := adjusted / sqrt3

	adderIn := (phase - voltageThresholdKV) * clearanceAdderRate
	if adderIn < 0 {
		adderIn = 0
	}
	required := adderIn/12 + baseClearanceFt
	margin := finalClearanceFt - required

	return NESCCheck{
		AdjustedVoltageKV:   adjusted,
		PhaseVoltageKV:      phase,
		ClearanceAdderIn:    adderIn,
		RequiredClearanceFt: required,
		MarginFt:            margin,
		Compliant:           margin >= 0,
	}
}

// sqrtChecked guards every square root in the pipeline: a negative radicand
// or non-finite value becomes a *DomainError instead of a NaN in the result.
func sqrtChecked(quantity string, v float64) (float64, error) {
	if v < 0 || !isFinite(v) {
		return 0, &DomainError{Quantity: quantity, Value: v}
	}
	return math.Sqrt(v), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
