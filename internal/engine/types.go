package engine

import "time"

// ConductorSpec holds the static physical properties of a conductor, normally
// sourced from a manufacturer table (see the catalog package).
type ConductorSpec struct {
	// Name is informational only and never enters a formula.
	Name string `json:"name,omitempty"`
	// Diameter is the bare outer diameter d in inches.
	Diameter float64 `json:"diameter_in"`
	// Weight is the bare weight per unit length Wc in lbs/ft.
	Weight float64 `json:"weight_lbs_per_ft"`
	// RBS is the rated breaking strength in lbs. All working tensions are
	// fixed fractions of it.
	RBS float64 `json:"rbs_lbs"`
}

// SpanGeometry describes a single pole-to-pole span.
type SpanGeometry struct {
	// Length is the weight span l in ft.
	Length float64 `json:"length_ft"`
	// WindSpan is the wind span S in ft. It often equals Length but may
	// differ by design convention.
	WindSpan float64 `json:"wind_span_ft"`
	// AvgHeight is the average conductor height above ground Zh in ft.
	AvgHeight float64 `json:"avg_height_ft"`
}

// EnvironmentalInput carries the loading-condition inputs. Both are looked up
// externally (hazard maps, NESC loading districts) and passed in as plain
// numbers; the engine never fetches them itself.
type EnvironmentalInput struct {
	// IceThickness is the nominal radial ice thickness I in inches. Zero
	// means the bare-conductor case.
	IceThickness float64 `json:"ice_thickness_in"`
	// WindSpeed is the basic wind speed VI in mph.
	WindSpeed float64 `json:"wind_speed_mph"`
}

// Input is the complete parameter set for one invocation of Compute.
type Input struct {
	Conductor   ConductorSpec      `json:"conductor"`
	Span        SpanGeometry       `json:"span"`
	Environment EnvironmentalInput `json:"environment"`

	// VoltageClassKV is the phase-to-phase voltage class in kV for the
	// NESC Rule 232-C check.
	VoltageClassKV float64 `json:"voltage_class_kv"`

	// Exposure selects the terrain exposure constants. Nil means category C.
	Exposure *ExposureConstants `json:"exposure,omitempty"`
}

// WarningLevel classifies an advisory attached to a result.
type WarningLevel string

const (
	WarnInfo    WarningLevel = "info"
	WarnCaution WarningLevel = "warning"
	WarnError   WarningLevel = "error"
)

// Warning is a non-fatal advisory about an input or result that is legal but
// suspicious. Warnings never abort a calculation.
type Warning struct {
	Level   WarningLevel `json:"level"`
	Field   string       `json:"field,omitempty"`
	Message string       `json:"message"`
}

// NESCCheck holds the Rule 232-C clearance verdict and its intermediates.
type NESCCheck struct {
	// AdjustedVoltageKV is the voltage class with the 10% overvoltage
	// allowance applied, in kV.
	AdjustedVoltageKV float64 `json:"adjusted_voltage_kv"`
	// PhaseVoltageKV is the phase-to-ground voltage Vpg in kV.
	PhaseVoltageKV float64 `json:"phase_voltage_kv"`
	// ClearanceAdderIn is the voltage adder above the base bracket, in
	// inches, floored at zero.
	ClearanceAdderIn float64 `json:"clearance_adder_in"`
	// RequiredClearanceFt is the minimum ground clearance per Table 232-1
	// in ft.
	RequiredClearanceFt float64 `json:"required_clearance_ft"`
	// MarginFt is final clearance minus required clearance in ft.
	MarginFt float64 `json:"margin_ft"`
	// Compliant is true when MarginFt >= 0.
	Compliant bool `json:"compliant"`
}

// Result carries every intermediate and final quantity of one calculation.
// It is a plain value: immutable after creation, no identity, no lifecycle.
// Field names follow the conventional formula symbols.
type Result struct {
	// Steps 1-4: tensions and no-load sags.
	InitialTensionLbs float64 `json:"initial_tension_lbs"`
	FinalTensionLbs   float64 `json:"final_tension_lbs"`
	InitialSagFt      float64 `json:"initial_sag_ft"`
	FinalSagFt        float64 `json:"final_sag_ft"`

	// Steps 5-7: wind pressure and its factors.
	Kz                  float64 `json:"kz"`
	TurbulenceIntensity float64 `json:"turbulence_intensity"`
	BackgroundResponse  float64 `json:"background_response"`
	GustResponseKv      float64 `json:"gust_response_kv"`
	GustEffectFactor    float64 `json:"gust_effect_factor"`
	WindPressurePsf     float64 `json:"wind_pressure_psf"`

	// Steps 8-12: ice and wind loads.
	DesignIceThicknessIn  float64 `json:"design_ice_thickness_in"`
	IceLoadLbsPerFt       float64 `json:"ice_load_lbs_per_ft"`
	IcedDiameterIn        float64 `json:"iced_diameter_in"`
	WindLoadLbsPerFt      float64 `json:"wind_load_lbs_per_ft"`
	EffectiveLoadLbsPerFt float64 `json:"effective_load_lbs_per_ft"`

	// Steps 13-16: loaded sags and clearance.
	DesignTensionLbs float64 `json:"design_tension_lbs"`
	DeflectedSagFt   float64 `json:"deflected_sag_ft"`
	VerticalSagFt    float64 `json:"vertical_sag_ft"`
	TotalSagFt       float64 `json:"total_sag_ft"`
	FinalClearanceFt float64 `json:"final_clearance_ft"`

	// Step 17: regulatory check.
	NESC NESCCheck `json:"nesc"`

	// Warnings are non-fatal advisories gathered before and after the
	// pipeline run.
	Warnings []Warning `json:"warnings,omitempty"`

	// ComputedAt stamps the invocation for downstream archival.
	ComputedAt time.Time `json:"computed_at"`
}
