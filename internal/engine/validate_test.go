package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() Input {
	return Input{
		Conductor:      ConductorSpec{Diameter: 0.72, Weight: 0.463, RBS: 14100},
		Span:           SpanGeometry{Length: 250, WindSpan: 250, AvgHeight: 45},
		Environment:    EnvironmentalInput{IceThickness: 0.25, WindSpeed: 90},
		VoltageClassKV: 69,
	}
}

func TestValidateAcceptsValidInput(t *testing.T) {
	require.NoError(t, Validate(validInput()))
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{"zero diameter", func(in *Input) { in.Conductor.Diameter = 0 }, "conductor.diameter_in"},
		{"negative diameter", func(in *Input) { in.Conductor.Diameter = -1 }, "conductor.diameter_in"},
		{"zero weight", func(in *Input) { in.Conductor.Weight = 0 }, "conductor.weight_lbs_per_ft"},
		{"zero RBS", func(in *Input) { in.Conductor.RBS = 0 }, "conductor.rbs_lbs"},
		{"negative RBS", func(in *Input) { in.Conductor.RBS = -100 }, "conductor.rbs_lbs"},
		{"zero span", func(in *Input) { in.Span.Length = 0 }, "span.length_ft"},
		{"zero wind span", func(in *Input) { in.Span.WindSpan = 0 }, "span.wind_span_ft"},
		{"height below floor", func(in *Input) { in.Span.AvgHeight = 0.5 }, "span.avg_height_ft"},
		{"negative ice", func(in *Input) { in.Environment.IceThickness = -0.1 }, "environment.ice_thickness_in"},
		{"negative wind", func(in *Input) { in.Environment.WindSpeed = -5 }, "environment.wind_speed_mph"},
		{"zero voltage", func(in *Input) { in.VoltageClassKV = 0 }, "voltage_class_kv"},
		{"NaN weight", func(in *Input) { in.Conductor.Weight = math.NaN() }, "conductor.weight_lbs_per_ft"},
		{"infinite span", func(in *Input) { in.Span.Length = math.Inf(1) }, "span.length_ft"},
		{"NaN ice", func(in *Input) { in.Environment.IceThickness = math.NaN() }, "environment.ice_thickness_in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := Validate(in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)

			fields := make([]string, len(verr.Fields))
			for i, f := range verr.Fields {
				fields[i] = f.Field
			}
			assert.Contains(t, fields, tt.field)

			// Compute must refuse the same input without producing a result.
			_, cerr := Compute(in)
			require.ErrorAs(t, cerr, &verr)
		})
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	in := validInput()
	in.Conductor.RBS = 0
	in.Span.Length = -10
	in.VoltageClassKV = 0

	err := Validate(in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	assert.Contains(t, verr.Error(), "conductor.rbs_lbs")
	assert.Contains(t, verr.Error(), "span.length_ft")
	assert.Contains(t, verr.Error(), "voltage_class_kv")
}

func TestValidateCustomExposure(t *testing.T) {
	in := validInput()
	bad := ExposureConstants{Zg: 900, Alpha: 9.5, K: 0, AlphaFM: 7, LS: 200, Q: 0.00256, Kzt: 1, Cf: 1}
	in.Exposure = &bad

	err := Validate(in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "exposure.k", verr.Fields[0].Field)

	good := CategoryC()
	in.Exposure = &good
	require.NoError(t, Validate(in))
}

func TestZeroIceEqualsNoIceScenario(t *testing.T) {
	// I = 0 must be a legal input yielding the bare-conductor numbers, not a
	// validation failure.
	in := validInput()
	in.Environment.IceThickness = 0

	res, err := Compute(in)
	require.NoError(t, err)
	assert.Zero(t, res.IceLoadLbsPerFt)
	assert.Equal(t, in.Conductor.Diameter, res.IcedDiameterIn)
}
