package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetCalcFlags() {
	calcConductorCode = ""
	calcName = ""
	calcDiameter = 0
	calcWeight = 0
	calcRBS = 0
	calcSpan = 0
	calcWindSpan = 0
	calcHeight = 0
	calcIce = 0
	calcWind = 0
	calcVoltage = 0
	calcExposure = "C"
	calcJSON = false
}

func TestBuildCalcInputFromCatalog(t *testing.T) {
	resetCalcFlags()
	t.Cleanup(resetCalcFlags)

	calcConductorCode = "drake"
	calcSpan = 300
	calcHeight = 70
	calcIce = 0.25
	calcWind = 30
	calcVoltage = 115

	in, err := buildCalcInput()
	require.NoError(t, err)

	assert.Contains(t, in.Conductor.Name, "Drake")
	assert.InDelta(t, 1.108, in.Conductor.Diameter, 1e-9)
	assert.InDelta(t, 300.0, in.Span.WindSpan, 1e-9, "wind span defaults to span length")
	require.NotNil(t, in.Exposure)
	assert.InDelta(t, 900.0, in.Exposure.Zg, 1e-9)
}

func TestBuildCalcInputExplicitProperties(t *testing.T) {
	resetCalcFlags()
	t.Cleanup(resetCalcFlags)

	calcName = "custom"
	calcDiameter = 1.0
	calcWeight = 0.9
	calcRBS = 25000
	calcSpan = 250
	calcWindSpan = 275
	calcHeight = 60
	calcVoltage = 69
	calcExposure = "D"

	in, err := buildCalcInput()
	require.NoError(t, err)

	assert.Equal(t, "custom", in.Conductor.Name)
	assert.InDelta(t, 275.0, in.Span.WindSpan, 1e-9)
	assert.InDelta(t, 700.0, in.Exposure.Zg, 1e-9)
}

func TestBuildCalcInputRejectsAmbiguousConductor(t *testing.T) {
	resetCalcFlags()
	t.Cleanup(resetCalcFlags)

	calcConductorCode = "drake"
	calcDiameter = 1.0
	calcSpan = 300
	calcHeight = 70
	calcVoltage = 115

	_, err := buildCalcInput()
	assert.ErrorContains(t, err, "not both")
}

func TestBuildCalcInputRejectsUnknownCatalogCode(t *testing.T) {
	resetCalcFlags()
	t.Cleanup(resetCalcFlags)

	calcConductorCode = "unobtainium"
	calcSpan = 300
	calcHeight = 70
	calcVoltage = 115

	_, err := buildCalcInput()
	assert.ErrorContains(t, err, "unknown conductor")
}

func TestBuildCalcInputRejectsBadExposure(t *testing.T) {
	resetCalcFlags()
	t.Cleanup(resetCalcFlags)

	calcDiameter = 1.0
	calcWeight = 0.9
	calcRBS = 25000
	calcSpan = 300
	calcHeight = 70
	calcVoltage = 115
	calcExposure = "E"

	_, err := buildCalcInput()
	assert.ErrorContains(t, err, "unknown exposure category")
}
