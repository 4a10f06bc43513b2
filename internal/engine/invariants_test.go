package engine

import (
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalSagMonotonicInIceThickness(t *testing.T) {
	in := drakeInput()

	prev := -1.0
	for _, ice := range []float64{0, 0.1, 0.25, 0.5, 1, 1.5, 2, 3} {
		in.Environment.IceThickness = ice
		res, err := Compute(in)
		require.NoError(t, err, "ice=%g", ice)
		assert.GreaterOrEqual(t, res.TotalSagFt, prev, "total sag must not decrease when ice grows (ice=%g)", ice)
		prev = res.TotalSagFt
	}
}

func TestBareConductorDegeneration(t *testing.T) {
	in := drakeInput()
	in.Environment = EnvironmentalInput{IceThickness: 0, WindSpeed: 0}

	res, err := Compute(in)
	require.NoError(t, err)

	// With no ice and no wind the load algebra collapses to the bare
	// conductor with no special-case branches.
	assert.Zero(t, res.DesignIceThicknessIn)
	assert.Zero(t, res.IceLoadLbsPerFt)
	assert.Zero(t, res.WindPressurePsf)
	assert.Zero(t, res.WindLoadLbsPerFt)
	assert.Equal(t, in.Conductor.Diameter, res.IcedDiameterIn)
	assert.InDelta(t, in.Conductor.Weight, res.EffectiveLoadLbsPerFt, 1e-12)

	// Sver = Sdef exactly, so total sag is final sag plus the bare deflected
	// sag at the design tension.
	assert.InDelta(t, res.DeflectedSagFt, res.VerticalSagFt, 1e-12)
	assert.InDelta(t, res.FinalSagFt+res.DeflectedSagFt, res.TotalSagFt, 1e-12)
}

func TestWindOnlyDegeneration(t *testing.T) {
	in := drakeInput()
	in.Environment = EnvironmentalInput{IceThickness: 0, WindSpeed: 60}

	res, err := Compute(in)
	require.NoError(t, err)

	assert.Zero(t, res.IceLoadLbsPerFt)
	assert.Positive(t, res.WindLoadLbsPerFt)
	// Effective load strictly exceeds bare weight once wind contributes.
	assert.Greater(t, res.EffectiveLoadLbsPerFt, in.Conductor.Weight)
	// And the vertical component shrinks below the full deflected sag.
	assert.Less(t, res.VerticalSagFt, res.DeflectedSagFt)
}

func TestIceOnlyDegeneration(t *testing.T) {
	in := drakeInput()
	in.Environment = EnvironmentalInput{IceThickness: 0.5, WindSpeed: 0}

	res, err := Compute(in)
	require.NoError(t, err)

	// With VI = 0 the wind load vanishes and the effective load reduces to
	// the pure vertical ice plus conductor weight.
	assert.Zero(t, res.WindLoadLbsPerFt)
	assert.InDelta(t, in.Conductor.Weight+res.IceLoadLbsPerFt, res.EffectiveLoadLbsPerFt, 1e-12)
	assert.InDelta(t, res.DeflectedSagFt, res.VerticalSagFt, 1e-12)
}

func TestComputeIsDeterministic(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
	defer SetClock(nil)

	in := drakeInput()
	first, err := Compute(in)
	require.NoError(t, err)
	second, err := Compute(in)
	require.NoError(t, err)

	// Bit-identical, not merely close: the pipeline is a pure function.
	assert.Equal(t, first, second)
}

func TestTotalSagExcludesInitialSag(t *testing.T) {
	// Total sag is final sag plus vertical deflected sag; the initial
	// (stringing) sag never contributes, even though the sum mixes a
	// long-term baseline with a short-term deflection.
	res, err := Compute(drakeInput())
	require.NoError(t, err)

	assert.InDelta(t, res.FinalSagFt+res.VerticalSagFt, res.TotalSagFt, 1e-12)
	assert.Greater(t, math.Abs(res.TotalSagFt-(res.InitialSagFt+res.VerticalSagFt)), 1e-6,
		"total sag built on initial sag would be a different number")
}

func TestMinimumHeightBoundary(t *testing.T) {
	in := Input{
		Conductor:      ConductorSpec{Diameter: 0.6, Weight: 0.5, RBS: 8000},
		Span:           SpanGeometry{Length: 100, WindSpan: 100, AvgHeight: MinAvgHeight},
		Environment:    EnvironmentalInput{IceThickness: 0, WindSpeed: 40},
		VoltageClassKV: 13.2,
	}

	res, err := Compute(in)
	require.NoError(t, err)

	// Zh at the validation floor must still give finite factors.
	assert.True(t, isFinite(res.Kz), "Kz must stay finite at Zh=%g", MinAvgHeight)
	assert.True(t, isFinite(res.TurbulenceIntensity))
	assert.True(t, isFinite(res.TotalSagFt))
	assert.Positive(t, res.Kz)
	assert.False(t, res.NESC.Compliant, "one-foot conductor height can never clear 18.5 ft")
}

func TestConcurrentComputeIsStable(t *testing.T) {
	in := drakeInput()
	want, err := Compute(in)
	require.NoError(t, err)

	done := make(chan Result, 16)
	for range 16 {
		go func() {
			res, err := Compute(in)
			assert.NoError(t, err)
			done <- res
		}()
	}
	for range 16 {
		got := <-done
		assert.Equal(t, want.TotalSagFt, got.TotalSagFt)
		assert.Equal(t, want.NESC, got.NESC)
	}
}
