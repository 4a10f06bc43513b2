package service_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridclear/sagcalc/internal/engine"
	"github.com/gridclear/sagcalc/internal/observability"
	"github.com/gridclear/sagcalc/internal/service"
)

// --- mocks ---

type mockPublisher struct {
	published []service.Record
	err       error
}

func (m *mockPublisher) Publish(_ context.Context, rec service.Record) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, rec)
	return nil
}

func newTestMetrics() *observability.Metrics {
	// Use a fresh registry to avoid "already registered" panics in tests.
	return observability.NewMetricsForTesting()
}

func drakeInput() engine.Input {
	return engine.Input{
		Conductor: engine.ConductorSpec{
			Name:     "Drake",
			Diameter: 1.107,
			Weight:   1.093,
			RBS:      31500,
		},
		Span: engine.SpanGeometry{
			Length:    300,
			WindSpan:  300,
			AvgHeight: 70,
		},
		Environment: engine.EnvironmentalInput{
			IceThickness: 0.25,
			WindSpeed:    30,
		},
		VoltageClassKV: 115,
	}
}

// --- tests ---

func TestCalculator_Calculate_HappyPath(t *testing.T) {
	pub := &mockPublisher{}
	metrics := newTestMetrics()
	calc := service.New(slog.Default(), metrics, pub, engine.CategoryC())

	rec, err := calc.Calculate(context.Background(), drakeInput())
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Contains(t, rec.ID, "Drake-")
	assert.Greater(t, rec.Result.TotalSagFt, 0.0)
	assert.True(t, rec.Result.NESC.Compliant)

	require.Len(t, pub.published, 1)
	if diff := cmp.Diff(rec, pub.published[0]); diff != "" {
		t.Fatalf("published record mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CalculationsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ClearanceVerdicts.WithLabelValues("pass")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RecordsPublished))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.PublishErrors))
}

func TestCalculator_Calculate_DeterministicID(t *testing.T) {
	calc := service.New(slog.Default(), newTestMetrics(), nil, engine.CategoryC())

	rec1, err := calc.Calculate(context.Background(), drakeInput())
	require.NoError(t, err)
	rec2, err := calc.Calculate(context.Background(), drakeInput())
	require.NoError(t, err)

	assert.Equal(t, rec1.ID, rec2.ID)

	changed := drakeInput()
	changed.Environment.WindSpeed = 60
	rec3, err := calc.Calculate(context.Background(), changed)
	require.NoError(t, err)
	assert.NotEqual(t, rec1.ID, rec3.ID)
}

func TestCalculator_Calculate_ValidationError(t *testing.T) {
	metrics := newTestMetrics()
	calc := service.New(slog.Default(), metrics, nil, engine.CategoryC())

	bad := drakeInput()
	bad.Span.Length = 0

	_, err := calc.Calculate(context.Background(), bad)
	var valErr *engine.ValidationError
	require.ErrorAs(t, err, &valErr)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ValidationErrors))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.CalculationsTotal))
}

func TestCalculator_Calculate_DefaultExposure(t *testing.T) {
	exposureD, err := engine.Exposure("D")
	require.NoError(t, err)

	calcC := service.New(slog.Default(), newTestMetrics(), nil, engine.CategoryC())
	calcD := service.New(slog.Default(), newTestMetrics(), nil, exposureD)

	recC, err := calcC.Calculate(context.Background(), drakeInput())
	require.NoError(t, err)
	recD, err := calcD.Calculate(context.Background(), drakeInput())
	require.NoError(t, err)

	// Category D carries higher terrain constants, so wind load must rise.
	assert.Greater(t, recD.Result.WindPressurePsf, recC.Result.WindPressurePsf)
}

func TestCalculator_Calculate_PublishFailureDoesNotFailCalculation(t *testing.T) {
	pub := &mockPublisher{err: errors.New("broker unavailable")}
	metrics := newTestMetrics()
	calc := service.New(slog.Default(), metrics, pub, engine.CategoryC())

	rec, err := calc.Calculate(context.Background(), drakeInput())
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PublishErrors))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.RecordsPublished))
}

func TestCalculator_Calculate_FailingVerdictCounted(t *testing.T) {
	metrics := newTestMetrics()
	calc := service.New(slog.Default(), metrics, nil, engine.CategoryC())

	low := drakeInput()
	low.Span.AvgHeight = 19

	rec, err := calc.Calculate(context.Background(), low)
	require.NoError(t, err)
	assert.False(t, rec.Result.NESC.Compliant)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ClearanceVerdicts.WithLabelValues("fail")))
}

func TestCalculator_CheckReadiness(t *testing.T) {
	calc := service.New(slog.Default(), newTestMetrics(), nil, engine.CategoryC())
	assert.NoError(t, calc.CheckReadiness(context.Background()))
}
