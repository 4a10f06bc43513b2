// Package service wires the sag and clearance engine to observability and
// optional result publishing. It is the unit both the HTTP adapter and the
// CLI call into.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gridclear/sagcalc/internal/engine"
	"github.com/gridclear/sagcalc/internal/observability"
)

// Publisher delivers completed calculation records to an external sink.
type Publisher interface {
	Publish(ctx context.Context, rec Record) error
}

// Record is the durable form of one calculation: the inputs that produced it,
// the full result, and a deterministic ID for idempotent downstream storage.
type Record struct {
	ID     string        `json:"id"`
	Input  engine.Input  `json:"input"`
	Result engine.Result `json:"result"`
}

// Calculator runs validated sag/tension/clearance calculations and records
// metrics for each outcome.
type Calculator struct {
	logger          *slog.Logger
	metrics         *observability.Metrics
	publisher       Publisher
	defaultExposure engine.ExposureConstants
}

// New creates a Calculator. Pass a nil publisher to disable result publishing.
func New(logger *slog.Logger, metrics *observability.Metrics, publisher Publisher, defaultExposure engine.ExposureConstants) *Calculator {
	return &Calculator{
		logger:          logger,
		metrics:         metrics,
		publisher:       publisher,
		defaultExposure: defaultExposure,
	}
}

// Calculate validates the input, runs the full calculation, updates metrics,
// and publishes the record when a publisher is configured. Publish failures
// are logged and counted but do not fail the calculation.
func (c *Calculator) Calculate(ctx context.Context, in engine.Input) (Record, error) {
	if in.Exposure == nil {
		exp := c.defaultExposure
		in.Exposure = &exp
	}

	start := time.Now()

	if err := engine.Validate(in); err != nil {
		c.metrics.ValidationErrors.Inc()
		return Record{}, err
	}

	result, err := engine.Compute(in)
	if err != nil {
		var domainErr *engine.DomainError
		if errors.As(err, &domainErr) {
			c.metrics.DomainErrors.Inc()
		}
		c.logger.Error("calculation failed",
			"conductor", in.Conductor.Name,
			"error", err,
		)
		return Record{}, err
	}

	c.metrics.CalculationsTotal.Inc()
	c.metrics.CalculationDuration.Observe(time.Since(start).Seconds())
	c.metrics.ClearanceVerdicts.WithLabelValues(verdict(result.NESC.Compliant)).Inc()

	rec := Record{
		ID:     recordID(in),
		Input:  in,
		Result: result,
	}

	c.logger.Info("calculation complete",
		"id", rec.ID,
		"conductor", in.Conductor.Name,
		"total_sag_ft", result.TotalSagFt,
		"clearance_ft", result.FinalClearanceFt,
		"compliant", result.NESC.Compliant,
	)

	c.publish(ctx, rec)

	return rec, nil
}

// CheckReadiness runs a reference calculation against the configured default
// exposure. A failure means the service cannot produce results.
func (c *Calculator) CheckReadiness(_ context.Context) error {
	exp := c.defaultExposure
	probe := engine.Input{
		Conductor: engine.ConductorSpec{
			Name:     "readiness-probe",
			Diameter: 1.108,
			Weight:   1.094,
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
		Exposure:       &exp,
	}
	if _, err := engine.Compute(probe); err != nil {
		return fmt.Errorf("reference calculation failed: %w", err)
	}
	return nil
}

func (c *Calculator) publish(ctx context.Context, rec Record) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.Publish(ctx, rec); err != nil {
		c.metrics.PublishErrors.Inc()
		c.logger.Warn("publish record failed", "id", rec.ID, "error", err)
		return
	}
	c.metrics.RecordsPublished.Inc()
}

func verdict(compliant bool) string {
	if compliant {
		return "pass"
	}
	return "fail"
}

// recordID produces a deterministic ID from the calculation's key inputs.
// Re-running the same inputs yields the same ID, so downstream consumers can
// upsert records idempotently.
func recordID(in engine.Input) string {
	input := fmt.Sprintf("%s|%g|%g|%g|%g|%g|%g|%g|%g|%g",
		in.Conductor.Name, in.Conductor.Diameter, in.Conductor.Weight, in.Conductor.RBS,
		in.Span.Length, in.Span.WindSpan, in.Span.AvgHeight,
		in.Environment.IceThickness, in.Environment.WindSpeed,
		in.VoltageClassKV,
	)
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	if in.Conductor.Name == "" {
		return short
	}
	return in.Conductor.Name + "-" + short
}
