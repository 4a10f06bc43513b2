package catalog

import (
	"testing"

	"github.com/gridclear/sagcalc/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("exact code word", func(t *testing.T) {
		e, err := Lookup("Drake")
		require.NoError(t, err)
		assert.Equal(t, 1.108, e.Spec.Diameter)
		assert.Equal(t, 1.094, e.Spec.Weight)
		assert.Equal(t, 31500.0, e.Spec.RBS)
	})

	t.Run("case insensitive with whitespace", func(t *testing.T) {
		e, err := Lookup("  drake ")
		require.NoError(t, err)
		assert.Equal(t, "Drake", e.Code)
	})

	t.Run("unknown code word", func(t *testing.T) {
		_, err := Lookup("Pigeon")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Drake")
	})
}

func TestEntriesAreValidEngineInputs(t *testing.T) {
	entries := Entries()
	require.NotEmpty(t, entries)

	for _, e := range entries {
		t.Run(e.Code, func(t *testing.T) {
			in := engine.Input{
				Conductor:      e.Spec,
				Span:           engine.SpanGeometry{Length: 300, WindSpan: 300, AvgHeight: 50},
				Environment:    engine.EnvironmentalInput{IceThickness: 0.5, WindSpeed: 90},
				VoltageClassKV: 115,
			}
			_, err := engine.Compute(in)
			assert.NoError(t, err, "catalog entry %s must satisfy engine validation", e.Code)
		})
	}
}

func TestEntriesSortedBySize(t *testing.T) {
	entries := Entries()
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].SizeKcmil, entries[i].SizeKcmil)
	}

	// Entries hands out copies; callers cannot corrupt the table.
	entries[0].Spec.RBS = -1
	fresh, err := Lookup(entries[0].Code)
	require.NoError(t, err)
	assert.Positive(t, fresh.Spec.RBS)
}
