package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedByRecency(t *testing.T) {
	t.Run("most recent first", func(t *testing.T) {
		events := []QuakeEvent{
			{Place: "older", Time: 1000},
			{Place: "newer", Time: 2000},
		}

		sorted := SortedByRecency(events)
		require.Len(t, sorted, 2)
		assert.Equal(t, "newer", sorted[0].Place)
		assert.Equal(t, "older", sorted[1].Place)

		// Input slice untouched.
		assert.Equal(t, "older", events[0].Place)
	})

	t.Run("ties keep document order", func(t *testing.T) {
		events := []QuakeEvent{
			{Place: "a", Time: 5000},
			{Place: "b", Time: 5000},
			{Place: "c", Time: 9000},
			{Place: "d", Time: 5000},
		}

		sorted := SortedByRecency(events)
		places := make([]string, len(sorted))
		for i, e := range sorted {
			places[i] = e.Place
		}
		assert.Equal(t, []string{"c", "a", "b", "d"}, places)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SortedByRecency(nil))
	})
}

func TestFormatReport(t *testing.T) {
	t.Run("epoch zero renders as UTC regardless of host timezone", func(t *testing.T) {
		report := FormatReport([]QuakeEvent{{Magnitude: 5.25, Place: "somewhere", Time: 0}})
		assert.Equal(t, "Terremotos:\n\nFecha: 1970-01-01 00:00:00, Magnitud: 5.2, Ubicación: somewhere\n", report)
	})

	t.Run("one line per event", func(t *testing.T) {
		events := []QuakeEvent{
			{Magnitude: 4.6, Place: "10 km SSW of Ridgecrest, CA", Time: 1715349807000},
			{Magnitude: 2.0, Place: "near Tonopah, NV", Time: 1715263407000},
		}

		report := FormatReport(events)
		lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Terremotos:", lines[0])
		assert.Empty(t, lines[1])
		assert.Equal(t, "Fecha: 2024-05-10 14:03:27, Magnitud: 4.6, Ubicación: 10 km SSW of Ridgecrest, CA", lines[2])
		assert.Equal(t, "Fecha: 2024-05-09 14:03:27, Magnitud: 2.0, Ubicación: near Tonopah, NV", lines[3])
	})

	t.Run("magnitude always one decimal", func(t *testing.T) {
		report := FormatReport([]QuakeEvent{{Magnitude: 7, Place: "x", Time: 0}})
		assert.Contains(t, report, "Magnitud: 7.0,")
	})

	t.Run("empty input yields header only", func(t *testing.T) {
		assert.Equal(t, "Terremotos:\n\n", FormatReport(nil))
	})
}
