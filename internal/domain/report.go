package domain

import (
	"fmt"
	"slices"
	"strings"
)

// ReportHeader opens every rendered report.
const ReportHeader = "Terremotos:"

const reportTimeLayout = "2006-01-02 15:04:05"

// SortedByRecency returns a new slice ordered by origin time descending.
// The sort is stable: events with equal timestamps keep their document order.
func SortedByRecency(events []QuakeEvent) []QuakeEvent {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b QuakeEvent) int {
		switch {
		case a.Time > b.Time:
			return -1
		case a.Time < b.Time:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// FormatReport renders the human-readable report: the header, a blank line,
// then one line per event. Input order is preserved; callers sort first.
// An empty input yields just the header.
func FormatReport(events []QuakeEvent) string {
	var b strings.Builder
	b.WriteString(ReportHeader + "\n\n")
	for _, e := range events {
		fmt.Fprintf(&b, "Fecha: %s, Magnitud: %.1f, Ubicación: %s\n",
			e.OccurredAt().Format(reportTimeLayout), e.Magnitude, e.Place)
	}
	return b.String()
}
