package domain

import "time"

// QuakeEvent is one extracted earthquake record. It only exists when the
// source feature carried a non-null magnitude.
type QuakeEvent struct {
	Magnitude float64 `json:"magnitude"`
	Place     string  `json:"place"`
	Time      int64   `json:"time"` // milliseconds since epoch, UTC
}

// OccurredAt returns the event's origin time as a UTC time.Time.
func (e QuakeEvent) OccurredAt() time.Time {
	return time.UnixMilli(e.Time).UTC()
}

// DateRange holds a validated pair of query dates. Start and End are the
// caller's original strings, reused verbatim in the outgoing query; the
// parsed times exist only for the ordering check.
type DateRange struct {
	Start string
	End   string

	StartTime time.Time
	EndTime   time.Time
}
