package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// GeoJSON wire types. Magnitude decodes eagerly because its null/absent state
// decides whether a feature is skipped; place and time stay raw until that
// check passes, so a skipped feature may carry any shape in its remaining
// fields. A wrong-typed mag still fails the whole decode, which matches the
// no-partial-results policy.

type featureCollection struct {
	Features *[]feature `json:"features"`
}

type feature struct {
	Properties *featureProperties `json:"properties"`
}

type featureProperties struct {
	Mag   *float64        `json:"mag"`
	Place json.RawMessage `json:"place"`
	Time  json.RawMessage `json:"time"`
}

// ParseFeatureCollection decodes a GeoJSON feature collection body into
// QuakeEvents in document order. Features with a null or absent magnitude are
// skipped silently; the skip count is returned alongside the events. Any
// structural problem returns ErrMalformedResponse and no events.
func ParseFeatureCollection(body []byte) ([]QuakeEvent, int, error) {
	var doc featureCollection
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if doc.Features == nil {
		return nil, 0, fmt.Errorf("%w: missing features array", ErrMalformedResponse)
	}

	events := make([]QuakeEvent, 0, len(*doc.Features))
	skipped := 0
	for i, f := range *doc.Features {
		if f.Properties == nil {
			return nil, 0, fmt.Errorf("%w: feature %d has no properties", ErrMalformedResponse, i)
		}
		// Null magnitude is real sparse data, not an error. The skip is
		// decided before place and time are examined.
		if f.Properties.Mag == nil {
			skipped++
			continue
		}
		place, err := decodeString(f.Properties.Place)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: feature %d place: %v", ErrMalformedResponse, i, err)
		}
		millis, err := decodeMillis(f.Properties.Time)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: feature %d time: %v", ErrMalformedResponse, i, err)
		}
		events = append(events, QuakeEvent{
			Magnitude: *f.Properties.Mag,
			Place:     place,
			Time:      millis,
		})
	}

	return events, skipped, nil
}

// decodeString decodes a required string field; absent and null are errors.
func decodeString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", errors.New("missing")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

// decodeMillis decodes a required integer epoch-milliseconds field; absent,
// null, and fractional values are errors.
func decodeMillis(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, errors.New("missing")
	}
	var ms int64
	if err := json.Unmarshal(raw, &ms); err != nil {
		return 0, err
	}
	return ms, nil
}
