// Package domain models earthquake events from the USGS FDSN event service.
//
// # Data Source
//
// Events come from the USGS earthquake catalog search endpoint at
// https://earthquake.usgs.gov/fdsnws/event/1/query, requested in GeoJSON
// format. One query covers a user-supplied calendar date range and returns a
// feature collection; each feature's "properties" object carries the fields
// this package cares about:
//
//	mag    float or null — magnitude; null when no magnitude was assigned
//	place  string        — relative location, e.g. "10 km SSW of Ridgecrest, CA"
//	time   integer       — origin time in milliseconds since the Unix epoch, UTC
//
// # Null Magnitude Convention
//
// The catalog contains real events with a null magnitude (no authoritative
// magnitude solution yet, or none ever computed). Those features are skipped
// during extraction rather than treated as errors; they never reach the
// report. The skip is decided on the magnitude alone, before place or time
// are examined, so a skipped feature may be arbitrarily malformed in its
// other fields. When the magnitude is present, any shape violation — missing
// or null place, non-integer time, missing properties object — fails the
// whole query instead: a response that mixes well-formed and structurally
// broken features is not trusted to produce a partial report.
//
// # Date Range Convention
//
// Query dates are plain calendar days in the exact form YYYY-MM-DD. The
// validated strings are passed through to the service verbatim as the
// starttime and endtime parameters; the FDSN service interprets a bare date
// as midnight UTC at the start of that day.
//
// # Report Format
//
// The rendered report keeps the Spanish field labels of the desktop client
// this service grew out of:
//
//	Terremotos:
//
//	Fecha: 2024-05-10 14:03:27, Magnitud: 4.6, Ubicación: 10 km SSW of Ridgecrest, CA
//
// Times are always UTC regardless of host timezone; magnitudes are printed
// with one decimal. Entries are sorted most recent first; equal timestamps
// keep their document order.
package domain
