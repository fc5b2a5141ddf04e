package domain

import (
	"fmt"
	"regexp"
	"time"
)

// dateLayout is the only accepted query date form. The FDSN service takes the
// same literal strings, so validated input needs no reformatting.
const dateLayout = "2006-01-02"

// dateRe requires exactly four digits, hyphen, two digits, hyphen, two
// digits. No alternate separators, no partial matches.
var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDateRange checks both date strings structurally, then as calendar
// dates, then for ordering. On success the returned DateRange carries the
// original strings unchanged.
func ValidateDateRange(start, end string) (DateRange, error) {
	if !dateRe.MatchString(start) {
		return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidFormat, start)
	}
	if !dateRe.MatchString(end) {
		return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidFormat, end)
	}

	startTime, err := time.Parse(dateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidDate, start)
	}
	endTime, err := time.Parse(dateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidDate, end)
	}

	if startTime.After(endTime) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrDateRange, start, end)
	}

	return DateRange{
		Start:     start,
		End:       end,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}
