package manifest

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// Valid range for reproducible archive timestamps, from the ZIP application
// note section 4.4.6.
var (
	buildTimeMin = time.Date(1980, time.January, 1, 0, 0, 2, 0, time.UTC)
	buildTimeMax = time.Date(2099, time.December, 31, 23, 59, 59, 0, time.UTC)
)

var (
	// ErrTimestampOutOfRange is returned for timestamps outside the valid
	// ZIP range.
	ErrTimestampOutOfRange = errors.New("timestamp not within the valid range")

	// ErrInvalidTimestamp is returned when the configured value is neither
	// ISO 8601 nor an integer.
	ErrInvalidTimestamp = errors.New("invalid build output timestamp")
)

// ParseBuildOutputTimestamp parses the reproducible-build output timestamp
// from the descriptor. Accepted forms are a number of seconds since the
// epoch (SOURCE_DATE_EPOCH convention) or an ISO 8601 offset date-time,
// normalized to UTC and truncated to seconds.
//
// The boolean result reports whether a timestamp was configured: an empty
// value, or a single non-numeric character (useful to override an inherited
// value), yields (zero, false, nil).
func ParseBuildOutputTimestamp(value string) (time.Time, bool, error) {
	if value == "" {
		return time.Time{}, false, nil
	}

	if isNumeric(value) {
		secs, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("%w: '%s'", ErrInvalidTimestamp, value)
		}
		return checkRange(time.Unix(secs, 0).UTC())
	}

	// Single characters count, not bytes: a one-rune value like "ñ" is the
	// override-an-inherited-timestamp form, not a date.
	if utf8.RuneCountInString(value) < 2 {
		return time.Time{}, false, nil
	}

	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w value '%s': %v", ErrInvalidTimestamp, value, err)
	}
	return checkRange(ts.UTC().Truncate(time.Second))
}

func checkRange(ts time.Time) (time.Time, bool, error) {
	if ts.Before(buildTimeMin) || ts.After(buildTimeMax) {
		return time.Time{}, false, fmt.Errorf("%w: '%s' is not within %s to %s",
			ErrTimestampOutOfRange,
			ts.Format(time.RFC3339),
			buildTimeMin.Format(time.RFC3339),
			buildTimeMax.Format(time.RFC3339))
	}
	return ts, true, nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
