package timeutil

import (
	"errors"
	"fmt"
	"time"
)

// sourceLayout is the scrape-source wire format for timestamps,
// e.g. "Wed Oct 11 12:00:00 +0000 2023".
const sourceLayout = "Mon Jan 02 15:04:05 -0700 2006"

// outputLayout is the canonical minute-precision representation stored in the
// database.
const outputLayout = "2006-01-02 15:04"

var (
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrUnknownTimezone    = errors.New("unknown timezone")
)

// Normalize re-expresses a source timestamp in the wall-clock time of the
// target IANA timezone, truncated to minute precision and formatted as
// "YYYY-MM-DD HH:MM". The date portion of the result can differ from the
// input when the offset conversion crosses midnight.
func Normalize(rawTimestamp, targetTimezone string) (string, error) {
	parsed, err := time.Parse(sourceLayout, rawTimestamp)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedTimestamp, rawTimestamp)
	}

	loc, err := time.LoadLocation(targetTimezone)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownTimezone, targetTimezone)
	}

	return parsed.In(loc).Format(outputLayout), nil
}
