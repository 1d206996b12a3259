package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layouts without a zone designator; these are read in the validator's location.
var naiveDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseDate parses s and returns the instant in UTC.
//
// Accepted forms:
//
//	2024-08-26T18:19:59Z           RFC 3339, optional fractional seconds
//	2024-08-26T18:19:59.5-03:00    RFC 3339 with numeric offset
//	2024-08-26T18:19:59            no offset, read in loc
//	2024-08-26 18:19:59            no offset, read in loc
//	2024-08-26                     midnight in loc
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}

	for _, layout := range naiveDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// numberEquals reports whether the JSON number literal lit is numerically equal to want.
// Literals such as 3.0 or 3e0 equal 3; fractional or out-of-range values never match.
func numberEquals(lit string, want int) bool {
	if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return n == int64(want)
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return false
	}
	return f == float64(want)
}
