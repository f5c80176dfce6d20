package dto

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// dateTimeLayouts are the ISO-8601 forms the API uses for exact times,
// e.g. 2020-05-21T00:00:00+0000.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
}

// ParseCalendarDate accepts YYYY-MM-DD or a full ISO-8601 timestamp and returns the
// calendar date as written, without converting between zones.
// A space before the zone offset is read as '+', since an unencoded '+' in a query
// string arrives as a space.
func ParseCalendarDate(s string) (civil.Date, error) {
	if d, err := civil.ParseDate(s); err == nil {
		return d, nil
	}
	ts := strings.Replace(s, " ", "+", 1)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return civil.DateOf(t), nil
		}
	}
	return civil.Date{}, fmt.Errorf("%w: date %q", ErrUnsupportedValue, s)
}
