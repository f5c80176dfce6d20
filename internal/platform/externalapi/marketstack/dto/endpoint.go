package dto

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

const latestSegment = "latest"

// EndpointType selects between the latest available end-of-day data and the data as of a
// specific date. The zero value is the latest endpoint.
type EndpointType struct {
	date  civil.Date
	dated bool
}

// LatestEndpoint returns the endpoint for the latest available data (/eod/latest).
func LatestEndpoint() EndpointType {
	return EndpointType{}
}

// DateEndpoint returns the endpoint for data as of d (/eod/YYYY-MM-DD).
func DateEndpoint(d civil.Date) EndpointType {
	return EndpointType{date: d, dated: true}
}

// IsLatest reports whether e targets the latest endpoint.
func (e EndpointType) IsLatest() bool {
	return !e.dated
}

// Date returns the requested date and true, or false for the latest endpoint.
func (e EndpointType) Date() (civil.Date, bool) {
	return e.date, e.dated
}

// PathSegment returns the path element appended after /eod/.
func (e EndpointType) PathSegment() string {
	if !e.dated {
		return latestSegment
	}
	return e.date.String()
}

func (e EndpointType) String() string {
	return e.PathSegment()
}

// ParseEndpointType parses a path segment. An empty segment or "latest" is the latest
// endpoint; a YYYY-MM-DD or ISO-8601 value is a date endpoint.
func ParseEndpointType(s string) (EndpointType, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, latestSegment) {
		return LatestEndpoint(), nil
	}
	d, err := ParseCalendarDate(s)
	if err != nil {
		return EndpointType{}, fmt.Errorf("%w: endpoint %q", ErrUnsupportedValue, s)
	}
	return DateEndpoint(d), nil
}
