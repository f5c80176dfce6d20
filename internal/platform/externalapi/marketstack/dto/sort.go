package dto

import (
	"fmt"
	"strings"
)

// SortOrder is the order of results by date. The zero value is Descending, which is also
// what the API applies when no sort parameter is sent.
type SortOrder int

const (
	Descending SortOrder = iota
	Ascending
)

// String returns the wire form, "DESC" or "ASC".
func (s SortOrder) String() string {
	switch s {
	case Descending:
		return "DESC"
	case Ascending:
		return "ASC"
	}
	return fmt.Sprintf("SortOrder(%d)", int(s))
}

// ParseSortOrder parses "ASC" or "DESC" in any letter case.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DESC":
		return Descending, nil
	case "ASC":
		return Ascending, nil
	}
	return Descending, fmt.Errorf("%w: sort %q", ErrUnsupportedValue, s)
}
