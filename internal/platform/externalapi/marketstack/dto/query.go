package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/gorilla/schema"
)

const (
	// DefaultLimit is the page size the API applies when limit is not sent.
	DefaultLimit = 100
	// MaxLimit is the largest limit the API accepts. It is not checked here.
	MaxLimit = 1000
	// MaxSymbols is the practical cap on symbols per request. Each symbol is billed as one request.
	MaxSymbols = 100
)

// EodQuery holds the query parameters of an end-of-day request.
// Use QueryBuilder to construct one.
type EodQuery struct {
	AccessKey string      // API access key
	Symbols   []string    // one or more tickers, e.g. "AAPL", "MSFT"
	Exchange  string      // MIC filter, e.g. "XNAS"; empty means no filter
	Sort      SortOrder   // order by date, Descending by default
	DateFrom  *civil.Date // inclusive start of the range
	DateTo    *civil.Date // inclusive end of the range
	Limit     *uint       // page size, remote default 100, max 1000
	Offset    *uint       // page offset, remote default 0
}

// Values encodes q as URL query parameters in the form the API expects.
func (q EodQuery) Values() url.Values {
	v := url.Values{}
	v.Set("access_key", q.AccessKey)
	v.Set("symbols", strings.Join(q.Symbols, ","))
	if q.Exchange != "" {
		v.Set("exchange", q.Exchange)
	}
	v.Set("sort", q.Sort.String())
	if q.DateFrom != nil {
		v.Set("date_from", q.DateFrom.String())
	}
	if q.DateTo != nil {
		v.Set("date_to", q.DateTo.String())
	}
	if q.Limit != nil {
		v.Set("limit", strconv.FormatUint(uint64(*q.Limit), 10))
	}
	if q.Offset != nil {
		v.Set("offset", strconv.FormatUint(uint64(*q.Offset), 10))
	}
	return v
}

// queryForm is the raw shape of the query string before parsing.
type queryForm struct {
	AccessKey string `schema:"access_key"`
	Symbols   string `schema:"symbols"`
	Exchange  string `schema:"exchange"`
	Sort      string `schema:"sort"`
	DateFrom  string `schema:"date_from"`
	DateTo    string `schema:"date_to"`
	Limit     string `schema:"limit"`
	Offset    string `schema:"offset"`
}

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// QueryFromValues parses query parameters in the form produced by EodQuery.Values.
// Dates may be given as YYYY-MM-DD or as a full ISO-8601 timestamp.
func QueryFromValues(values url.Values) (EodQuery, error) {
	var f queryForm
	if err := formDecoder.Decode(&f, values); err != nil {
		return EodQuery{}, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
	}

	b := NewQueryBuilder().
		AccessKey(f.AccessKey).
		Symbols(splitSymbols(f.Symbols)...).
		Exchange(strings.TrimSpace(f.Exchange))

	if f.Sort != "" {
		s, err := ParseSortOrder(f.Sort)
		if err != nil {
			return EodQuery{}, err
		}
		b.Sort(s)
	}
	if f.DateFrom != "" {
		d, err := ParseCalendarDate(f.DateFrom)
		if err != nil {
			return EodQuery{}, fmt.Errorf("date_from: %w", err)
		}
		b.DateFrom(d)
	}
	if f.DateTo != "" {
		d, err := ParseCalendarDate(f.DateTo)
		if err != nil {
			return EodQuery{}, fmt.Errorf("date_to: %w", err)
		}
		b.DateTo(d)
	}
	if f.Limit != "" {
		n, err := parseUint("limit", f.Limit)
		if err != nil {
			return EodQuery{}, err
		}
		b.Limit(n)
	}
	if f.Offset != "" {
		n, err := parseUint("offset", f.Offset)
		if err != nil {
			return EodQuery{}, err
		}
		b.Offset(n)
	}
	return b.Build()
}

func parseUint(name, s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrUnsupportedValue, name, s)
	}
	return uint(n), nil
}

func splitSymbols(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
