package dto

import (
	"fmt"
	"slices"
	"strings"

	"cloud.google.com/go/civil"
)

// QueryBuilder accumulates EodQuery fields. Setters never validate; Build checks that the
// required fields are present and returns an independent copy.
type QueryBuilder struct {
	q EodQuery
}

// NewQueryBuilder returns an empty builder.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

func (b *QueryBuilder) AccessKey(key string) *QueryBuilder {
	b.q.AccessKey = key
	return b
}

// Symbols replaces the symbol list.
func (b *QueryBuilder) Symbols(symbols ...string) *QueryBuilder {
	b.q.Symbols = slices.Clone(symbols)
	return b
}

// Symbol appends one symbol.
func (b *QueryBuilder) Symbol(symbol string) *QueryBuilder {
	b.q.Symbols = append(b.q.Symbols, symbol)
	return b
}

func (b *QueryBuilder) Exchange(mic string) *QueryBuilder {
	b.q.Exchange = mic
	return b
}

func (b *QueryBuilder) Sort(s SortOrder) *QueryBuilder {
	b.q.Sort = s
	return b
}

func (b *QueryBuilder) DateFrom(d civil.Date) *QueryBuilder {
	b.q.DateFrom = &d
	return b
}

func (b *QueryBuilder) DateTo(d civil.Date) *QueryBuilder {
	b.q.DateTo = &d
	return b
}

func (b *QueryBuilder) Limit(n uint) *QueryBuilder {
	b.q.Limit = &n
	return b
}

func (b *QueryBuilder) Offset(n uint) *QueryBuilder {
	b.q.Offset = &n
	return b
}

// Build returns the query, or ErrMissingRequiredField naming each missing field.
func (b *QueryBuilder) Build() (EodQuery, error) {
	var missing []string
	if b.q.AccessKey == "" {
		missing = append(missing, "access_key")
	}
	if len(b.q.Symbols) == 0 {
		missing = append(missing, "symbols")
	}
	if len(missing) > 0 {
		return EodQuery{}, fmt.Errorf("%w: %s", ErrMissingRequiredField, strings.Join(missing, ", "))
	}

	q := b.q
	q.Symbols = slices.Clone(b.q.Symbols)
	q.DateFrom = clonePtr(b.q.DateFrom)
	q.DateTo = clonePtr(b.q.DateTo)
	q.Limit = clonePtr(b.q.Limit)
	q.Offset = clonePtr(b.q.Offset)
	return q, nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
