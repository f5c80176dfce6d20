package marketstack

import (
	"fmt"

	"eod_backend/internal/feature/eod/domain/entity"
	"eod_backend/internal/platform/externalapi/marketstack/dto"
)

// ToBar converts an API record into a domain bar. The trading day is taken from the
// record's date as written, without zone conversion.
func ToBar(r dto.DailyRecord) (entity.Bar, error) {
	day, err := dto.ParseCalendarDate(r.Date)
	if err != nil {
		return entity.Bar{}, fmt.Errorf("parse date for %s: %w", r.Symbol, err)
	}
	return entity.Bar{
		Symbol:      r.Symbol,
		Exchange:    r.Exchange,
		TradeDate:   day,
		Timestamp:   r.Date,
		Open:        r.Open,
		High:        r.High,
		Low:         r.Low,
		Close:       r.Close,
		Volume:      r.Volume,
		AdjOpen:     r.AdjOpen,
		AdjHigh:     r.AdjHigh,
		AdjLow:      r.AdjLow,
		AdjClose:    r.AdjClose,
		AdjVolume:   r.AdjVolume,
		SplitFactor: r.SplitFactor,
		Dividend:    r.Dividend,
	}, nil
}

// FromBar converts a domain bar back into the API record shape.
func FromBar(b entity.Bar) dto.DailyRecord {
	date := b.Timestamp
	if date == "" {
		date = b.TradeDate.String() + "T00:00:00+0000"
	}
	return dto.DailyRecord{
		Open:        b.Open,
		High:        b.High,
		Low:         b.Low,
		Close:       b.Close,
		Volume:      b.Volume,
		AdjHigh:     b.AdjHigh,
		AdjLow:      b.AdjLow,
		AdjClose:    b.AdjClose,
		AdjOpen:     b.AdjOpen,
		AdjVolume:   b.AdjVolume,
		SplitFactor: b.SplitFactor,
		Dividend:    b.Dividend,
		Symbol:      b.Symbol,
		Exchange:    b.Exchange,
		Date:        date,
	}
}
