// Package adapters implements the eod feature's persistence on gorm.
package adapters

import (
	"context"

	"cloud.google.com/go/civil"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eod_backend/internal/feature/eod/domain/entity"
	"eod_backend/internal/feature/eod/usecase"
)

type eodGorm struct {
	db *gorm.DB
}

var _ usecase.EodRepository = (*eodGorm)(nil)

func NewEodRepository(db *gorm.DB) *eodGorm {
	return &eodGorm{db: db}
}

// EodRecordModel is the eod_records row. TradeDate is stored as YYYY-MM-DD text so that
// ordering and MAX() behave the same on every driver.
type EodRecordModel struct {
	ID          uint   `gorm:"primaryKey"`
	Symbol      string `gorm:"size:32;not null;uniqueIndex:eod_sym_date,priority:1"`
	TradeDate   string `gorm:"size:10;not null;uniqueIndex:eod_sym_date,priority:2;index"`
	Exchange    string `gorm:"size:16;not null"`
	CollectedAt string `gorm:"size:32;not null"` // upstream ISO-8601 date, verbatim

	Open   float64 `gorm:"not null"`
	High   float64 `gorm:"not null"`
	Low    float64 `gorm:"not null"`
	Close  float64 `gorm:"not null"`
	Volume float64 `gorm:"not null"`

	AdjOpen   float64 `gorm:"not null"`
	AdjHigh   float64 `gorm:"not null"`
	AdjLow    float64 `gorm:"not null"`
	AdjClose  float64 `gorm:"not null"`
	AdjVolume float64 `gorm:"not null"`

	SplitFactor float64 `gorm:"not null;default:1"`
	Dividend    float64 `gorm:"not null;default:0"`
}

func (EodRecordModel) TableName() string {
	return "eod_records"
}

func toModel(b entity.Bar) EodRecordModel {
	return EodRecordModel{
		Symbol:      b.Symbol,
		TradeDate:   b.TradeDate.String(),
		Exchange:    b.Exchange,
		CollectedAt: b.Timestamp,
		Open:        b.Open,
		High:        b.High,
		Low:         b.Low,
		Close:       b.Close,
		Volume:      b.Volume,
		AdjOpen:     b.AdjOpen,
		AdjHigh:     b.AdjHigh,
		AdjLow:      b.AdjLow,
		AdjClose:    b.AdjClose,
		AdjVolume:   b.AdjVolume,
		SplitFactor: b.SplitFactor,
		Dividend:    b.Dividend,
	}
}

func toEntity(m EodRecordModel) (entity.Bar, error) {
	day, err := civil.ParseDate(m.TradeDate)
	if err != nil {
		return entity.Bar{}, err
	}
	return entity.Bar{
		Symbol:      m.Symbol,
		Exchange:    m.Exchange,
		TradeDate:   day,
		Timestamp:   m.CollectedAt,
		Open:        m.Open,
		High:        m.High,
		Low:         m.Low,
		Close:       m.Close,
		Volume:      m.Volume,
		AdjOpen:     m.AdjOpen,
		AdjHigh:     m.AdjHigh,
		AdjLow:      m.AdjLow,
		AdjClose:    m.AdjClose,
		AdjVolume:   m.AdjVolume,
		SplitFactor: m.SplitFactor,
		Dividend:    m.Dividend,
	}, nil
}

func (r *eodGorm) UpsertBatch(ctx context.Context, bars []entity.Bar) error {
	if len(bars) == 0 {
		return nil
	}
	ms := make([]EodRecordModel, 0, len(bars))
	for _, b := range bars {
		ms = append(ms, toModel(b))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "symbol"}, {Name: "trade_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"exchange", "collected_at",
			"open", "high", "low", "close", "volume",
			"adj_open", "adj_high", "adj_low", "adj_close", "adj_volume",
			"split_factor", "dividend",
		}),
	}).Create(&ms).Error
}

// Find returns one page of bars matching c and the number of matches before paging.
// In latest mode each symbol contributes the row with its newest trade date among the
// rows that pass the exchange and date range filters.
func (r *eodGorm) Find(ctx context.Context, c usecase.Criteria) ([]entity.Bar, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&EodRecordModel{}).
		Where("eod_records.symbol IN ?", c.Symbols)
	if c.Exchange != "" {
		q = q.Where("eod_records.exchange = ?", c.Exchange)
	}

	if c.Latest {
		latest := r.db.Model(&EodRecordModel{}).
			Select("symbol AS latest_symbol, MAX(trade_date) AS latest_date").
			Where("symbol IN ?", c.Symbols)
		if c.Exchange != "" {
			latest = latest.Where("exchange = ?", c.Exchange)
		}
		if c.From != nil {
			latest = latest.Where("trade_date >= ?", c.From.String())
		}
		if c.To != nil {
			latest = latest.Where("trade_date <= ?", c.To.String())
		}
		latest = latest.Group("symbol")

		q = q.Joins("JOIN (?) AS latest ON latest.latest_symbol = eod_records.symbol AND latest.latest_date = eod_records.trade_date", latest)
	} else {
		q = q.Where("eod_records.trade_date = ?", c.On.String())
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "eod_records.trade_date DESC"
	if c.Ascending {
		order = "eod_records.trade_date ASC"
	}
	find := q.Order(order).Order("eod_records.symbol ASC")
	if c.Limit > 0 {
		find = find.Limit(c.Limit)
	}
	if c.Offset > 0 {
		find = find.Offset(c.Offset)
	}

	var rows []EodRecordModel
	if err := find.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]entity.Bar, 0, len(rows))
	for _, m := range rows {
		b, err := toEntity(m)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, nil
}
