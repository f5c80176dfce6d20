package usecase

import (
	"context"
	"fmt"
	"math"

	"cloud.google.com/go/civil"

	"eod_backend/internal/feature/eod/domain/entity"
	"eod_backend/internal/platform/externalapi/marketstack/dto"
)

// Criteria はEODデータ検索の条件です。
type Criteria struct {
	Symbols   []string
	Exchange  string      // 空の場合は取引所で絞り込まない
	Latest    bool        // trueの場合は銘柄ごとの最新日のみ
	On        civil.Date  // Latestがfalseの場合の対象日
	From      *civil.Date // Latest検索の候補範囲（開始）
	To        *civil.Date // Latest検索の候補範囲（終了）
	Ascending bool
	Limit     int
	Offset    int
}

// MaxOffset はリポジトリに渡せるoffsetの上限です。
const MaxOffset = math.MaxInt32

// EodRepository はEODデータの永続化レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type EodRepository interface {
	// UpsertBatch は銘柄と取引日をキーにバーを挿入または更新します。
	UpsertBatch(ctx context.Context, bars []entity.Bar) error
	// Find は条件に一致するバーと、ページング前の総件数を返します。
	Find(ctx context.Context, c Criteria) ([]entity.Bar, int64, error)
}

// Page は1ページ分の検索結果です。
type Page struct {
	Bars   []entity.Bar
	Limit  int
	Offset int
	Total  int64
}

// EodUsecase はEODデータ取得のユースケースを定義します。
type EodUsecase struct {
	repo EodRepository
}

// NewEodUsecase はEodUsecaseの新しいインスタンスを生成します。
func NewEodUsecase(repo EodRepository) *EodUsecase {
	return &EodUsecase{repo: repo}
}

// GetEod はリクエストのエンドポイントとクエリに従ってEODデータを取得します。
// limitが未指定または0の場合はdto.DefaultLimitを使用します。
func (u *EodUsecase) GetEod(ctx context.Context, req dto.EodRequest) (Page, error) {
	q := req.Query
	if len(q.Symbols) > dto.MaxSymbols {
		return Page{}, fmt.Errorf("%w: %d given, max %d", ErrTooManySymbols, len(q.Symbols), dto.MaxSymbols)
	}

	limit := dto.DefaultLimit
	if q.Limit != nil && *q.Limit > 0 {
		if *q.Limit > dto.MaxLimit {
			return Page{}, fmt.Errorf("%w: %d given, max %d", ErrLimitExceeded, *q.Limit, dto.MaxLimit)
		}
		limit = int(*q.Limit)
	}
	offset := 0
	if q.Offset != nil {
		if *q.Offset > MaxOffset {
			return Page{}, fmt.Errorf("%w: %d given, max %d", ErrOffsetExceeded, *q.Offset, MaxOffset)
		}
		offset = int(*q.Offset)
	}

	c := Criteria{
		Symbols:   q.Symbols,
		Exchange:  q.Exchange,
		From:      q.DateFrom,
		To:        q.DateTo,
		Ascending: q.Sort == dto.Ascending,
		Limit:     limit,
		Offset:    offset,
	}
	if d, ok := req.Endpoint.Date(); ok {
		c.On = d
	} else {
		c.Latest = true
	}

	bars, total, err := u.repo.Find(ctx, c)
	if err != nil {
		return Page{}, err
	}

	return Page{Bars: bars, Limit: limit, Offset: offset, Total: total}, nil
}
