package usecase

import (
	"context"
	"io"
	"log/slog"

	"eod_backend/internal/feature/eod/domain/entity"
	"eod_backend/internal/platform/externalapi/marketstack"
	"eod_backend/internal/platform/externalapi/marketstack/dto"
)

// IngestUsecase は保存済みのEODレスポンスを読み込み、データベースに永続化するユースケースを定義します。
type IngestUsecase struct {
	repo EodRepository
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(repo EodRepository) *IngestUsecase {
	return &IngestUsecase{repo: repo}
}

// Ingest はレスポンスボディをデコードし、全レコードを一括で挿入（または更新）します。
// 日付を解釈できないレコードはログに出力してスキップします。保存した件数を返します。
func (iu *IngestUsecase) Ingest(ctx context.Context, body io.Reader) (int, error) {
	resp, err := dto.DecodeEodResponse(body)
	if err != nil {
		return 0, err
	}

	bars := make([]entity.Bar, 0, len(resp.Data))
	for _, rec := range resp.Data {
		b, err := marketstack.ToBar(rec)
		if err != nil {
			// 1件のレコードが不正でも処理を止めずにログに出力し、次のレコードへ
			slog.Warn("skipping eod record", "symbol", rec.Symbol, "date", rec.Date, "error", err)
			continue
		}
		bars = append(bars, b)
	}

	if err := iu.repo.UpsertBatch(ctx, bars); err != nil {
		return 0, err
	}
	return len(bars), nil
}
