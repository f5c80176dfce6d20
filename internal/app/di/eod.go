// Package di provides dependency injection factories for creating application components.
package di

import (
	"gorm.io/gorm"

	eodadapters "eod_backend/internal/feature/eod/adapters"
	eodhandler "eod_backend/internal/feature/eod/transport/handler"
	eodusecase "eod_backend/internal/feature/eod/usecase"
	"eod_backend/internal/platform/externalapi/marketstack"
)

// NewEodHandler creates an EodHandler backed by the gorm EOD store.
func NewEodHandler(db *gorm.DB, cfg marketstack.Config) *eodhandler.EodHandler {
	repo := eodadapters.NewEodRepository(db)
	uc := eodusecase.NewEodUsecase(repo)
	return eodhandler.NewEodHandler(uc, cfg.AccessKey)
}

// NewIngestUsecase creates an IngestUsecase that stores into the gorm EOD store.
func NewIngestUsecase(db *gorm.DB) *eodusecase.IngestUsecase {
	return eodusecase.NewIngestUsecase(eodadapters.NewEodRepository(db))
}
