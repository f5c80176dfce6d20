package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"eod_backend/internal/app/di"
	"eod_backend/internal/app/router"
	eodadapters "eod_backend/internal/feature/eod/adapters"
	"eod_backend/internal/feature/eod/domain/entity"
	infradb "eod_backend/internal/platform/db"
	"eod_backend/internal/platform/externalapi/marketstack"
	"eod_backend/internal/platform/externalapi/marketstack/dto"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, infradb.Migrate(db))

	err = eodadapters.NewEodRepository(db).UpsertBatch(context.Background(), []entity.Bar{
		{Symbol: "AAPL", Exchange: "XNAS", TradeDate: civil.Date{Year: 2024, Month: 1, Day: 4}, Close: 181.91, SplitFactor: 1},
		{Symbol: "AAPL", Exchange: "XNAS", TradeDate: civil.Date{Year: 2024, Month: 1, Day: 5}, Close: 181.18, SplitFactor: 1},
	})
	require.NoError(t, err)

	cfg := marketstack.Config{AccessKey: "KEY", Sync: marketstack.ClientSyncConfig{IsFreeTier: true}}
	return router.NewRouter(di.NewEodHandler(db, cfg), cfg.Sync)
}

func TestRouter_Eod(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name     string
		url      string
		wantDate string
	}{
		{name: "latest", url: "/v1/eod/latest?access_key=KEY&symbols=AAPL", wantDate: "2024-01-05T00:00:00+0000"},
		{name: "date", url: "/v1/eod/2024-01-04?access_key=KEY&symbols=AAPL", wantDate: "2024-01-04T00:00:00+0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			require.Equal(t, http.StatusOK, w.Code)
			resp, err := dto.UnmarshalEodResponse(w.Body.Bytes())
			require.NoError(t, err)
			require.Len(t, resp.Data, 1)
			assert.Equal(t, tt.wantDate, resp.Data[0].Date)
			assert.Equal(t, int64(1), resp.Pagination.Count)
			assert.Equal(t, int64(100), resp.Pagination.Limit)
		})
	}
}

func TestRouter_Healthz(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","tier":"free"}`, w.Body.String())
}
