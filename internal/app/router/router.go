package router

import (
	"github.com/gin-gonic/gin"

	eodhandler "eod_backend/internal/feature/eod/transport/handler"
	"eod_backend/internal/platform/externalapi/marketstack"
	"eod_backend/internal/platform/http/handler"
)

func NewRouter(eod *eodhandler.EodHandler, sync marketstack.ClientSyncConfig) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	health := handler.Health(sync)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	// 上流APIと同じパス構成（/v1/eod/latest, /v1/eod/YYYY-MM-DD）
	// access_keyはクエリで受け取り、ハンドラー内で検証する
	v1 := r.Group("/v1")
	{
		v1.GET("/eod/:endpoint", eod.GetEod)
	}

	return r
}
