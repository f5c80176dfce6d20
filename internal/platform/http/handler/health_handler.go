// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"github.com/gin-gonic/gin"

	"eod_backend/internal/platform/externalapi/marketstack"
)

// Health はサービスヘルスチェック用の /healthz エンドポイントのハンドラーを返します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
// レスポンスには設定されたプランの種別（free/paid）を含めます。
func Health(sync marketstack.ClientSyncConfig) gin.HandlerFunc {
	tier := sync.Tier()
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		// すべてのGET/HEAD/OPTIONSリクエストに対して200または204を返す
		switch c.Request.Method {
		case "HEAD":
			c.Status(200)
		case "OPTIONS":
			c.Status(204)
		default:
			c.JSON(200, gin.H{"status": "ok", "tier": tier})
		}
	}
}
