// Package handler はeodフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"eod_backend/internal/feature/eod/usecase"
	"eod_backend/internal/platform/externalapi/marketstack"
	"eod_backend/internal/platform/externalapi/marketstack/dto"
)

// Error codes returned in the error envelope.
const (
	CodeMissingAccessKey = "missing_access_key"
	CodeInvalidAccessKey = "invalid_access_key"
	CodeValidation       = "validation_error"
	CodeInternal         = "internal_error"
)

// EodUsecase はEODデータ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type EodUsecase interface {
	GetEod(ctx context.Context, req dto.EodRequest) (usecase.Page, error)
}

// EodHandler はEODデータのHTTPリクエストを処理します。
type EodHandler struct {
	uc        EodUsecase
	accessKey string
}

// NewEodHandler はEodHandlerの新しいインスタンスを生成します。
// accessKeyが空の場合、空でない任意のキーを受け付けます。
func NewEodHandler(uc EodUsecase, accessKey string) *EodHandler {
	return &EodHandler{uc: uc, accessKey: accessKey}
}

// GetEod はエンドポイント（latest または YYYY-MM-DD）とクエリを受け取り、
// 上流APIと同じ形式のJSONを返します。
//
// エンドポイント例:
// GET /v1/eod/latest?access_key=KEY&symbols=AAPL,MSFT
// GET /v1/eod/2024-01-05?access_key=KEY&symbols=AAPL&exchange=XNAS
func (h *EodHandler) GetEod(c *gin.Context) {
	values := c.Request.URL.Query()

	key := values.Get("access_key")
	if key == "" {
		abort(c, http.StatusUnauthorized, CodeMissingAccessKey, "You have not supplied an API Access Key.")
		return
	}
	if h.accessKey != "" && subtle.ConstantTimeCompare([]byte(key), []byte(h.accessKey)) != 1 {
		slog.Warn("eod request with invalid access key", "remote_addr", c.ClientIP())
		abort(c, http.StatusUnauthorized, CodeInvalidAccessKey, "You have not supplied a valid API Access Key.")
		return
	}

	endpoint, err := dto.ParseEndpointType(c.Param("endpoint"))
	if err != nil {
		abort(c, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}
	q, err := dto.QueryFromValues(values)
	if err != nil {
		abort(c, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}

	page, err := h.uc.GetEod(c.Request.Context(), dto.NewEodRequest(endpoint, q))
	if err != nil {
		if errors.Is(err, usecase.ErrTooManySymbols) || errors.Is(err, usecase.ErrLimitExceeded) ||
			errors.Is(err, usecase.ErrOffsetExceeded) {
			abort(c, http.StatusBadRequest, CodeValidation, err.Error())
			return
		}
		// 内部エラーの詳細はクライアントに公開しない
		slog.Error("failed to get eod data", "error", err, "endpoint", endpoint.String(), "symbols", q.Symbols)
		abort(c, http.StatusInternalServerError, CodeInternal, "internal error")
		return
	}

	data := make([]dto.DailyRecord, 0, len(page.Bars))
	for _, b := range page.Bars {
		data = append(data, marketstack.FromBar(b))
	}

	c.JSON(http.StatusOK, dto.EodResponse{
		Pagination: dto.Pagination{
			Limit:  int64(page.Limit),
			Offset: int64(page.Offset),
			Count:  int64(len(data)),
			Total:  page.Total,
		},
		Data: data,
	})
}

func abort(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: &dto.APIError{Code: code, Message: msg}})
}
