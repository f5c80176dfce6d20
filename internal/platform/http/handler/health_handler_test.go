package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"eod_backend/internal/platform/externalapi/marketstack"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter() *gin.Engine {
	return setupRouterWith(marketstack.ClientSyncConfig{})
}

func setupRouterWith(sync marketstack.ClientSyncConfig) *gin.Engine {
	h := Health(sync)
	r := gin.New()
	r.GET("/healthz", h)
	r.HEAD("/healthz", h)
	r.OPTIONS("/healthz", h)
	r.POST("/healthz", h)
	r.PUT("/healthz", h)
	r.DELETE("/healthz", h)
	return r
}

func TestHealth_GET(t *testing.T) {
	t.Parallel()

	router := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	// Check response body
	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", response["status"])
	}
	if response["tier"] != "paid" {
		t.Errorf("expected tier 'paid', got %q", response["tier"])
	}

	// Check Cache-Control header
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("expected Cache-Control 'no-store', got %q", w.Header().Get("Cache-Control"))
	}
}

func TestHealth_FreeTier(t *testing.T) {
	t.Parallel()

	router := setupRouterWith(marketstack.ClientSyncConfig{IsFreeTier: true})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	router.ServeHTTP(w, req)

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["tier"] != "free" {
		t.Errorf("expected tier 'free', got %q", response["tier"])
	}
}

func TestHealth_HEAD(t *testing.T) {
	t.Parallel()

	router := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodHead, "/healthz", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	// HEAD should have no body
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body for HEAD request, got %d bytes", w.Body.Len())
	}

	// Check Cache-Control header
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("expected Cache-Control 'no-store', got %q", w.Header().Get("Cache-Control"))
	}
}

func TestHealth_OPTIONS(t *testing.T) {
	t.Parallel()

	router := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/healthz", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}

	// Check Cache-Control header
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("expected Cache-Control 'no-store', got %q", w.Header().Get("Cache-Control"))
	}
}

// TestHealth_MethodMatrix はメソッドとプラン種別の組み合わせごとにステータス、ボディ、ヘッダーを検証します。
func TestHealth_MethodMatrix(t *testing.T) {
	t.Parallel()

	methods := []struct {
		method         string
		expectedStatus int
		expectBody     bool
	}{
		{http.MethodGet, http.StatusOK, true},
		{http.MethodHead, http.StatusOK, false},
		{http.MethodOptions, http.StatusNoContent, false},
		{http.MethodPost, http.StatusOK, true},
		{http.MethodPut, http.StatusOK, true},
		{http.MethodDelete, http.StatusOK, true},
	}
	tiers := []struct {
		sync marketstack.ClientSyncConfig
		tier string
	}{
		{marketstack.ClientSyncConfig{IsFreeTier: false}, "paid"},
		{marketstack.ClientSyncConfig{IsFreeTier: true}, "free"},
	}

	for _, tc := range tiers {
		tc := tc
		router := setupRouterWith(tc.sync)

		for _, m := range methods {
			m := m
			t.Run(tc.tier+"/"+m.method, func(t *testing.T) {
				t.Parallel()

				w := httptest.NewRecorder()
				req := httptest.NewRequest(m.method, "/healthz", nil)

				router.ServeHTTP(w, req)

				if w.Code != m.expectedStatus {
					t.Errorf("expected status %d, got %d", m.expectedStatus, w.Code)
				}
				if w.Header().Get("Cache-Control") != "no-store" {
					t.Errorf("expected Cache-Control 'no-store', got %q", w.Header().Get("Cache-Control"))
				}

				if !m.expectBody {
					if w.Body.Len() != 0 {
						t.Errorf("expected empty body for %s, got %d bytes", m.method, w.Body.Len())
					}
					return
				}

				var response map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}
				if response["status"] != "ok" {
					t.Errorf("expected status 'ok', got %q", response["status"])
				}
				if response["tier"] != tc.tier {
					t.Errorf("expected tier %q, got %q", tc.tier, response["tier"])
				}
			})
		}
	}
}
