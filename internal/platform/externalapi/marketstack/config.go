// Package marketstack provides configuration and request composition for the
// marketstack end-of-day stock price API.
package marketstack

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"eod_backend/internal/platform/externalapi/marketstack/dto"
)

const apiHost = "api.marketstack.com/v1"

// ClientSyncConfig holds the subscription tier the client runs under.
// It is set once at configuration time and only read afterwards.
type ClientSyncConfig struct {
	IsFreeTier bool // free plans are limited and served over plain HTTP only
}

// DefaultBaseURL returns the API base URL for the tier.
func (c ClientSyncConfig) DefaultBaseURL() string {
	if c.IsFreeTier {
		return "http://" + apiHost
	}
	return "https://" + apiHost
}

// Tier returns "free" or "paid".
func (c ClientSyncConfig) Tier() string {
	if c.IsFreeTier {
		return "free"
	}
	return "paid"
}

// Config holds configuration for the marketstack API.
type Config struct {
	AccessKey string           // API access key
	BaseURL   string           // Base URL for the API (e.g., "https://api.marketstack.com/v1")
	Sync      ClientSyncConfig // subscription tier
}

// LoadConfig loads marketstack configuration from environment variables.
// BaseURL falls back to the default for the configured tier.
func LoadConfig() Config {
	sync := ClientSyncConfig{IsFreeTier: envBool("MARKETSTACK_FREE_TIER")}
	base := os.Getenv("MARKETSTACK_BASE_URL")
	if base == "" {
		base = sync.DefaultBaseURL()
	}
	return Config{
		AccessKey: os.Getenv("MARKETSTACK_ACCESS_KEY"),
		BaseURL:   base,
		Sync:      sync,
	}
}

func envBool(key string) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("ignoring invalid boolean environment variable", "key", key, "value", raw)
		return false
	}
	return v
}

// NewQueryBuilder returns a query builder with the configured access key already set.
func (c Config) NewQueryBuilder() *dto.QueryBuilder {
	return dto.NewQueryBuilder().AccessKey(c.AccessKey)
}

// RequestURL returns the absolute URL for req, ready to hand to an HTTP transport.
func (c Config) RequestURL(req dto.EodRequest) string {
	return fmt.Sprintf("%s%s?%s", strings.TrimRight(c.BaseURL, "/"), req.Path(), req.Query.Values().Encode())
}
