package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"eod_backend/internal/app/di"
	"eod_backend/internal/app/router"
	infradb "eod_backend/internal/platform/db"
	"eod_backend/internal/platform/externalapi/marketstack"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	// db
	db, err := infradb.OpenDB()
	if err != nil {
		log.Fatal(err)
	}

	cfg := marketstack.LoadConfig()
	if cfg.AccessKey == "" {
		slog.Warn("MARKETSTACK_ACCESS_KEY is not set; any access_key will be accepted")
	}

	// Handler
	eodH := di.NewEodHandler(db, cfg)

	// ルータ生成
	r := router.NewRouter(eodH, cfg.Sync)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	slog.Info("starting server", "addr", addr, "tier", cfg.Sync.Tier())
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
