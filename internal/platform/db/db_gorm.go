// Package db はgormによるデータベース接続とマイグレーションを提供します。
package db

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	eodadapters "eod_backend/internal/feature/eod/adapters"
)

const (
	connectTimeout = 60 * time.Second
	retryInterval  = 3 * time.Second
)

// Config はデータベース接続設定です。
// SQLitePathが設定されている場合はPostgreSQLの設定より優先されます。
type Config struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	return Config{
		Host:       os.Getenv("DB_HOST"),
		Port:       os.Getenv("DB_PORT"),
		User:       os.Getenv("DB_USER"),
		Password:   os.Getenv("DB_PASSWORD"),
		Name:       os.Getenv("DB_NAME"),
		SSLMode:    os.Getenv("DB_SSLMODE"),
		SQLitePath: os.Getenv("DB_SQLITE_PATH"),
	}
}

// BuildDSN はPostgreSQL用のkey=value形式のDSN文字列を生成します。
// 未設定のhost/port/sslmodeには既定値を使用します。
func BuildDSN(cfg Config) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == "" {
		port = "5432"
	}
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}

	parts := []string{
		"host=" + host,
		"port=" + port,
		"user=" + quoteDSNValue(cfg.User),
		"password=" + quoteDSNValue(cfg.Password),
		"dbname=" + quoteDSNValue(cfg.Name),
		"sslmode=" + sslmode,
		"TimeZone=UTC",
	}
	return strings.Join(parts, " ")
}

// quoteDSNValue は空白や引用符を含む値をlibpqの規則で引用します。
func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}

// ConnectWithRetry はtimeoutまでretryInterval間隔で接続を試みます。
func ConnectWithRetry(dsn string, timeout time.Duration, opener func(string) (*gorm.DB, error)) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "interval", retryInterval)
		time.Sleep(retryInterval)
	}
}

func openPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// OpenDB は環境変数の設定に従ってデータベースに接続します。
// RUN_MIGRATIONS=true の場合はスキーマのマイグレーションも実行します。
func OpenDB() (*gorm.DB, error) {
	cfg := LoadConfigFromEnv()

	var (
		db  *gorm.DB
		err error
	)
	if cfg.SQLitePath != "" {
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		slog.Info("using sqlite database", "path", cfg.SQLitePath)
	} else {
		db, err = ConnectWithRetry(BuildDSN(cfg), connectTimeout, openPostgres)
		if err != nil {
			return nil, err
		}
		slog.Info("connected to postgres", "host", cfg.Host, "db", cfg.Name)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate はEODテーブルのスキーマを作成・更新します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&eodadapters.EodRecordModel{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
