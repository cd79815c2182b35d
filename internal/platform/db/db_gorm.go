// Package db はgormによるデータベース接続を提供します。
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// DriverSQLite はSQLiteドライバー名です。
	DriverSQLite = "sqlite"
	// DriverPostgres はPostgreSQLドライバー名です。
	DriverPostgres = "postgres"

	retryInterval = 3 * time.Second
)

// Config はデータベース接続設定です。
type Config struct {
	Driver         string
	DSN            string
	ConnectTimeout time.Duration
}

// Opener はDSNからgorm.DBを開く関数です。テストで差し替えます。
type Opener func(dsn string) (*gorm.DB, error)

// Enabled はドライバーが設定されているかを返します。
func (c Config) Enabled() bool {
	return c.Driver != ""
}

// BuildDSN はドライバーに応じたDSNを返します。
// SQLiteでDSNが空の場合はローカルファイルを使用します。
func BuildDSN(cfg Config) string {
	if cfg.DSN == "" && cfg.Driver == DriverSQLite {
		return "company_analysis.db"
	}
	return cfg.DSN
}

// NewOpener はドライバー名に対応するOpenerを返します。
func NewOpener(driver string) (Opener, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	switch driver {
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), gormCfg)
		}, nil
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gormCfg)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// ConnectWithRetry はタイムアウトまで一定間隔で接続を再試行します。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
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

// Open は設定に従って接続し、指定モデルのマイグレーションを実行します。
func Open(cfg Config, models ...any) (*gorm.DB, error) {
	opener, err := NewOpener(cfg.Driver)
	if err != nil {
		return nil, err
	}
	db, err := ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, opener)
	if err != nil {
		return nil, err
	}
	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return db, nil
}
