package di

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"company_analysis/internal/config"
	"company_analysis/internal/feature/analysis/adapters"
	"company_analysis/internal/feature/analysis/usecase"
	"company_analysis/internal/platform/db"
)

// ErrGenerationLogDisabled はGENERATION_LOG_DRIVERが未設定であることを表します。
var ErrGenerationLogDisabled = errors.New("generation log is disabled (GENERATION_LOG_DRIVER is not set)")

// OpenGenerationLog はリクエスト記録用DBに接続し、マイグレーション済みのリポジトリを返します。
// 返されたgorm.DBは呼び出し元が閉じます。
func OpenGenerationLog(cfg config.GenerationLogConfig) (*adapters.GenerationLogGorm, *gorm.DB, error) {
	dbCfg := db.Config{
		Driver:         cfg.Driver,
		DSN:            cfg.DSN,
		ConnectTimeout: cfg.ConnectTimeout,
	}
	if !dbCfg.Enabled() {
		return nil, nil, ErrGenerationLogDisabled
	}

	gdb, err := db.Open(dbCfg, &adapters.GenerationLogModel{})
	if err != nil {
		return nil, nil, err
	}
	return adapters.NewGenerationLogGorm(gdb), gdb, nil
}

// NewGenerationRecorder はリクエスト記録用のGenerationRecorderを生成します。
// GENERATION_LOG_DRIVERが未設定の場合は記録しません（nil, nil, nil）。
// 返されたgorm.DBは呼び出し元が閉じます。
func NewGenerationRecorder(cfg config.GenerationLogConfig) (usecase.GenerationRecorder, *gorm.DB, error) {
	repo, gdb, err := OpenGenerationLog(cfg)
	if errors.Is(err, ErrGenerationLogDisabled) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	slog.Info("generation log enabled", "driver", cfg.Driver)
	return repo, gdb, nil
}
