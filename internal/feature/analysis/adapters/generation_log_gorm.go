package adapters

import (
	"context"

	"gorm.io/gorm"

	"company_analysis/internal/feature/analysis/domain/entity"
	"company_analysis/internal/feature/analysis/usecase"
)

const defaultRecentLimit = 50

// GenerationLogGorm はGenerationRecorderのgorm実装です。Recentで運用者向けの参照もできます。
type GenerationLogGorm struct {
	db *gorm.DB
}

// GenerationLogGormがGenerationRecorderを実装していることをコンパイル時に検証します。
var _ usecase.GenerationRecorder = (*GenerationLogGorm)(nil)

// NewGenerationLogGorm はGenerationLogGormの新しいインスタンスを生成します。
func NewGenerationLogGorm(db *gorm.DB) *GenerationLogGorm {
	return &GenerationLogGorm{db: db}
}

// Record は1件の記録を保存し、採番されたIDをエンティティに反映します。
func (r *GenerationLogGorm) Record(ctx context.Context, log *entity.GenerationLog) error {
	model := GenerationLogModelFromEntity(log)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	log.ID = model.ID
	return nil
}

// Recent は新しい順に最大limit件を返します。limitが0以下の場合は既定件数です。
func (r *GenerationLogGorm) Recent(ctx context.Context, limit int) ([]*entity.GenerationLog, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	var models []GenerationLogModel
	if err := r.db.WithContext(ctx).
		Order("requested_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}

	logs := make([]*entity.GenerationLog, len(models))
	for i := range models {
		logs[i] = models[i].ToEntity()
	}
	return logs, nil
}
