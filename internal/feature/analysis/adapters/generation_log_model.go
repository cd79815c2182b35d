// Package adapters はanalysisフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"time"
	"unicode/utf8"

	"company_analysis/internal/feature/analysis/domain/entity"
)

// 文字列カラムの最大バイト数です。
const (
	companyNameMaxBytes  = 255
	errorMessageMaxBytes = 1024
)

// GenerationLogModel はgeneration_logsテーブルのGORMモデルです。
type GenerationLogModel struct {
	ID            uint      `gorm:"primaryKey"`
	RequestedAt   time.Time `gorm:"index;not null"`
	CompanyName   string    `gorm:"size:255;index"`
	Provider      string    `gorm:"size:32;not null"`
	Model         string    `gorm:"size:128"`
	PromptVersion string    `gorm:"size:16;not null"`
	Outcome       string    `gorm:"size:32;index;not null"`
	TotalTokens   int64
	LatencyMillis int64
	ErrorMessage  string `gorm:"size:1024"`
}

// TableName はGORMのテーブル名を返します。
func (GenerationLogModel) TableName() string {
	return "generation_logs"
}

// ToEntity はGORMモデルをドメインエンティティに変換します。
func (m *GenerationLogModel) ToEntity() *entity.GenerationLog {
	return &entity.GenerationLog{
		ID:            m.ID,
		RequestedAt:   m.RequestedAt,
		CompanyName:   m.CompanyName,
		Provider:      m.Provider,
		Model:         m.Model,
		PromptVersion: m.PromptVersion,
		Outcome:       entity.Outcome(m.Outcome),
		TotalTokens:   m.TotalTokens,
		LatencyMillis: m.LatencyMillis,
		ErrorMessage:  m.ErrorMessage,
	}
}

// GenerationLogModelFromEntity はドメインエンティティをGORMモデルに変換します。
func GenerationLogModelFromEntity(l *entity.GenerationLog) *GenerationLogModel {
	return &GenerationLogModel{
		ID:            l.ID,
		RequestedAt:   l.RequestedAt,
		CompanyName:   truncateUTF8(l.CompanyName, companyNameMaxBytes),
		Provider:      l.Provider,
		Model:         l.Model,
		PromptVersion: l.PromptVersion,
		Outcome:       string(l.Outcome),
		TotalTokens:   l.TotalTokens,
		LatencyMillis: l.LatencyMillis,
		ErrorMessage:  truncateUTF8(l.ErrorMessage, errorMessageMaxBytes),
	}
}

// truncateUTF8 はsを最大limitバイトに切り詰めます。マルチバイト文字の途中では切りません。
func truncateUTF8(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
