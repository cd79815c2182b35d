package entity

import "time"

// Outcome は分析リクエスト1件の結果区分です。
type Outcome string

const (
	OutcomeSuccess            Outcome = "success"
	OutcomeValidationError    Outcome = "validation_error"
	OutcomeConfigurationError Outcome = "configuration_error"
	OutcomeGenerationError    Outcome = "generation_error"
)

// GenerationLog は分析リクエスト1件の運用メトリクスです。
// 生成された分析本文は保持しません。
type GenerationLog struct {
	ID            uint
	RequestedAt   time.Time
	CompanyName   string
	Provider      string
	Model         string
	PromptVersion string
	Outcome       Outcome
	TotalTokens   int64
	LatencyMillis int64
	ErrorMessage  string // 失敗時の原因（運用者向け）
}
