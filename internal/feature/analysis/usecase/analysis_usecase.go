// Package usecase はanalysisフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"company_analysis/internal/feature/analysis/domain"
	"company_analysis/internal/feature/analysis/domain/entity"
)

// CompletionProvider はチャット補完を行う外部プロバイダーのインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CompletionProvider interface {
	// Complete はsystem/userの2メッセージを送り、先頭の候補を返します。再試行はしません。
	Complete(ctx context.Context, req entity.CompletionRequest) (*entity.Completion, error)
}

// GenerationRecorder は分析リクエストの運用メトリクスを記録するリポジトリインターフェースです。
type GenerationRecorder interface {
	Record(ctx context.Context, log *entity.GenerationLog) error
}

// analysisUsecase は企業分析の生成ロジックを提供します。
type analysisUsecase struct {
	provider     CompletionProvider
	providerName string
	recorder     GenerationRecorder
}

// NewAnalysisUsecase はanalysisUsecaseの新しいインスタンスを生成します。
// provider が nil の場合、認証情報未設定として扱い、すべてのリクエストが ErrProviderNotConfigured になります。
// recorder は nil でもかまいません。
func NewAnalysisUsecase(provider CompletionProvider, providerName string, recorder GenerationRecorder) *analysisUsecase {
	return &analysisUsecase{provider: provider, providerName: providerName, recorder: recorder}
}

// AnalyzeCompany は企業名から事業分析を生成します。
// 成功時はプロバイダーが返したJSONをそのまま Raw に格納して返します。
func (u *analysisUsecase) AnalyzeCompany(ctx context.Context, companyName string) (*entity.GeneratedAnalysis, error) {
	started := time.Now()
	companyName = strings.TrimSpace(companyName)

	log := &entity.GenerationLog{
		RequestedAt:   started,
		CompanyName:   companyName,
		Provider:      u.providerName,
		PromptVersion: PromptVersion,
	}

	result, err := u.generate(ctx, companyName, log)

	log.LatencyMillis = time.Since(started).Milliseconds()
	switch {
	case err == nil:
		log.Outcome = entity.OutcomeSuccess
	case errors.Is(err, domain.ErrCompanyNameRequired):
		log.Outcome = entity.OutcomeValidationError
	case errors.Is(err, domain.ErrProviderNotConfigured):
		log.Outcome = entity.OutcomeConfigurationError
	default:
		log.Outcome = entity.OutcomeGenerationError
	}
	if err != nil {
		log.ErrorMessage = err.Error()
	}
	u.record(ctx, log)

	return result, err
}

func (u *analysisUsecase) generate(ctx context.Context, companyName string, log *entity.GenerationLog) (*entity.GeneratedAnalysis, error) {
	if companyName == "" {
		return nil, domain.ErrCompanyNameRequired
	}
	if u.provider == nil {
		return nil, domain.ErrProviderNotConfigured
	}

	completion, err := u.provider.Complete(ctx, entity.CompletionRequest{
		SystemPrompt: SystemPrompt,
		UserPrompt:   BuildAnalysisPrompt(companyName),
		Temperature:  Temperature,
		JSONOutput:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: provider %s: %w", domain.ErrGenerationFailed, u.providerName, err)
	}
	log.Model = completion.Model
	log.TotalTokens = completion.TotalTokens

	content := cleanJSONResponse(completion.Content)
	raw := json.RawMessage(content)
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: provider returned non-JSON content: %.200q", domain.ErrGenerationFailed, content)
	}

	typed, err := decodeAnalysis(raw)
	if err != nil {
		// 形が崩れていても応答はそのまま返す。スキーマのずれは運用者が気付けるようにログに残す
		slog.Warn("analysis response does not match schema",
			"prompt_version", PromptVersion, "company", companyName, "model", completion.Model, "error", err)
	}

	return &entity.GeneratedAnalysis{
		CompanyName:   companyName,
		PromptVersion: PromptVersion,
		Model:         completion.Model,
		Raw:           raw,
		Typed:         typed,
	}, nil
}

// decodeAnalysis はRawをスキーマ v1 として厳密にデコードします。未知のフィールドはエラーです。
func decodeAnalysis(raw json.RawMessage) (*entity.Analysis, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var a entity.Analysis
	if err := dec.Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (u *analysisUsecase) record(ctx context.Context, log *entity.GenerationLog) {
	if u.recorder == nil {
		return
	}
	// リクエストのキャンセルに関係なく記録する
	if err := u.recorder.Record(context.WithoutCancel(ctx), log); err != nil {
		slog.Warn("failed to record generation log", "error", err, "company", log.CompanyName)
	}
}
