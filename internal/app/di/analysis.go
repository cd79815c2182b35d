// Package di はアプリケーションのコンポーネントを組み立てるファクトリーを提供します。
package di

import (
	"context"
	"fmt"
	"log/slog"

	"company_analysis/internal/config"
	geminiadapter "company_analysis/internal/feature/analysis/adapters/gemini"
	openaiadapter "company_analysis/internal/feature/analysis/adapters/openai"
	"company_analysis/internal/feature/analysis/usecase"
	infrahttp "company_analysis/internal/platform/http"
)

// NewCompletionProvider は設定に応じたCompletionProviderを生成します。
// APIキーが未設定の場合は警告を出してnilを返します。起動は止めず、各リクエストが設定エラーになります。
func NewCompletionProvider(ctx context.Context, cfg *config.Config) (usecase.CompletionProvider, error) {
	if cfg.ProviderAPIKey() == "" {
		slog.Warn("analysis provider API key is not set; requests will fail until it is configured",
			"provider", cfg.Analysis.Provider)
		return nil, nil
	}

	httpClient := infrahttp.NewHTTPClient(cfg.Analysis.UpstreamTimeout)

	switch cfg.Analysis.Provider {
	case config.ProviderGemini:
		p, err := geminiadapter.NewGeminiProvider(ctx, geminiadapter.Config{
			APIKey:  cfg.Gemini.APIKey,
			BaseURL: cfg.Gemini.BaseURL,
			Model:   cfg.Gemini.Model,
		}, httpClient)
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.ProviderOpenAI:
		p, err := openaiadapter.NewOpenAIProvider(openaiadapter.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
		}, httpClient)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported analysis provider %q", cfg.Analysis.Provider)
	}
}
