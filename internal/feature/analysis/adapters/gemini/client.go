// Package gemini はGoogle Gemini APIを使用した補完プロバイダーを提供します。
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"company_analysis/internal/feature/analysis/domain/entity"
	"company_analysis/internal/feature/analysis/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
)

// Config はGeminiクライアントの設定です。
type Config struct {
	APIKey  string
	BaseURL string // 空の場合はSDKの既定値
	Model   string
}

// GeminiProvider はGoogle Gemini APIで補完を生成します。
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// GeminiProviderがCompletionProviderを実装していることをコンパイル時に検証します。
var _ usecase.CompletionProvider = (*GeminiProvider)(nil)

// NewGeminiProvider はAPIキーを使用してGeminiProviderの新しいインスタンスを生成します。
func NewGeminiProvider(ctx context.Context, cfg Config, httpClient *http.Client) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: cfg.Model}, nil
}

// Complete はsystem指示とuserプロンプトでコンテンツ生成を1回呼び出します。
func (g *GeminiProvider) Complete(ctx context.Context, req entity.CompletionRequest) (*entity.Completion, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(float32(req.Temperature)),
	}
	if req.JSONOutput {
		config.ResponseMIMEType = "application/json"
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.UserPrompt), config)
	if err != nil {
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, errors.New("no response from gemini")
	}

	out := &entity.Completion{
		Content: resp.Text(),
		Model:   g.model,
	}
	if resp.ModelVersion != "" {
		out.Model = resp.ModelVersion
	}
	if u := resp.UsageMetadata; u != nil {
		out.PromptTokens = int64(u.PromptTokenCount)
		out.CompletionTokens = int64(u.CandidatesTokenCount)
		out.TotalTokens = int64(u.TotalTokenCount)
	}
	return out, nil
}
