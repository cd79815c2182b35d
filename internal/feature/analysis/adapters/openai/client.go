// Package openai はOpenAI Chat Completions APIを使用した補完プロバイダーを提供します。
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"company_analysis/internal/feature/analysis/domain/entity"
	"company_analysis/internal/feature/analysis/usecase"
)

const (
	// DefaultModel はOpenAIのデフォルトモデルです。
	DefaultModel = "gpt-4o-mini"
	// DefaultBaseURL はOpenAI APIのデフォルトのベースURLです。
	DefaultBaseURL = "https://api.openai.com/v1"
)

// Config はOpenAIクライアントの設定です。
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// OpenAIProvider はOpenAI Chat Completions APIで補完を生成します。
type OpenAIProvider struct {
	client oai.Client
	model  string
}

// OpenAIProviderがCompletionProviderを実装していることをコンパイル時に検証します。
var _ usecase.CompletionProvider = (*OpenAIProvider)(nil)

// NewOpenAIProvider はOpenAIProviderの新しいインスタンスを生成します。
// SDKの自動リトライは無効にします。失敗はそのまま呼び出し元へ返します。
func NewOpenAIProvider(cfg Config, httpClient *http.Client) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key is empty")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &OpenAIProvider{
		client: oai.NewClient(opts...),
		model:  cfg.Model,
	}, nil
}

// Complete はsystem/userの2メッセージでチャット補完を1回呼び出します。
func (o *OpenAIProvider) Complete(ctx context.Context, req entity.CompletionRequest) (*entity.Completion, error) {
	params := oai.ChatCompletionNewParams{
		Model: shared.ChatModel(o.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.SystemMessage(req.SystemPrompt),
			oai.UserMessage(req.UserPrompt),
		},
		Temperature: oai.Float(req.Temperature),
	}
	if req.JSONOutput {
		params.ResponseFormat = oai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no response from openai")
	}

	model := resp.Model
	if model == "" {
		model = o.model
	}

	return &entity.Completion{
		Content:          resp.Choices[0].Message.Content,
		Model:            model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}, nil
}
