// Package config は環境変数からアプリケーション設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config はAPIサーバーの設定です。
type Config struct {
	Server        ServerConfig
	Analysis      AnalysisConfig
	OpenAI        OpenAIConfig
	Gemini        GeminiConfig
	GenerationLog GenerationLogConfig
	Log           LogConfig
}

type ServerConfig struct {
	Addr           string   `envconfig:"SERVER_ADDR" default:":8080"`
	AllowedOrigins []string `envconfig:"SERVER_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type AnalysisConfig struct {
	Provider        string        `envconfig:"ANALYSIS_PROVIDER" default:"openai"`
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"0s"`
}

// OpenAIConfig のAPIKeyは起動時には必須にしません。未設定時はリクエストごとに設定エラーを返します。
type OpenAIConfig struct {
	APIKey  string `envconfig:"OPENAI_API_KEY"`
	BaseURL string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	Model   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
}

type GeminiConfig struct {
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`
	Model   string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
}

// GenerationLogConfig はリクエスト記録用DBの設定です。Driverが空の場合は記録しません。
type GenerationLogConfig struct {
	Driver         string        `envconfig:"GENERATION_LOG_DRIVER"`
	DSN            string        `envconfig:"GENERATION_LOG_DSN"`
	ConnectTimeout time.Duration `envconfig:"GENERATION_LOG_CONNECT_TIMEOUT" default:"30s"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// ReportConfig はレポートCLIの設定です。
// GenerationLogは logs サブコマンドがリクエスト記録を参照するときに使います。
type ReportConfig struct {
	ServerURL     string        `envconfig:"REPORT_SERVER_URL" default:"http://localhost:8080"`
	Timeout       time.Duration `envconfig:"REPORT_TIMEOUT" default:"0s"`
	GenerationLog GenerationLogConfig
}

// Load は .env（存在すれば）と環境変数からサーバー設定を読み込みます。
func Load() (*Config, error) {
	loadDotEnv()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadReport は .env（存在すれば）と環境変数からCLI設定を読み込みます。
func LoadReport() (*ReportConfig, error) {
	loadDotEnv()

	var cfg ReportConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Validate は値の組み合わせを検証します。
func (c *Config) Validate() error {
	switch c.Analysis.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unsupported ANALYSIS_PROVIDER %q (want %q or %q)", c.Analysis.Provider, ProviderOpenAI, ProviderGemini)
	}
	if c.Analysis.UpstreamTimeout < 0 {
		return errors.New("UPSTREAM_TIMEOUT must not be negative")
	}
	if c.GenerationLog.Driver == "" && c.GenerationLog.DSN != "" {
		return errors.New("GENERATION_LOG_DSN is set but GENERATION_LOG_DRIVER is empty")
	}
	return nil
}

// ProviderAPIKey は選択中のプロバイダーのAPIキーを返します。
func (c *Config) ProviderAPIKey() string {
	if c.Analysis.Provider == ProviderGemini {
		return c.Gemini.APIKey
	}
	return c.OpenAI.APIKey
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
}
