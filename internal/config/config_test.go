package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 環境変数を変更するため並列にしない

// unsetEnv はテスト終了時に元の値へ戻るように環境変数を削除します。
// envconfigは空文字の変数を「設定済み」として扱うため、削除が必要です。
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t,
		"SERVER_ADDR", "SERVER_ALLOWED_ORIGINS", "ANALYSIS_PROVIDER", "UPSTREAM_TIMEOUT",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL", "GEMINI_API_KEY", "GEMINI_MODEL",
		"GENERATION_LOG_DRIVER", "GENERATION_LOG_DSN", "GENERATION_LOG_CONNECT_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
	)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, ProviderOpenAI, cfg.Analysis.Provider)
	assert.Zero(t, cfg.Analysis.UpstreamTimeout)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Empty(t, cfg.GenerationLog.Driver)
	assert.Equal(t, 30*time.Second, cfg.GenerationLog.ConnectTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.ProviderAPIKey(), "missing key must not fail startup")
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "http://a.example,http://b.example")
	t.Setenv("ANALYSIS_PROVIDER", "gemini")
	t.Setenv("UPSTREAM_TIMEOUT", "90s")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "sk-key")
	t.Setenv("GENERATION_LOG_DRIVER", "sqlite")
	t.Setenv("GENERATION_LOG_DSN", ":memory:")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, ProviderGemini, cfg.Analysis.Provider)
	assert.Equal(t, 90*time.Second, cfg.Analysis.UpstreamTimeout)
	assert.Equal(t, "g-key", cfg.ProviderAPIKey())
	assert.Equal(t, "sqlite", cfg.GenerationLog.Driver)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	_, err := Load()

	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{Analysis: AnalysisConfig{Provider: ProviderOpenAI}}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid openai", mutate: func(c *Config) {}},
		{name: "valid gemini", mutate: func(c *Config) { c.Analysis.Provider = ProviderGemini }},
		{name: "unknown provider", mutate: func(c *Config) { c.Analysis.Provider = "anthropic" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.Analysis.UpstreamTimeout = -time.Second }, wantErr: true},
		{name: "dsn without driver", mutate: func(c *Config) { c.GenerationLog.DSN = "x" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)

			err := c.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadReport(t *testing.T) {
	t.Setenv("REPORT_SERVER_URL", "http://analysis.internal:8080")
	t.Setenv("GENERATION_LOG_DRIVER", "postgres")
	t.Setenv("GENERATION_LOG_DSN", "host=db user=app dbname=analysis")
	unsetEnv(t, "REPORT_TIMEOUT", "GENERATION_LOG_CONNECT_TIMEOUT")

	cfg, err := LoadReport()

	require.NoError(t, err)
	assert.Equal(t, "http://analysis.internal:8080", cfg.ServerURL)
	assert.Zero(t, cfg.Timeout)
	assert.Equal(t, "postgres", cfg.GenerationLog.Driver)
	assert.Equal(t, "host=db user=app dbname=analysis", cfg.GenerationLog.DSN)
	assert.Equal(t, 30*time.Second, cfg.GenerationLog.ConnectTimeout)
}
