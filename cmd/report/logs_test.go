package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company_analysis/internal/app/di"
	"company_analysis/internal/config"
	"company_analysis/internal/feature/analysis/domain/entity"
)

// seedGenerationLog はファイルSQLiteにリクエスト記録を書き込み、その設定を返します。
func seedGenerationLog(t *testing.T, logs ...*entity.GenerationLog) config.GenerationLogConfig {
	t.Helper()

	cfg := config.GenerationLogConfig{
		Driver:         "sqlite",
		DSN:            filepath.Join(t.TempDir(), "generation_log.db"),
		ConnectTimeout: time.Second,
	}
	repo, gdb, err := di.OpenGenerationLog(cfg)
	require.NoError(t, err)
	for _, l := range logs {
		require.NoError(t, repo.Record(context.Background(), l))
	}
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	return cfg
}

func TestLogsCmd(t *testing.T) {
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	cfg := seedGenerationLog(t,
		&entity.GenerationLog{RequestedAt: base, CompanyName: "Amazon", Provider: "openai", Model: "gpt-4o-mini",
			PromptVersion: "v1", Outcome: entity.OutcomeSuccess, TotalTokens: 1500, LatencyMillis: 4200},
		&entity.GenerationLog{RequestedAt: base.Add(time.Minute), CompanyName: "Zomato", Provider: "openai",
			PromptVersion: "v1", Outcome: entity.OutcomeGenerationError, ErrorMessage: "provider openai: timeout"},
		&entity.GenerationLog{RequestedAt: base.Add(2 * time.Minute), CompanyName: "Flipkart", Provider: "openai",
			PromptVersion: "v1", Outcome: entity.OutcomeSuccess},
	)

	tests := []struct {
		name        string
		args        []string
		contains    []string
		notContains []string
		order       []string
	}{
		{
			name:     "default limit shows all entries newest first",
			args:     []string{"logs"},
			contains: []string{"COMPANY", "success", "generation_error", "provider openai: timeout", "4.2s"},
			order:    []string{"Flipkart", "Zomato", "Amazon"},
		},
		{
			name:        "limit",
			args:        []string{"logs", "--limit", "1"},
			contains:    []string{"Flipkart"},
			notContains: []string{"Zomato", "Amazon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := newRootCmd(&config.ReportConfig{GenerationLog: cfg}, &out)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()

			require.NoError(t, err)
			got := out.String()
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
			for i := 1; i < len(tt.order); i++ {
				assert.Less(t, strings.Index(got, tt.order[i-1]), strings.Index(got, tt.order[i]))
			}
		})
	}
}

func TestLogsCmd_Disabled(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&config.ReportConfig{}, &out)
	cmd.SetArgs([]string{"logs"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, di.ErrGenerationLogDisabled)
}
