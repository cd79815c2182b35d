// Package inprocess は分析ユースケースを直接呼び出すFetcherを提供します。
package inprocess

import (
	"context"
	"encoding/json"
	"fmt"

	"company_analysis/internal/feature/analysis/domain/entity"
	"company_analysis/internal/feature/report/usecase"
)

// AnalysisUsecase は分析ユースケースのインターフェースです。
type AnalysisUsecase interface {
	AnalyzeCompany(ctx context.Context, companyName string) (*entity.GeneratedAnalysis, error)
}

// Fetcher はサーバー内で分析ユースケースを呼び出します。
type Fetcher struct {
	uc AnalysisUsecase
}

// FetcherがFetcherを実装していることをコンパイル時に検証します。
var _ usecase.Fetcher = (*Fetcher)(nil)

// NewFetcher はFetcherの新しいインスタンスを生成します。
func NewFetcher(uc AnalysisUsecase) *Fetcher {
	return &Fetcher{uc: uc}
}

// FetchAnalysis は分析を生成して返します。
// スキーマに厳密一致しない応答はHTTPクライアントと同じく寛容にデコードします。
func (f *Fetcher) FetchAnalysis(ctx context.Context, companyName string) (*entity.Analysis, error) {
	result, err := f.uc.AnalyzeCompany(ctx, companyName)
	if err != nil {
		return nil, err
	}
	if result.Typed != nil {
		return result.Typed, nil
	}

	var out entity.Analysis
	if err := json.Unmarshal(result.Raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}
	return &out, nil
}
