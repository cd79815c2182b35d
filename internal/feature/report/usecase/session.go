// Package usecase はレポートクライアントの画面状態を管理します。
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"company_analysis/internal/feature/analysis/domain/entity"
)

const (
	// MsgCompanyNameRequired は企業名が空のまま送信されたときのメッセージです。
	MsgCompanyNameRequired = "Please enter a company name"
	// MsgGenerationFailed は分析の取得に失敗したときのメッセージです。
	MsgGenerationFailed = "Failed to generate analysis. Please try again."
)

// Phase はセッションの表示状態です。
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseResult  Phase = "result"
	PhaseError   Phase = "error"
)

// Fetcher は企業分析を取得するインターフェースです。
// HTTP経由とプロセス内呼び出しの2つの実装があります。
type Fetcher interface {
	FetchAnalysis(ctx context.Context, companyName string) (*entity.Analysis, error)
}

// State はセッション状態のスナップショットです。
type State struct {
	Company string
	Loading bool
	Result  *entity.Analysis
	Error   string
}

// Session は1画面分の入力と結果を保持します。
type Session struct {
	fetcher Fetcher

	mu      sync.Mutex
	company string
	loading bool
	result  *entity.Analysis
	errMsg  string
}

// NewSession はSessionの新しいインスタンスを生成します。
func NewSession(fetcher Fetcher) *Session {
	return &Session{fetcher: fetcher}
}

// SetCompany は入力欄の値を更新します。
func (s *Session) SetCompany(company string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.company = company
}

// Submit は入力中の企業名で分析を取得します。
// 取得中の再送信は無視します。戻り値はリクエストを発行したかどうかです。
func (s *Session) Submit(ctx context.Context) bool {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return false
	}
	company := strings.TrimSpace(s.company)
	if company == "" {
		s.errMsg = MsgCompanyNameRequired
		s.mu.Unlock()
		return false
	}
	s.errMsg = ""
	s.result = nil
	s.loading = true
	s.mu.Unlock()

	result, err := s.fetcher.FetchAnalysis(ctx, company)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		slog.Error("failed to fetch analysis", "error", err, "company", company)
		s.errMsg = MsgGenerationFailed
		return true
	}
	s.result = result
	return true
}

// State は現在の状態のスナップショットを返します。
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Company: s.company,
		Loading: s.loading,
		Result:  s.result,
		Error:   s.errMsg,
	}
}

// Phase は現在の表示状態を返します。
func (s *Session) Phase() Phase {
	st := s.State()
	switch {
	case st.Loading:
		return PhaseLoading
	case st.Error != "":
		return PhaseError
	case st.Result != nil:
		return PhaseResult
	default:
		return PhaseIdle
	}
}
