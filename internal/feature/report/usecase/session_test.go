package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company_analysis/internal/feature/analysis/domain/entity"
	"company_analysis/internal/feature/report/usecase"
)

// mockFetcher はFetcherインターフェースのモック実装です。
type mockFetcher struct {
	FetchAnalysisFunc func(ctx context.Context, companyName string) (*entity.Analysis, error)

	mu       sync.Mutex
	calls    int
	lastName string
}

func (m *mockFetcher) FetchAnalysis(ctx context.Context, companyName string) (*entity.Analysis, error) {
	m.mu.Lock()
	m.calls++
	m.lastName = companyName
	m.mu.Unlock()
	return m.FetchAnalysisFunc(ctx, companyName)
}

func sampleAnalysis() *entity.Analysis {
	return &entity.Analysis{
		SWOT: entity.SWOT{
			Strengths:     []string{"a", "b", "c", "d"},
			Weaknesses:    []string{"w1"},
			Opportunities: []string{"o1"},
			Threats:       []string{"t1"},
		},
	}
}

func TestSession_InitialPhase(t *testing.T) {
	t.Parallel()

	s := usecase.NewSession(&mockFetcher{})

	assert.Equal(t, usecase.PhaseIdle, s.Phase())
	assert.Equal(t, usecase.State{}, s.State())
}

func TestSession_Submit_EmptyCompany(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   "} {
		fetcher := &mockFetcher{}
		s := usecase.NewSession(fetcher)
		s.SetCompany(input)

		issued := s.Submit(context.Background())

		assert.False(t, issued)
		assert.Zero(t, fetcher.calls, "no request must be issued for blank input")
		assert.Equal(t, usecase.MsgCompanyNameRequired, s.State().Error)
		assert.Equal(t, usecase.PhaseError, s.Phase())
	}
}

func TestSession_Submit_Success(t *testing.T) {
	t.Parallel()

	fetcher := &mockFetcher{
		FetchAnalysisFunc: func(ctx context.Context, companyName string) (*entity.Analysis, error) {
			return sampleAnalysis(), nil
		},
	}
	s := usecase.NewSession(fetcher)
	s.SetCompany("  Acme Corp ")

	issued := s.Submit(context.Background())

	require.True(t, issued)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, "Acme Corp", fetcher.lastName)
	st := s.State()
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
	require.NotNil(t, st.Result)
	assert.Equal(t, []string{"a", "b", "c", "d"}, st.Result.SWOT.Strengths)
	assert.Equal(t, usecase.PhaseResult, s.Phase())
}

func TestSession_Submit_FetchError(t *testing.T) {
	t.Parallel()

	fetcher := &mockFetcher{
		FetchAnalysisFunc: func(ctx context.Context, companyName string) (*entity.Analysis, error) {
			return nil, errors.New("connection refused")
		},
	}
	s := usecase.NewSession(fetcher)
	s.SetCompany("Acme Corp")

	s.Submit(context.Background())

	st := s.State()
	assert.False(t, st.Loading, "loading must return to false")
	assert.Equal(t, usecase.MsgGenerationFailed, st.Error)
	assert.Nil(t, st.Result)
	assert.Equal(t, usecase.PhaseError, s.Phase())
}

func TestSession_Submit_ClearsPreviousState(t *testing.T) {
	t.Parallel()

	fail := true
	fetcher := &mockFetcher{
		FetchAnalysisFunc: func(ctx context.Context, companyName string) (*entity.Analysis, error) {
			if fail {
				return nil, errors.New("boom")
			}
			return sampleAnalysis(), nil
		},
	}
	s := usecase.NewSession(fetcher)
	s.SetCompany("Acme Corp")
	s.Submit(context.Background())
	require.Equal(t, usecase.PhaseError, s.Phase())

	fail = false
	s.Submit(context.Background())

	assert.Empty(t, s.State().Error)
	assert.Equal(t, usecase.PhaseResult, s.Phase())
}

func TestSession_Submit_IgnoredWhileLoading(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	fetcher := &mockFetcher{
		FetchAnalysisFunc: func(ctx context.Context, companyName string) (*entity.Analysis, error) {
			close(started)
			<-release
			return sampleAnalysis(), nil
		},
	}
	s := usecase.NewSession(fetcher)
	s.SetCompany("Acme Corp")

	done := make(chan bool)
	go func() { done <- s.Submit(context.Background()) }()
	<-started

	assert.Equal(t, usecase.PhaseLoading, s.Phase())
	assert.True(t, s.State().Loading)
	assert.False(t, s.Submit(context.Background()), "second submit must be ignored while loading")

	close(release)
	assert.True(t, <-done)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, usecase.PhaseResult, s.Phase())
}
