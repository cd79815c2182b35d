// Package httpapi はHTTP経由で分析APIを呼び出すFetcherを提供します。
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"company_analysis/internal/api"
	"company_analysis/internal/feature/analysis/domain/entity"
	"company_analysis/internal/feature/report/usecase"
)

const analyzePath = "/api/analyze"

// ErrUnexpectedStatus はAPIが2xx以外を返したことを表します。
var ErrUnexpectedStatus = errors.New("unexpected status from analysis API")

// Client は分析APIのHTTPクライアントです。
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientがFetcherを実装していることをコンパイル時に検証します。
var _ usecase.Fetcher = (*Client)(nil)

// NewClient はClientの新しいインスタンスを生成します。
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// FetchAnalysis は {"company": ...} をPOSTし、レスポンスを分析結果としてデコードします。
// 欠けているフィールドは空のまま扱います。
func (c *Client) FetchAnalysis(ctx context.Context, companyName string) (*entity.Analysis, error) {
	body, err := json.Marshal(api.AnalyzeRequest{Company: companyName})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analysis API request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr api.ErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var out entity.Analysis
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}
	return &out, nil
}
