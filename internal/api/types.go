// Package api はHTTPハンドラーとクライアントで共有するリクエスト/レスポンスDTOを定義します。
package api

// AnalyzeRequest は企業分析リクエストのボディです。
type AnalyzeRequest struct {
	Company string `json:"company"`
}

// ErrorResponse はすべてのエラーレスポンスで使用するJSONエンベロープです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse は /healthz のレスポンスです。
type HealthResponse struct {
	Status             string `json:"status"`
	Provider           string `json:"provider"`
	ProviderConfigured bool   `json:"provider_configured"`
}
