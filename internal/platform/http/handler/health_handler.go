// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"company_analysis/internal/api"
)

// ProviderStatus は分析プロバイダーの設定状況です。
type ProviderStatus struct {
	Name       string
	Configured bool
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを返します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
// プロバイダー未設定でもサービス自体は稼働中として200を返します。
func Health(status ProviderStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, api.HealthResponse{
				Status:             "ok",
				Provider:           status.Name,
				ProviderConfigured: status.Configured,
			})
		}
	}
}
