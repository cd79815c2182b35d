// Package middleware はアプリケーション共通のginミドルウェアを提供します。
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID はリクエストIDを受け渡すヘッダーです。
	HeaderRequestID = "X-Request-ID"
	// ContextRequestID はgin.ContextにリクエストIDを保存するキーです。
	ContextRequestID = "requestID"
)

// RequestLogger はリクエストIDを付与し、完了時にアクセスログを出力するミドルウェアを返します。
// クライアントがX-Request-IDを送った場合はその値を引き継ぎます。
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// 1. リクエストIDを決定
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestID, requestID)
		c.Header(HeaderRequestID, requestID)

		// 2. 後続のハンドラーを実行
		c.Next()

		// 3. アクセスログ
		status := c.Writer.Status()
		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.ClientIP(),
		}
		switch {
		case status >= 500:
			slog.Error("request completed", attrs...)
		case status >= 400:
			slog.Warn("request completed", attrs...)
		default:
			slog.Info("request completed", attrs...)
		}
	}
}
