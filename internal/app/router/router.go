// Package router はHTTPルーティングを定義します。
package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	analysishandler "company_analysis/internal/feature/analysis/transport/handler"
	reporthandler "company_analysis/internal/feature/report/transport/handler"
	platformhandler "company_analysis/internal/platform/http/handler"
	"company_analysis/internal/platform/http/middleware"
)

// Options はルーター生成時の設定です。
type Options struct {
	AllowedOrigins []string
	Provider       platformhandler.ProviderStatus
}

// NewRouter はすべてのルートを登録したgin.Engineを返します。
func NewRouter(opts Options, analysis *analysishandler.AnalysisHandler, report *reporthandler.ReportHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	if c, ok := corsConfig(opts.AllowedOrigins); ok {
		r.Use(cors.New(c))
	}
	r.SetHTMLTemplate(reporthandler.Templates())

	// 導通確認用
	health := platformhandler.Health(opts.Provider)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	// 分析API
	api := r.Group("/api")
	{
		api.POST("/analyze", analysis.Analyze)
		api.POST("/v1/analyze", analysis.Analyze)
	}

	// レポート画面
	r.GET("/", report.Index)
	r.POST("/", report.Submit)

	return r
}

// corsConfig は許可オリジンからCORS設定を作ります。空の場合はCORSを無効にします。
func corsConfig(origins []string) (cors.Config, bool) {
	if len(origins) == 0 {
		return cors.Config{}, false
	}
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c, true
}
