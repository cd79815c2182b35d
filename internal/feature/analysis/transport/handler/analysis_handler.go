// Package handler はanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"company_analysis/internal/api"
	"company_analysis/internal/feature/analysis/domain"
	"company_analysis/internal/feature/analysis/domain/entity"
	"company_analysis/internal/platform/http/middleware"
)

const (
	msgCompanyNameRequired   = "Company name is required"
	msgProviderNotConfigured = "OpenAI API key not configured"
	msgGenerationFailed      = "Failed to generate analysis"
)

// AnalysisUsecase は企業分析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalysisUsecase interface {
	AnalyzeCompany(ctx context.Context, companyName string) (*entity.GeneratedAnalysis, error)
}

// AnalysisHandler は企業分析のHTTPリクエストを処理します。
type AnalysisHandler struct {
	uc AnalysisUsecase
}

// NewAnalysisHandler はAnalysisHandlerの新しいインスタンスを生成します。
func NewAnalysisHandler(uc AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Analyze は企業名から事業分析を生成し、プロバイダーのJSONをそのまま返します。
//
// エンドポイント: POST /api/analyze
// Content-Type: application/json
// ボディ: {"company": "<企業名>"}
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req api.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("analyze request binding failed",
			"error", err, "remote_addr", c.ClientIP(), "request_id", c.GetString(middleware.ContextRequestID))
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgCompanyNameRequired})
		return
	}
	if strings.TrimSpace(req.Company) == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgCompanyNameRequired})
		return
	}

	result, err := h.uc.AnalyzeCompany(c.Request.Context(), req.Company)
	if err != nil {
		h.handleError(c, req.Company, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", result.Raw)
}

func (h *AnalysisHandler) handleError(c *gin.Context, company string, err error) {
	requestID := c.GetString(middleware.ContextRequestID)
	switch {
	case errors.Is(err, domain.ErrCompanyNameRequired):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgCompanyNameRequired})
	case errors.Is(err, domain.ErrProviderNotConfigured):
		slog.Error("analysis provider is not configured", "company", company, "request_id", requestID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: msgProviderNotConfigured})
	default:
		slog.Error("analysis generation failed", "error", err, "company", company, "request_id", requestID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: msgGenerationFailed})
	}
}
