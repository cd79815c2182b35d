// Package handler はレポート画面のHTTPハンドラーを提供します。
package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"company_analysis/internal/feature/report/usecase"
	"company_analysis/internal/feature/report/view"
)

const (
	pageTitle        = "AI Business Decision Support Tool"
	inputPlaceholder = "Enter company name (e.g., Amazon, Flipkart, Zomato)"
	indexTemplate    = "index.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates はレポート画面のHTMLテンプレートを返します。gin.Engine.SetHTMLTemplate に渡します。
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// page はテンプレートに渡す表示データです。
type page struct {
	Title       string
	Placeholder string
	Company     string
	Loading     bool
	Error       string
	Sections    []view.Section
}

// ReportHandler はレポート画面を表示します。
type ReportHandler struct {
	fetcher usecase.Fetcher
}

// NewReportHandler はReportHandlerの新しいインスタンスを生成します。
func NewReportHandler(fetcher usecase.Fetcher) *ReportHandler {
	return &ReportHandler{fetcher: fetcher}
}

// Index は空の入力フォームを表示します。
//
// エンドポイント: GET /
func (h *ReportHandler) Index(c *gin.Context) {
	h.render(c, usecase.State{})
}

// Submit はフォームの企業名で分析を取得し、結果またはエラーを表示します。
//
// エンドポイント: POST /
// Content-Type: application/x-www-form-urlencoded
// フィールド: company
func (h *ReportHandler) Submit(c *gin.Context) {
	s := usecase.NewSession(h.fetcher)
	s.SetCompany(c.PostForm("company"))
	s.Submit(c.Request.Context())
	h.render(c, s.State())
}

func (h *ReportHandler) render(c *gin.Context, st usecase.State) {
	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, indexTemplate, page{
		Title:       pageTitle,
		Placeholder: inputPlaceholder,
		Company:     st.Company,
		Loading:     st.Loading,
		Error:       st.Error,
		Sections:    view.BuildSections(st.Result),
	})
}
