package usecase

import (
	"fmt"
	"strings"
)

const (
	// PromptVersion はプロンプトとスキーマ（entity.Analysis）の組のバージョンです。
	// どちらかを変更したら必ず上げること。
	PromptVersion = "v1"

	// Temperature はサンプリング温度です。同じ企業でも実行ごとに内容が変わります。
	Temperature = 0.7

	// SystemPrompt はsystemロールの指示です。
	SystemPrompt = "You are a business strategy expert. Always respond with valid JSON only, no markdown formatting."

	// AnalysisPromptTemplate は企業分析のプロンプトテンプレートです。%[1]s に企業名が入ります。
	AnalysisPromptTemplate = `You are a business strategy consultant. Generate a comprehensive business analysis for %[1]s. Provide detailed, realistic, and actionable insights.

Return a JSON object with the following structure (no markdown, just pure JSON):

{
  "swot": {
    "strengths": [4-5 specific strengths],
    "weaknesses": [4-5 specific weaknesses],
    "opportunities": [4-5 specific opportunities],
    "threats": [4-5 specific threats]
  },
  "pestle": {
    "political": [3-4 factors],
    "economic": [3-4 factors],
    "social": [3-4 factors],
    "technological": [3-4 factors],
    "legal": [3-4 factors],
    "environmental": [3-4 factors]
  },
  "competitors": [
    {
      "name": "Competitor Name",
      "analysis": "Brief competitive analysis"
    }
  ] (3-4 competitors),
  "pricing": {
    "strategy": "Overall pricing strategy description",
    "recommendations": [4-5 specific pricing recommendations]
  },
  "marketing": {
    "channels": [5-6 marketing channels],
    "tactics": [5-6 specific marketing tactics]
  },
  "growth": {
    "summary": "Overall growth plan summary (2-3 sentences)",
    "keyActions": [5-6 key action items for growth]
  }
}

Ensure all content is specific to %[1]s and based on current market realities.`
)

// BuildAnalysisPrompt は企業名を埋め込んだuserロールの指示を返します。
func BuildAnalysisPrompt(companyName string) string {
	return fmt.Sprintf(AnalysisPromptTemplate, companyName)
}

// cleanJSONResponse はモデルが付けがちなMarkdownのコードフェンスと前後の空白を取り除きます。
// 空の応答は空オブジェクトとして扱います。
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}
	if content == "" {
		return "{}"
	}
	return content
}
