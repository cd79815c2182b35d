// Package entity はanalysisフィーチャーのドメインモデルを定義します。
package entity

import "encoding/json"

// Analysis は1社分の事業分析結果を表します（スキーマ v1）。
//
//	{
//	  "swot":        {"strengths": [], "weaknesses": [], "opportunities": [], "threats": []},
//	  "pestle":      {"political": [], "economic": [], "social": [], "technological": [], "legal": [], "environmental": []},
//	  "competitors": [{"name": "", "analysis": ""}],
//	  "pricing":     {"strategy": "", "recommendations": []},
//	  "marketing":   {"channels": [], "tactics": []},
//	  "growth":      {"summary": "", "keyActions": []}
//	}
//
// リストの件数は生成側への目安であり、ここでは強制しません。
type Analysis struct {
	SWOT        SWOT         `json:"swot"`
	PESTLE      PESTLE       `json:"pestle"`
	Competitors []Competitor `json:"competitors"`
	Pricing     Pricing      `json:"pricing"`
	Marketing   Marketing    `json:"marketing"`
	Growth      Growth       `json:"growth"`
}

// SWOT は強み・弱み・機会・脅威の4象限です。
type SWOT struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// PESTLE は6つの外部環境カテゴリです。
type PESTLE struct {
	Political     []string `json:"political"`
	Economic      []string `json:"economic"`
	Social        []string `json:"social"`
	Technological []string `json:"technological"`
	Legal         []string `json:"legal"`
	Environmental []string `json:"environmental"`
}

// PESTLECategory はPESTLEの1カテゴリ（キー名と要因リスト）です。
type PESTLECategory struct {
	Key     string
	Factors []string
}

// Categories はPESTLEの6カテゴリを固定順で返します。
func (p PESTLE) Categories() []PESTLECategory {
	return []PESTLECategory{
		{Key: "political", Factors: p.Political},
		{Key: "economic", Factors: p.Economic},
		{Key: "social", Factors: p.Social},
		{Key: "technological", Factors: p.Technological},
		{Key: "legal", Factors: p.Legal},
		{Key: "environmental", Factors: p.Environmental},
	}
}

// Competitor は競合企業1社の分析です。
type Competitor struct {
	Name     string `json:"name"`
	Analysis string `json:"analysis"`
}

// Pricing は価格戦略と推奨事項です。
type Pricing struct {
	Strategy        string   `json:"strategy"`
	Recommendations []string `json:"recommendations"`
}

// Marketing はマーケティングチャネルと施策です。
type Marketing struct {
	Channels []string `json:"channels"`
	Tactics  []string `json:"tactics"`
}

// Growth は成長計画の要約と主要アクションです。
type Growth struct {
	Summary    string   `json:"summary"`
	KeyActions []string `json:"keyActions"`
}

// GeneratedAnalysis はプロバイダーから得た1回分の生成結果です。
// Raw はプロバイダーが返したJSONそのもので、クライアントへはこれを返します。
// Typed はRawがスキーマ v1 に厳密に一致した場合のみ設定されます。
type GeneratedAnalysis struct {
	CompanyName   string
	PromptVersion string
	Model         string
	Raw           json.RawMessage
	Typed         *Analysis
}
