// Package view は分析結果を表示用のセクションに変換します。
package view

import (
	"strconv"
	"strings"

	"company_analysis/internal/feature/analysis/domain/entity"
)

// 項目の先頭に付けるマーカーです。
const (
	MarkerCheck   = "✓"
	MarkerCross   = "✗"
	MarkerArrow   = "→"
	MarkerWarning = "⚠"
	MarkerBullet  = "•"
)

// Item はマーカー付きの1行です。
type Item struct {
	Marker string
	Text   string
}

// Group は見出しと本文、項目リストのまとまりです。
type Group struct {
	Heading string
	Text    string
	Items   []Item
}

// Section は画面上の1ブロックです。
type Section struct {
	Title  string
	Groups []Group
}

// BuildSections は分析結果を固定順のセクションに変換します。
// resultがnilの場合は空です。欠けたリストは空のグループになります。
func BuildSections(result *entity.Analysis) []Section {
	if result == nil {
		return nil
	}
	return []Section{
		swotSection(result.SWOT),
		pestleSection(result.PESTLE),
		competitorSection(result.Competitors),
		{
			Title: "Pricing Strategy",
			Groups: []Group{
				{Heading: "Strategy", Text: result.Pricing.Strategy},
				{Heading: "Recommendations", Items: marked(MarkerBullet, result.Pricing.Recommendations)},
			},
		},
		{
			Title: "Marketing Strategy",
			Groups: []Group{
				{Heading: "Channels", Items: marked(MarkerBullet, result.Marketing.Channels)},
				{Heading: "Tactics", Items: marked(MarkerBullet, result.Marketing.Tactics)},
			},
		},
		{
			Title: "Growth Plan Summary",
			Groups: []Group{
				{Text: result.Growth.Summary},
				{Heading: "Key Actions", Items: numbered(result.Growth.KeyActions)},
			},
		},
	}
}

func swotSection(s entity.SWOT) Section {
	return Section{
		Title: "SWOT Analysis",
		Groups: []Group{
			{Heading: "Strengths", Items: marked(MarkerCheck, s.Strengths)},
			{Heading: "Weaknesses", Items: marked(MarkerCross, s.Weaknesses)},
			{Heading: "Opportunities", Items: marked(MarkerArrow, s.Opportunities)},
			{Heading: "Threats", Items: marked(MarkerWarning, s.Threats)},
		},
	}
}

func pestleSection(p entity.PESTLE) Section {
	categories := p.Categories()
	groups := make([]Group, 0, len(categories))
	for _, c := range categories {
		groups = append(groups, Group{Heading: capitalize(c.Key), Items: marked(MarkerBullet, c.Factors)})
	}
	return Section{Title: "PESTLE Analysis", Groups: groups}
}

func competitorSection(competitors []entity.Competitor) Section {
	groups := make([]Group, 0, len(competitors))
	for _, c := range competitors {
		groups = append(groups, Group{Heading: c.Name, Text: c.Analysis})
	}
	return Section{Title: "Competitor Analysis", Groups: groups}
}

func marked(marker string, texts []string) []Item {
	items := make([]Item, 0, len(texts))
	for _, t := range texts {
		items = append(items, Item{Marker: marker, Text: t})
	}
	return items
}

func numbered(texts []string) []Item {
	items := make([]Item, 0, len(texts))
	for i, t := range texts {
		items = append(items, Item{Marker: strconv.Itoa(i+1) + ".", Text: t})
	}
	return items
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
