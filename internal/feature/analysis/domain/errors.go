// Package domain はanalysisフィーチャーのドメインエラーを定義します。
package domain

import "errors"

// 分析リクエストのエラー分類です。いずれも終端エラーで、サーバー側で再試行はしません。
var (
	// ErrCompanyNameRequired は企業名が未指定または空白のみの場合に返されます（利用者の誤り）。
	ErrCompanyNameRequired = errors.New("company name is required")

	// ErrProviderNotConfigured は補完プロバイダーの認証情報が設定されていない場合に返されます（運用上の問題）。
	ErrProviderNotConfigured = errors.New("completion provider is not configured")

	// ErrGenerationFailed はプロバイダー呼び出しの失敗、または応答がJSONとして解釈できない場合に返されます。
	ErrGenerationFailed = errors.New("analysis generation failed")
)
