package entity

// CompletionRequest はチャット補完プロバイダーへの1回分のリクエストです。
type CompletionRequest struct {
	SystemPrompt string  // system ロールの指示
	UserPrompt   string  // user ロールの指示
	Temperature  float64 // サンプリング温度
	JSONOutput   bool    // 出力をJSONに制約するかどうか
}

// Completion はプロバイダーの応答です。
type Completion struct {
	Content          string // 先頭の候補のメッセージ本文
	Model            string // 実際に応答したモデル名
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}
