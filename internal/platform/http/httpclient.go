// Package http は外部API呼び出し用のHTTPクライアントを提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

const (
	dialTimeout         = 5 * time.Second
	keepAlive           = 30 * time.Second
	maxIdleConns        = 20
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 90 * time.Second
	tlsHandshakeTimeout = 5 * time.Second
)

// NewHTTPClient は分析プロバイダーやレポートAPIの呼び出しに使うHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTP_PROXYなど）を使用
//   - Dialer.Timeout: TCP接続タイムアウト（5秒）
//   - Dialer.KeepAlive: TCPキープアライブの間隔（30秒）
//   - ForceAttemptHTTP2: カスタムDialerでもHTTP/2を試みる
//   - MaxIdleConns / MaxIdleConnsPerHost: 全体とホスト単位のアイドル接続上限（20 / 10）
//   - IdleConnTimeout: アイドル接続を閉じるまでの時間（90秒）
//   - TLSHandshakeTimeout: HTTPSハンドシェイクの最大時間（5秒）
//   - Client.Timeout: リクエスト全体のタイムアウト。0の場合は無制限
//
// 分析の生成は数十秒かかることがあるため、全体タイムアウトは呼び出し元が決めます。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: keepAlive,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: tlsHandshakeTimeout,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
