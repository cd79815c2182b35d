// Package logger はslogのデフォルトロガーを設定します。
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// New は指定したレベルと形式（json|text）のロガーを生成します。
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lv}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// Setup はロガーを生成してslogのデフォルトに設定します。
func Setup(w io.Writer, level, format string) error {
	l, err := New(w, level, format)
	if err != nil {
		return err
	}
	slog.SetDefault(l)
	return nil
}
