package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "json info", level: "info", format: "json"},
		{name: "default format", level: "INFO", format: ""},
		{name: "text debug", level: "debug", format: "text"},
		{name: "invalid level", level: "loud", format: "json", wantErr: true},
		{name: "invalid format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, err := New(&bytes.Buffer{}, tt.level, tt.format)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, l)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNew_JSONOutputAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := New(&buf, "warn", "json")
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("visible", "company", "Acme Corp")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "Acme Corp", entry["company"])
}
