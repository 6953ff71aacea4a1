package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"alex@example.com", "a***@example.com"},
		{"", ""},
		{"no-at-sign", "[REDACTED]"},
		{"@example.com", "[REDACTED]"},
		{"élodie@example.fr", "é***@example.fr"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskEmail(tt.in), tt.in)
	}
}

func TestSanitizeKVs(t *testing.T) {
	got := sanitizeKVs([]interface{}{
		"email", "alex@example.com",
		"api_token", "abc",
		"page", 2,
		"dangling",
	})
	assert.Equal(t, []interface{}{
		"email", "a***@example.com",
		"api_token", "[REDACTED]",
		"page", 2,
		"dangling",
	}, got)
}

func TestLoggerRedactsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("user_email", "sam@crag.io").Info("submitted", "page", 5)

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "s***@crag.io", ctx["user_email"])
	assert.EqualValues(t, 5, ctx["page"])
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Info("ignored", "email", "x@y.z")
	l.Sync()
}
