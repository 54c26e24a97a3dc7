package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"javasmells/src/config"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"warn", "warn"},
		{"error", "error"},
		{"bogus", "info"},
		{"", "info"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l := NewLogger(config.LoggingConfig{Level: tt.in})
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNewLogger_WritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := NewLogger(config.LoggingConfig{Level: "debug", File: path, MaxSizeMB: 1})

	l.Info("submitted %d lines", 42)
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"submitted 42 lines"`)
	assert.Contains(t, string(data), `"level":"INFO"`)
}

func TestSetLogger_RoutesPackageHelpers(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	restore := SetLogger(FromZap(zap.New(core)))
	defer restore()

	Debug("d %s", "one")
	Info("i")
	Warn("w")
	Error("e %d", 2)

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "d one", entries[0].Message)
	assert.Equal(t, "e 2", entries[3].Message)
	assert.Equal(t, zap.ErrorLevel, entries[3].Level)
}

func TestWith_AddsFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := FromZap(zap.New(core)).With("request_id", "abc")

	l.Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()["request_id"])
}
