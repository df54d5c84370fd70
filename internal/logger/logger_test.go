package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, mode := range []string{"development", "production", "PROD", ""} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, l.SugaredLogger)
	}
}

func TestLogger_KeyValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("request_id", "abc")

	l.Info("request handled", "status", 200)
	l.Warn("slow request", "duration_ms", 1500)
	l.Debug("detail")
	l.Error("failed", "error", "boom")

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, "request handled", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "abc", fields["request_id"])
	assert.EqualValues(t, 200, fields["status"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "boom", entries[3].ContextMap()["error"])
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("ignored", "k", "v")
	l.Sync()
}

func TestNew_DebugLevelByMode(t *testing.T) {
	tests := []struct {
		mode      string
		wantDebug bool
	}{
		{mode: "development", wantDebug: true},
		{mode: "production", wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			l, err := New(tt.mode)
			require.NoError(t, err)
			core := l.SugaredLogger.Desugar().Core()
			assert.Equal(t, tt.wantDebug, core.Enabled(zapcore.DebugLevel))
			assert.True(t, core.Enabled(zapcore.InfoLevel))
		})
	}
}
