package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "production", ""} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		assert.NotNil(t, l.SugaredLogger)
	}
}

func TestLogger_WithAddsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "dispatch").Info("advanced", "order_id", int64(3))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "advanced", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "dispatch", fields["component"])
	assert.Equal(t, int64(3), fields["order_id"])
}

func TestLogger_FatalWritesBeforeExit(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	//os.Exitの代わりにpanicさせる
	l := &Logger{SugaredLogger: zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic)).Sugar()}

	assert.Panics(t, func() { l.Fatal("server stopped", "error", "bind failed") })

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.FatalLevel, entries[0].Level)
	assert.Equal(t, "bind failed", entries[0].ContextMap()["error"])
}
