package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("nonsense"))
	assert.Equal(t, "error", Error.String())
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat(" json "))
	assert.Equal(t, FormatText, ParseFormat("console"))
}

func TestZapLogger_WithMergesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core)).With(map[string]any{"request_id": "abc"})

	l.Warn("falha ao enviar", map[string]any{"err": errors.New("boom"), "gato_id": 7, "": "ignored"})

	entries := logs.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, zapcore.WarnLevel, e.Level)
	assert.Equal(t, "falha ao enviar", e.Message)

	ctx := e.ContextMap()
	assert.Equal(t, "abc", ctx["request_id"])
	assert.Equal(t, "boom", ctx["err"])
	assert.EqualValues(t, 7, ctx["gato_id"])
	_, hasEmpty := ctx[""]
	assert.False(t, hasEmpty)
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	l := NewNop()
	l.Info("ok", nil)
	assert.Same(t, l, l.With(nil))
}
