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
	for _, tt := range []struct {
		name  string
		json  bool
		debug bool
	}{
		{name: "console info", json: false, debug: false},
		{name: "json debug", json: true, debug: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.json, tt.debug)
			require.NoError(t, err)
			assert.Equal(t, tt.debug, l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestComponent(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	Component(zap.New(core), "  matcher ").Info("ranked")
	Component(zap.New(core), "").Info("untagged")

	entries := observed.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "matcher", entries[0].ContextMap()[FieldComponent])
	assert.NotContains(t, entries[1].ContextMap(), FieldComponent)

	assert.NotNil(t, Component(nil, "x"))
}

func TestCommonFields(t *testing.T) {
	fields := CommonFields("  vertexai ", "gemini-2.5-flash")
	require.Len(t, fields, 2)
	assert.Equal(t, FieldProvider, fields[0].Key)
	assert.Equal(t, "vertexai", fields[0].String)
	assert.Equal(t, "gemini-2.5-flash", fields[1].String)

	assert.Empty(t, CommonFields("", " "))
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "abc", TruncateForLog("  abc  ", 5))
	assert.Equal(t, "ab...", TruncateForLog("abcdef", 2))
	assert.Equal(t, "", TruncateForLog("abc", 0))
	assert.Equal(t, "żó...", TruncateForLog("żółw", 2))
}
