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
	for _, tc := range []struct {
		name  string
		json  bool
		debug bool
	}{
		{"console info", false, false},
		{"json debug", true, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(tc.json, tc.debug)
			require.NoError(t, err)
			assert.Equal(t, tc.debug, l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{"returns empty when limit non-positive", "hello world", 0, ""},
		{"shorter than limit", "hello", 10, "hello"},
		{"truncates and adds ellipsis", "hello world", 5, "hello..."},
		{"trims surrounding whitespace", "  spaced  ", 5, "space..."},
		{"counts runes", "héllo wörld", 4, "héll..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, TruncateForLog(tt.input, tt.limit))
		})
	}
}

func TestStringFields_SkipsEmpty(t *testing.T) {
	fields := StringFields(
		StringField{Key: "a", Value: " x "},
		StringField{Key: "", Value: "y"},
		StringField{Key: "b", Value: "  "},
	)
	require.Len(t, fields, 1)
	assert.Equal(t, zap.String("a", "x"), fields[0])
}

func TestWithFields(t *testing.T) {
	assert.NotNil(t, WithFields(nil))

	core, logs := observer.New(zapcore.InfoLevel)
	l := WithFields(zap.New(core), ScreeningFields("match", "Jane", "")...)
	l.Info("scored")

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "match", ctx[FieldOperation])
	assert.Equal(t, "Jane", ctx[FieldCandidate])
	_, hasHash := ctx[FieldJobHash]
	assert.False(t, hasHash)
}
