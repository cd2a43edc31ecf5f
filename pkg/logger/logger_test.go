package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogLevels(t *testing.T) {
	for _, tc := range []struct {
		name          string
		log           func(l *ZapLogger)
		expectedLevel zapcore.Level
	}{
		{name: "debug", log: func(l *ZapLogger) { l.Debug("ABC") }, expectedLevel: zapcore.DebugLevel},
		{name: "info", log: func(l *ZapLogger) { l.Info("ABC") }, expectedLevel: zapcore.InfoLevel},
		{name: "warn", log: func(l *ZapLogger) { l.Warn("ABC") }, expectedLevel: zapcore.WarnLevel},
		{name: "error", log: func(l *ZapLogger) { l.Error("ABC") }, expectedLevel: zapcore.ErrorLevel},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dut, logs := NewObserverLogger("debug")
			tc.log(dut)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			require.Equal(t, "ABC", entry.Message)
			require.Equal(t, tc.expectedLevel, entry.Level)
		})
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger("json", "verbose")
	require.Error(t, err)
}

func TestNewLoggerNoneIsNoop(t *testing.T) {
	l, err := NewLogger("json", "none")
	require.NoError(t, err)
	require.NotNil(t, l)
	l.Info("dropped")
}

func TestWithAddsFields(t *testing.T) {
	dut, logs := NewObserverLogger("info")
	dut.With(zap.String("component", "admin")).Info("started")

	require.Equal(t, 1, logs.Len())
	require.Equal(t, map[string]interface{}{"component": "admin"}, logs.All()[0].ContextMap())
}
