package logger_test

import (
	"context"
	"fortune/pkg/logger"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantDebug   bool
	}{
		{name: "development", environment: logger.DevelopmentEnvironment, wantDebug: true},
		{name: "production", environment: logger.ProductionEnvironment, wantDebug: false},
		{name: "unknown falls back to development", environment: "staging", wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment)
			})

			ctx := context.Background()
			require.NotNil(t, logger.Get(ctx))
			require.Equal(t, tt.wantDebug, logger.Get(ctx).Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestGet_PrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	custom := zap.NewNop()
	ctx := logger.WithLogger(context.Background(), custom)

	require.Same(t, custom, logger.Get(ctx))
	require.NotSame(t, custom, logger.Get(context.Background()))
}

func TestWithFields_AddsFieldsToEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("category", "riddles"))
	logger.Info(ctx, "fortune served")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "fortune served", entries[0].Message)
	require.Equal(t, "riddles", entries[0].ContextMap()["category"])
}

func TestLevelHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "d")
	logger.Info(ctx, "i")
	logger.Warn(ctx, "w")
	logger.Error(ctx, "e")

	levels := make([]zapcore.Level, 0, logs.Len())
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{
		zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel,
	}, levels)
}

func TestStdLog_RoutesToContextLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	std := logger.StdLog(ctx, slog.LevelError)
	std.Print("http: superfluous response.WriteHeader call")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "http: superfluous response.WriteHeader call", entries[0].Message)
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}
