package fortune_test

import (
	"context"
	"fortune/internal/fortune"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// writeProgram installs a shell script standing in for the fortune binary.
func writeProgram(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fortune")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700)) //nolint: gosec

	return path
}

func TestProgram_Run_PassesAllFlagAndCategory(t *testing.T) {
	p := fortune.NewProgram(fortune.ProgramOptions{Path: writeProgram(t, `printf '%s|' "$@"`)})

	out, err := p.Run(context.Background(), "riddles")
	require.NoError(t, err)
	require.Equal(t, "-a|riddles|", out)
}

func TestProgram_Run_EmptyCategoryUsesDefault(t *testing.T) {
	p := fortune.NewProgram(fortune.ProgramOptions{Path: writeProgram(t, `printf '%s|' "$@"`)})

	out, err := p.Run(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "-a|", out)
}

func TestProgram_Run_OutputVerbatim(t *testing.T) {
	p := fortune.NewProgram(fortune.ProgramOptions{
		Path: writeProgram(t, `printf 'Fortune favors the bold.\n\t-- Virgil\n\n'`),
	})

	out, err := p.Run(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "Fortune favors the bold.\n\t-- Virgil\n\n", out)
}

func TestProgram_Run_NonZeroExit(t *testing.T) {
	p := fortune.NewProgram(fortune.ProgramOptions{
		Path: writeProgram(t, `echo "No fortunes found" >&2; exit 1`),
	})

	_, err := p.Run(context.Background(), "doesnotexist")
	require.ErrorIs(t, err, fortune.ErrExecutionFailed)
	require.Contains(t, err.Error(), "No fortunes found")
}

func TestProgram_Run_MissingProgram(t *testing.T) {
	p := fortune.NewProgram(fortune.ProgramOptions{Path: filepath.Join(t.TempDir(), "no-such-fortune")})

	_, err := p.Run(context.Background(), "")
	require.ErrorIs(t, err, fortune.ErrExecutionFailed)
}

func TestProgram_Run_InvalidUTF8(t *testing.T) {
	p := fortune.NewProgram(fortune.ProgramOptions{Path: writeProgram(t, `printf '\377\376'`)})

	_, err := p.Run(context.Background(), "")
	require.ErrorIs(t, err, fortune.ErrDecodeFailed)
	require.NotErrorIs(t, err, fortune.ErrExecutionFailed)
}

func TestProgram_Run_Timeout(t *testing.T) {
	p := fortune.NewProgram(fortune.ProgramOptions{
		Path:    writeProgram(t, `exec sleep 5`),
		Timeout: 100 * time.Millisecond,
	})

	start := time.Now()
	_, err := p.Run(context.Background(), "")
	require.ErrorIs(t, err, fortune.ErrExecutionFailed)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), 3*time.Second)
}

func TestProgram_Run_CanceledContext(t *testing.T) {
	p := fortune.NewProgram(fortune.ProgramOptions{Path: writeProgram(t, `echo never`)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Run(ctx, "")
	require.ErrorIs(t, err, fortune.ErrExecutionFailed)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewProgram_DefaultPath(t *testing.T) {
	p := fortune.NewProgram(fortune.ProgramOptions{})
	require.Equal(t, "fortune -a", p.String())
}

func TestProgram_Run_RecordsSpan(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		category string
		status   codes.Code
	}{
		{name: "success", body: `echo ok`, category: "riddles", status: codes.Unset},
		{name: "non-zero exit", body: `exit 1`, category: "wisdom", status: codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
			t.Cleanup(func() {
				_ = tp.Shutdown(context.Background())
			})

			p := fortune.NewProgram(fortune.ProgramOptions{
				Path:           writeProgram(t, tt.body),
				TracerProvider: tp,
			})
			_, _ = p.Run(context.Background(), tt.category)

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			require.Equal(t, "fortune.Run", spans[0].Name())
			require.Contains(t, spans[0].Attributes(), attribute.String("fortune.category", tt.category))
			require.Equal(t, tt.status, spans[0].Status().Code)
		})
	}
}
