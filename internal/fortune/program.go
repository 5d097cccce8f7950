package fortune

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"fortune/pkg/metrics"
	"fortune/pkg/serrors"
	"os/exec"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultProgram is the fortune executable looked up in PATH.
	DefaultProgram = "fortune"

	// allFlag makes fortune consider offensive fortunes as well.
	allFlag = "-a"

	// waitDelay bounds how long Run waits for output pipes after the process
	// is killed, in case a grandchild still holds them open.
	waitDelay = time.Second
)

var (
	// ErrExecutionFailed indicates the fortune program could not start, exited
	// with a non-zero status or was killed by its deadline.
	ErrExecutionFailed = serrors.NewKind("EXECUTION_FAILED")
	// ErrDecodeFailed indicates the program wrote output that is not UTF-8.
	ErrDecodeFailed = serrors.NewKind("DECODE_FAILED")
)

// ProgramOptions configure how the fortune program is run.
type ProgramOptions struct {
	// Path is the executable; DefaultProgram when empty.
	Path string
	// Timeout bounds one run. Zero means the caller's context is the only bound.
	Timeout time.Duration
	// TracerProvider receives a span per run; the global provider when nil.
	TracerProvider trace.TracerProvider
}

// Program runs the external fortune program. It holds no state between runs
// and is safe for concurrent use.
type Program struct {
	options ProgramOptions
	tracer  trace.Tracer
}

// Ensure Program implements Runner.
var _ Runner = (*Program)(nil)

// NewProgram returns a Program configured with options.
func NewProgram(options ProgramOptions) *Program {
	if options.Path == "" {
		options.Path = DefaultProgram
	}
	if options.TracerProvider == nil {
		options.TracerProvider = otel.GetTracerProvider()
	}

	return &Program{options: options, tracer: options.TracerProvider.Tracer("fortune")}
}

// Run invokes `<path> -a [category]` and returns its standard output
// unmodified. An empty category is not passed so the program falls back to
// its default selection. The process is killed when ctx is done or the
// configured timeout elapses.
func (p *Program) Run(ctx context.Context, category string) (out string, err error) {
	ctx, span := p.tracer.Start(ctx, "fortune.Run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("fortune.category", category)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if p.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.options.Timeout)
		defer cancel()
	}

	args := []string{allFlag}
	if category != "" {
		args = append(args, category)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.options.Path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	runErr := cmd.Run()
	metrics.FortuneDuration.Observe(time.Since(start).Seconds())

	if runErr != nil {
		metrics.FortuneInvocations.WithLabelValues(metrics.OutcomeExecutionFailed).Inc()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", serrors.Wrap(ErrExecutionFailed, ctxErr, "fortune did not finish")
		}

		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return "", serrors.Wrap(ErrExecutionFailed, runErr, "fortune exited with %q", bytes.TrimSpace(stderr.Bytes()))
		}

		return "", serrors.Wrap(ErrExecutionFailed, runErr, "could not start fortune")
	}

	if !utf8.Valid(stdout.Bytes()) {
		metrics.FortuneInvocations.WithLabelValues(metrics.OutcomeDecodeFailed).Inc()

		return "", serrors.With(ErrDecodeFailed, "fortune output is not valid UTF-8 (%d bytes)", stdout.Len())
	}

	metrics.FortuneInvocations.WithLabelValues(metrics.OutcomeSuccess).Inc()

	return stdout.String(), nil
}

// String describes the command line for logs.
func (p *Program) String() string {
	return fmt.Sprintf("%s %s", p.options.Path, allFlag)
}
