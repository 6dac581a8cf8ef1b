package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/primer/internal/cli"
	"github.com/agbru/primer/internal/config"
	apperrors "github.com/agbru/primer/internal/errors"
	"github.com/agbru/primer/internal/format"
	"github.com/agbru/primer/internal/logging"
	"github.com/agbru/primer/internal/prompt"
)

// runFibonacci reads n and prints the n-th term.
func (a *Application) runFibonacci(ctx context.Context, in io.Reader, out io.Writer) error {
	calc, err := a.Registry.Get(a.Config.Algo)
	if err != nil {
		return apperrors.NewConfigError("%v", err)
	}

	cli.PrintPrompt(out, cli.FibonacciPrompt)
	n, err := prompt.Int(a.newReader(in, out))
	if err != nil {
		return apperrors.WrapError(err, "reading n")
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("fibonacci.algorithm", calc.Name()),
		attribute.Int64("fibonacci.n", int64(min(n, 1<<63-1))),
	)

	// Signals only interrupt the computation; the console read above keeps
	// the default behaviour.
	if a.Config.Timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, a.Config.Timeout)
		defer cancelTimeout()
	}
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	var value uint64
	start := time.Now()
	showSpinner := !a.Config.Quiet && cli.IsTerminal(a.ErrWriter)
	err = cli.WithSpinner(a.ErrWriter, showSpinner, fmt.Sprintf("Computing F(%d)...", n), func() error {
		var calcErr error
		value, calcErr = calc.Calculate(ctx, n)
		return calcErr
	})
	elapsed := time.Since(start)
	if apperrors.IsContextError(err) {
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.TimeoutError{Operation: calc.Name(), Limit: a.Config.Timeout}
		}
		return apperrors.WrapError(err, "computation of F(%d) interrupted", n)
	}
	if err != nil {
		return err
	}

	a.Logger.Info("computed term",
		logging.String("algorithm", calc.Name()),
		logging.Uint64("n", n),
		logging.String("duration", format.FormatExecutionDuration(elapsed)))
	a.Metrics.ObserveCalculation(string(config.ProgramFibonacci))

	cli.PrintFibonacciResult(out, n, value)
	return nil
}
