package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/primer/internal/cli"
	"github.com/agbru/primer/internal/config"
	apperrors "github.com/agbru/primer/internal/errors"
	"github.com/agbru/primer/internal/fibonacci"
	"github.com/agbru/primer/internal/logging"
	"github.com/agbru/primer/internal/metrics"
	"github.com/agbru/primer/internal/prompt"
	"github.com/agbru/primer/internal/ui"
)

const tracerName = "github.com/agbru/primer/internal/app"

// Application represents one run of a console program.
type Application struct {
	Config    config.AppConfig
	Registry  *fibonacci.Registry
	Logger    logging.Logger
	Metrics   *metrics.Session
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom calculator registry for the application.
func WithRegistry(r *fibonacci.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithLogger sets the logger instead of the stderr zerolog logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates an Application for program by parsing command-line arguments.
// Configuration errors are written to errWriter before being returned.
func New(program config.Program, args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = fibonacci.NewDefaultRegistry()
	}

	programName := string(program)
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(program, programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		if !IsHelpError(err) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		level, _ := logging.ParseLevel(cfg.LogLevel)
		if cfg.LogFormat == config.LogFormatText {
			app.Logger = logging.NewTextLogger(errWriter, string(program), level)
		} else {
			app.Logger = logging.NewLeveledLogger(errWriter, string(program), level)
		}
	}
	app.Metrics = metrics.NewSession()
	return app, nil
}

// Run executes the configured program, reading console input from in and
// writing results to out. It returns the process exit code.
func (a *Application) Run(ctx context.Context, in io.Reader, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out, string(a.Config.Program))
		return apperrors.ExitSuccess
	}

	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	ctx, span := otel.Tracer(tracerName).Start(ctx, string(a.Config.Program))
	defer span.End()

	var err error
	switch a.Config.Program {
	case config.ProgramFibonacci:
		err = a.runFibonacci(ctx, in, out)
	case config.ProgramTempConv:
		err = a.runTempConv(in, out)
	case config.ProgramTwelveDays:
		err = a.runTwelveDays(out)
	default:
		err = apperrors.NewConfigError("unknown program %q", a.Config.Program)
	}

	if a.Config.ShowMetrics {
		if werr := a.Metrics.WriteText(a.ErrWriter); werr != nil {
			a.Logger.Error("failed to write metrics", werr)
		}
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.Logger.Error("program failed", err, logging.String("program", string(a.Config.Program)))

		// A closed console ends the program without a message on the
		// terminal; the log entry above is the only trace.
		var closed apperrors.InputClosedError
		if !errors.As(err, &closed) {
			cli.PrintError(a.ErrWriter, err)
		}
	}
	return apperrors.ExitCodeFor(err)
}

// newReader builds the console reader shared by all reads of one run.
func (a *Application) newReader(in io.Reader, out io.Writer) *prompt.Reader {
	return prompt.New(in, out, prompt.WithLogger(a.Logger), prompt.WithMetrics(a.Metrics))
}

// IsHelpError checks if the error is a help flag error (-h or -help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
