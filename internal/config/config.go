// Package config defines the command-line and environment configuration
// shared by the console programs.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/primer/internal/errors"
	"github.com/agbru/primer/internal/logging"
	"github.com/agbru/primer/internal/ui"
)

// EnvPrefix is prepended to every environment variable the programs read.
const EnvPrefix = "PRIMER_"

// Log output formats accepted by -log-format.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Program identifies which console program is running.
type Program string

const (
	ProgramFibonacci  Program = "fibonacci"
	ProgramTempConv   Program = "tempconv"
	ProgramTwelveDays Program = "twelvedays"
)

// AppConfig aggregates the settings of one program run. Running a program
// with no arguments and no PRIMER_* variables yields colors on, warn-level
// JSON logging, the dark theme and no timeout.
type AppConfig struct {
	// Program is the console program being configured.
	Program Program
	// Algo names the fibonacci calculator ("recursive" or "iterative").
	Algo string
	// Timeout bounds the fibonacci computation. Zero means no limit.
	Timeout time.Duration
	// LogLevel is the minimum level written to stderr.
	LogLevel string
	// LogFormat selects zerolog JSON lines or plain text log lines.
	LogFormat string
	// Theme names the color theme ("dark", "light" or "none").
	Theme string
	// NoColor disables ANSI styling.
	NoColor bool
	// Quiet suppresses the progress spinner.
	Quiet bool
	// ShowMetrics writes the session counters to stderr on exit.
	ShowMetrics bool
	// ShowVersion prints the version and exits.
	ShowVersion bool
}

// ParseConfig parses the command-line arguments of program, then applies
// PRIMER_* environment overrides for flags not given explicitly.
//
// Parameters:
//   - program: The program whose flag set is built.
//   - programName: The name shown in usage output (usually os.Args[0]).
//   - args: The arguments after the program name.
//   - errWriter: Where usage and parse errors are written.
//   - availableAlgos: The calculator names accepted by -algo.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp for -h, or an apperrors.ConfigError.
func ParseConfig(program Program, programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	config := AppConfig{Program: program}
	fs.StringVar(&config.LogLevel, "log-level", "warn", "Minimum log level written to stderr (debug, info, warn, error).")
	fs.StringVar(&config.LogFormat, "log-format", LogFormatJSON, "Log line format (json, text).")
	fs.StringVar(&config.Theme, "theme", ui.DarkTheme.Name, fmt.Sprintf("Color theme (%s).", strings.Join(ui.ThemeNames(), ", ")))
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Suppress the progress spinner.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for -quiet.")
	fs.BoolVar(&config.ShowMetrics, "metrics", false, "Write session counters to stderr on exit.")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print version information and exit.")
	if program == ProgramFibonacci {
		fs.StringVar(&config.Algo, "algo", "recursive", fmt.Sprintf("Calculator to use (%s).", strings.Join(availableAlgos, ", ")))
		fs.DurationVar(&config.Timeout, "timeout", 0, "Abort the computation after this long (0 = no limit).")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate(availableAlgos []string) error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid log level %q", c.LogLevel)
	}
	if c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatText {
		return apperrors.NewConfigError("invalid log format %q (available: json, text)", c.LogFormat)
	}
	if !slices.Contains(ui.ThemeNames(), c.Theme) {
		return apperrors.NewConfigError("unknown theme %q (available: %s)", c.Theme, strings.Join(ui.ThemeNames(), ", "))
	}
	if c.Timeout < 0 {
		return apperrors.NewConfigError("timeout must not be negative, got %s", c.Timeout)
	}
	if c.Program == ProgramFibonacci && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unknown algorithm %q (available: %s)", c.Algo, strings.Join(availableAlgos, ", "))
	}
	return nil
}
