// Command tempconv converts one Fahrenheit and one Celsius temperature read from standard input.
package main

import (
	"context"
	"os"

	"github.com/agbru/primer/internal/app"
	"github.com/agbru/primer/internal/config"
	apperrors "github.com/agbru/primer/internal/errors"
)

func main() {
	application, err := app.New(config.ProgramTempConv, os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitCodeFor(err))
	}

	exitCode := application.Run(context.Background(), os.Stdin, os.Stdout)
	os.Exit(exitCode)
}
