// Command twelvedays prints the cumulative verse of "The Twelve Days of Christmas".
package main

import (
	"context"
	"os"

	"github.com/agbru/primer/internal/app"
	"github.com/agbru/primer/internal/config"
	apperrors "github.com/agbru/primer/internal/errors"
)

func main() {
	application, err := app.New(config.ProgramTwelveDays, os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitCodeFor(err))
	}

	exitCode := application.Run(context.Background(), os.Stdin, os.Stdout)
	os.Exit(exitCode)
}
