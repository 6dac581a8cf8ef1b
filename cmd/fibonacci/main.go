// Command fibonacci reads n from standard input and prints the n-th term of the sequence 0, 1, 1, 2, 3, 5, ...
package main

import (
	"context"
	"os"

	"github.com/agbru/primer/internal/app"
	"github.com/agbru/primer/internal/config"
	apperrors "github.com/agbru/primer/internal/errors"
)

func main() {
	application, err := app.New(config.ProgramFibonacci, os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitCodeFor(err))
	}

	exitCode := application.Run(context.Background(), os.Stdin, os.Stdout)
	os.Exit(exitCode)
}
