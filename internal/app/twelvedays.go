package app

import (
	"io"

	"github.com/agbru/primer/internal/cli"
	"github.com/agbru/primer/internal/config"
	"github.com/agbru/primer/internal/verse"
)

// runTwelveDays prints the full verse.
func (a *Application) runTwelveDays(out io.Writer) error {
	if err := cli.PrintVerse(out, verse.DefaultSong()); err != nil {
		return err
	}
	a.Metrics.ObserveCalculation(string(config.ProgramTwelveDays))
	return nil
}
