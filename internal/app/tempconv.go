package app

import (
	"io"

	"github.com/agbru/primer/internal/cli"
	"github.com/agbru/primer/internal/config"
	apperrors "github.com/agbru/primer/internal/errors"
	"github.com/agbru/primer/internal/logging"
	"github.com/agbru/primer/internal/prompt"
	"github.com/agbru/primer/internal/temperature"
)

// conversionOrder is the sequence of source scales the converter asks for.
var conversionOrder = []temperature.Scale{temperature.Fahrenheit, temperature.Celsius}

// runTempConv performs one conversion in each direction.
func (a *Application) runTempConv(in io.Reader, out io.Writer) error {
	reader := a.newReader(in, out)
	for _, from := range conversionOrder {
		cli.PrintPrompt(out, cli.ConversionPrompt(from))
		value, err := prompt.Float(reader)
		if err != nil {
			return apperrors.WrapError(err, "reading %s temperature", from.Name())
		}

		conv := temperature.Convert(value, from)
		a.Logger.Debug("converted temperature",
			logging.String("from", from.Name()),
			logging.Float64("input", conv.Input),
			logging.Float64("output", conv.Output))
		a.Metrics.ObserveCalculation(string(config.ProgramTempConv))

		cli.PrintConversion(out, conv)
	}
	return nil
}
