// Package cli renders the console programs' prompts and results.
package cli

import (
	"fmt"
	"io"

	"github.com/agbru/primer/internal/format"
	"github.com/agbru/primer/internal/temperature"
	"github.com/agbru/primer/internal/ui"
	"github.com/agbru/primer/internal/verse"
)

// Prompts written before each console read.
const (
	FibonacciPrompt = "Please input n."
)

// ConversionPrompt returns the prompt asking for a temperature on scale s.
func ConversionPrompt(s temperature.Scale) string {
	return fmt.Sprintf("Please input %s temperature.", s.Name())
}

// PrintPrompt writes text on its own line.
func PrintPrompt(out io.Writer, text string) {
	fmt.Fprintln(out, text)
}

// PrintFibonacciResult writes the result line of the fibonacci program.
//
// Parameters:
//   - out: The writer for standard output.
//   - n: The requested index.
//   - value: The computed term.
func PrintFibonacciResult(out io.Writer, n, value uint64) {
	fmt.Fprintf(out, "%d-th fibonacci number is %d.\n", n, value)
}

// PrintConversion writes a conversion as "{in}[°F] is {out} [°C]." using the
// shortest exact decimal for both values.
func PrintConversion(out io.Writer, c temperature.Conversion) {
	fmt.Fprintf(out, "%s%s is %s %s.\n",
		format.FormatFloat(c.Input), c.From.Symbol(),
		format.FormatFloat(c.Output), c.To.Symbol())
}

// PrintVerse renders song with styled headers, followed by a newline.
//
// Returns:
//   - error: Any error from assembling the stanzas.
func PrintVerse(out io.Writer, song verse.Song) error {
	text, err := song.Render(ui.StyleHeader)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, text)
	return nil
}

// PrintError writes err to w, in the error color when w is a terminal.
func PrintError(w io.Writer, err error) {
	msg := fmt.Sprintf("Error: %v", err)
	if IsTerminal(w) {
		msg = ui.StyleError(msg)
	}
	fmt.Fprintln(w, msg)
}
