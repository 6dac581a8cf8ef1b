//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// SpinnerRefreshRate defines the animation interval of the spinner.
const SpinnerRefreshRate = 100 * time.Millisecond

// spinnerDelay is how long a computation runs before the spinner appears,
// so instant results never flash it.
var spinnerDelay = 300 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// It defines the essential controls for a spinner: starting, stopping, and
// updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(w io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, spinner.WithWriter(w))
	return &realSpinner{s}
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// WithSpinner runs fn and returns its error. When enabled is true and fn is
// still running after a short delay, a spinner labelled with label animates
// on w until fn returns. fn itself always runs on the calling goroutine.
//
// Parameters:
//   - w: The writer the spinner draws on, normally stderr.
//   - enabled: Whether a spinner may be shown at all.
//   - label: The text shown after the spinner.
//   - fn: The blocking work to run.
//
// Returns:
//   - error: The error returned by fn.
func WithSpinner(w io.Writer, enabled bool, label string, fn func() error) error {
	if !enabled {
		return fn()
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		timer := time.NewTimer(spinnerDelay)
		defer timer.Stop()
		select {
		case <-done:
			return
		case <-timer.C:
		}

		s := newSpinner(w)
		s.UpdateSuffix(" " + label)
		s.Start()
		<-done
		s.Stop()
	}()

	err := fn()
	close(done)
	wg.Wait()
	return err
}
