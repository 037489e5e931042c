//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// spinnerRefreshRate paces the capture-mode spinner animation. 200ms keeps it
// smooth without busy redrawing.
const spinnerRefreshRate = 200 * time.Millisecond

// Spinner is the minimal control surface of the progress spinner shown while
// a step runs in capture mode. The reporter drives it through this interface
// so tests can substitute a mock.
type Spinner interface {
	// Start begins the animation.
	Start()
	// Stop halts the animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner glyph.
	UpdateSuffix(suffix string)
}

// realSpinner adapts the briandowns spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner builds the terminal spinner writing to w. A package variable so
// reporter tests can swap in a mock.
var newSpinner = func(w io.Writer) Spinner {
	return &realSpinner{spinner.New(spinner.CharSets[11], spinnerRefreshRate, spinner.WithWriter(w))}
}
