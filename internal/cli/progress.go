package cli

import (
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerProgress shows a terminal spinner while the reconciler waits on
// long-running cluster operations. Implements reconcile.Progress.
type SpinnerProgress struct {
	s *spinner.Spinner
}

// NewSpinnerProgress creates an idle spinner.
func NewSpinnerProgress() *SpinnerProgress {
	return &SpinnerProgress{
		s: spinner.New(spinner.CharSets[14], 100*time.Millisecond),
	}
}

// Start begins spinning with the given message.
func (p *SpinnerProgress) Start(message string) {
	p.s.Suffix = " " + message
	p.s.Start()
}

// Stop halts the spinner.
func (p *SpinnerProgress) Stop() {
	p.s.Stop()
}
