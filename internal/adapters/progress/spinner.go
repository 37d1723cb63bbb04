package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// SpinnerProgressSink shows a spinner while use cases wait on the network
type SpinnerProgressSink struct {
	mu      sync.Mutex
	spinner *spinner.Spinner
	out     io.Writer
}

// NewSpinnerProgressSink creates a sink that prints to stdout and spins on stderr
func NewSpinnerProgressSink() *SpinnerProgressSink {
	return newSpinnerProgressSink(os.Stdout, os.Stderr)
}

func newSpinnerProgressSink(out, spin io.Writer) *SpinnerProgressSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(spin))
	s.HideCursor = false

	return &SpinnerProgressSink{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Stage == usecase.StageComplete {
		r.spinner.Stop()
		return
	}

	if event.Spinner {
		r.spinner.Suffix = " " + formatEvent(event)
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Stop halts the spinner if a use case returned before completing
func (r *SpinnerProgressSink) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spinner.Stop()
}

// Info prints an info message
func (r *SpinnerProgressSink) Info(message string) {
	r.print(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerProgressSink) Error(message string) {
	r.print(color.New(color.FgRed), message)
}

// print stops the spinner for the duration of the message
func (r *SpinnerProgressSink) print(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

func formatEvent(event usecase.ProgressEvent) string {
	if event.Total > 0 {
		return fmt.Sprintf("[%d/%d] %s", event.Current, event.Total, event.Message)
	}
	return event.Message
}

// Ensure SpinnerProgressSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressSink)(nil)
