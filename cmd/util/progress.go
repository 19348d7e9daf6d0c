package util

import (
	"fmt"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
)

// progressInterval is how often the printer emits a dot.
const progressInterval = time.Second

// ProgressPrinter prints a message followed by a trailing dot every second
// until stopped, so a slow network call doesn't look hung.
type ProgressPrinter struct {
	out     io.Writer
	message string
	clock   clockwork.Clock
	stop    chan struct{}
	stopped chan struct{}
}

// NewProgressPrinter creates a printer for the given message. Start it with
// `go pp.Run()` alongside the slow call, and Stop it when the call returns.
func NewProgressPrinter(out io.Writer, message string) *ProgressPrinter {
	return &ProgressPrinter{
		out:     out,
		message: message,
		clock:   clockwork.NewRealClock(),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Run prints the message and keeps appending dots until Stop is called.
func (pp *ProgressPrinter) Run() {
	defer close(pp.stopped)
	fmt.Fprint(pp.out, pp.message)

	for {
		select {
		case <-pp.stop:
			fmt.Fprintln(pp.out)
			return
		case <-pp.clock.After(progressInterval):
			fmt.Fprint(pp.out, ".")
		}
	}
}

// Stop halts the printer and waits until it's done writing, so the caller's
// next print starts on a fresh line.
func (pp *ProgressPrinter) Stop() {
	close(pp.stop)
	<-pp.stopped
}
