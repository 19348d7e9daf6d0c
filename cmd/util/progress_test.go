package util

import (
	"bytes"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestProgressPrinter(t *testing.T) {
	clock := clockwork.NewFakeClock()
	out := &bytes.Buffer{}
	pp := &ProgressPrinter{
		out:     out,
		message: "Verifying API key",
		clock:   clock,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go pp.Run()

	// Each BlockUntil waits for the printer to re-arm its timer, which
	// guarantees the previous dot has been written.
	clock.BlockUntil(1)
	clock.Advance(progressInterval)
	clock.BlockUntil(1)
	clock.Advance(progressInterval)
	clock.BlockUntil(1)
	pp.Stop()

	assert.Equal(t, "Verifying API key..\n", out.String())
}

func TestProgressPrinterStopImmediately(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Now())
	out := &bytes.Buffer{}
	pp := &ProgressPrinter{
		out:     out,
		message: "Fetching files",
		clock:   clock,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go pp.Run()
	clock.BlockUntil(1)
	pp.Stop()

	assert.Equal(t, "Fetching files\n", out.String())
}
