package recount

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// RecountProgress reports how far a tally rebuild has advanced through
// the vote feed. Batches report as they complete; output is a single
// rewritten terminal line.
type RecountProgress struct {
	writer         io.Writer
	totalVotes     int
	recounted      int
	batches        int
	reportInterval int
	lastReported   int
	startTime      time.Time
	started        bool
	mu             sync.Mutex
}

// NewRecountProgress creates a progress reporter for a recount run.
// writer: where to write progress output (typically os.Stderr)
// totalVotes: number of votes whose tallies will be rebuilt
// reportInterval: write a progress line every N votes
func NewRecountProgress(writer io.Writer, totalVotes, reportInterval int) *RecountProgress {
	return &RecountProgress{
		writer:         writer,
		totalVotes:     totalVotes,
		reportInterval: reportInterval,
	}
}

// Start marks the beginning of a recount run. Batches reported before
// Start are ignored.
func (p *RecountProgress) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.startTime = time.Now()
	p.started = true
	p.recounted = 0
	p.batches = 0
	p.lastReported = 0
}

// BatchDone records a completed batch of rebuilt tallies. A progress
// line is written whenever the vote count crosses the report interval.
func (p *RecountProgress) BatchDone(votes int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	p.batches++
	p.recounted += votes
	if p.recounted > p.totalVotes {
		// The feed grew under us; clamp so the line stays sensible
		p.recounted = p.totalVotes
	}

	if p.recounted-p.lastReported >= p.reportInterval {
		p.report()
		p.lastReported = p.recounted
	}
}

// Finish writes the final progress line and terminates it with a newline.
func (p *RecountProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	p.recounted = p.totalVotes
	p.report()
	fmt.Fprintln(p.writer)
}

// Elapsed returns the time elapsed since Start was called.
func (p *RecountProgress) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return 0
	}

	return time.Since(p.startTime)
}

// report writes the current progress line. Must be called with lock held.
func (p *RecountProgress) report() {
	rate := float64(p.recounted) / time.Since(p.startTime).Seconds()

	percentage := 0.0
	if p.totalVotes > 0 {
		percentage = float64(p.recounted) / float64(p.totalVotes) * 100.0
	}

	fmt.Fprintf(p.writer, "\rRecounted %d/%d votes (%.1f%%) in %d batches - %.1f votes/s",
		p.recounted, p.totalVotes, percentage, p.batches, rate)
}
