package integrator

import (
	"sync/atomic"
	"time"
)

// ProgressReporter receives completed work units. Update may be called concurrently.
type ProgressReporter interface {
	Update(units int64)
	Done()
}

// ProgressFactory creates a reporter expecting total units of work
type ProgressFactory func(total int64, label string, quiet bool) ProgressReporter

// LogProgressReporter logs every completed tenth of the work
type LogProgressReporter struct {
	total    int64
	label    string
	quiet    bool
	start    time.Time
	done     atomic.Int64
	reported atomic.Int64 // Last tenth that was logged
}

// NewProgressReporter creates a reporter that logs at Info level unless quiet
func NewProgressReporter(total int64, label string, quiet bool) ProgressReporter {
	return &LogProgressReporter{total: total, label: label, quiet: quiet, start: time.Now()}
}

// Update implements ProgressReporter
func (p *LogProgressReporter) Update(units int64) {
	done := p.done.Add(units)
	if p.quiet || p.total <= 0 {
		return
	}

	tenth := done * 10 / p.total
	for {
		last := p.reported.Load()
		if tenth <= last {
			return
		}
		if p.reported.CompareAndSwap(last, tenth) {
			logger.Infof("%s: %d%% (%d/%d) after %v", p.label, tenth*10, done, p.total, time.Since(p.start).Round(time.Millisecond))
			return
		}
	}
}

// Completed returns the units reported so far
func (p *LogProgressReporter) Completed() int64 {
	return p.done.Load()
}

// Done implements ProgressReporter
func (p *LogProgressReporter) Done() {
	if !p.quiet {
		logger.Infof("%s: done in %v", p.label, time.Since(p.start).Round(time.Millisecond))
	}
}
