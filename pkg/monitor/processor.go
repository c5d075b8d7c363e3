package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mjmoore-dev/dbnormalizer/pkg/model"
	"github.com/mjmoore-dev/dbnormalizer/pkg/plan"
)

// RunFunc performs one full parse-and-normalize pass and reports its
// outcome. It is supplied by the caller (cmd/normalizer) so this package
// stays decoupled from the lexer/parser/normalizer wiring.
type RunFunc func() RunResult

// RunResult is the outcome of one normalization pass.
type RunResult struct {
	Tables []*model.Table
	Trace  *plan.Trace
	Err    error
}

// Processor drives RunFunc every time a Change arrives, recording
// statistics and forwarding each RunResult to an optional handler.
type Processor struct {
	run     RunFunc
	stats   *Statistics
	handler func(RunResult)
	mu      sync.RWMutex
}

// NewProcessor creates a Processor around run.
func NewProcessor(run RunFunc) *Processor {
	return &Processor{run: run, stats: NewStatistics()}
}

// SetHandler sets the callback invoked after every run.
func (p *Processor) SetHandler(handler func(RunResult)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handler = handler
}

// Process consumes changes from the channel, running the pipeline once
// per event, until the channel is closed or ctx is done.
func (p *Processor) Process(ctx context.Context, changes <-chan Change) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			p.runOnce()
		}
	}
}

func (p *Processor) runOnce() {
	result := p.run()
	p.stats.RecordRun(result)

	p.mu.RLock()
	handler := p.handler
	p.mu.RUnlock()

	if handler != nil {
		handler(result)
	}
}

// GetStatistics returns the processor's running statistics.
func (p *Processor) GetStatistics() *Statistics {
	return p.stats
}

// Statistics tracks watch-mode run counters, mutex-guarded since runs
// happen on the watcher goroutine while a CLI status line may read them
// concurrently.
type Statistics struct {
	mu sync.RWMutex

	TotalRuns      int64
	SuccessfulRuns int64
	FailedRuns     int64
	TablesProduced int64
	RulesFired     int64

	StartTime   time.Time
	LastRunTime time.Time
}

// NewStatistics creates a zeroed statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{StartTime: time.Now()}
}

// RecordRun folds one RunResult into the running totals.
func (s *Statistics) RecordRun(result RunResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.TotalRuns++
	s.LastRunTime = time.Now()

	if result.Err != nil {
		s.FailedRuns++
		return
	}
	s.SuccessfulRuns++
	s.TablesProduced += int64(len(result.Tables))
	if result.Trace != nil {
		s.RulesFired += int64(len(result.Trace.Nodes))
	}
}

// Snapshot is a point-in-time copy of Statistics, safe to read without
// holding the tracker's lock.
type Snapshot struct {
	TotalRuns      int64
	SuccessfulRuns int64
	FailedRuns     int64
	TablesProduced int64
	RulesFired     int64
	StartTime      time.Time
	LastRunTime    time.Time
	Uptime         time.Duration
}

// GetSnapshot returns a Snapshot of the current statistics.
func (s *Statistics) GetSnapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		TotalRuns:      s.TotalRuns,
		SuccessfulRuns: s.SuccessfulRuns,
		FailedRuns:     s.FailedRuns,
		TablesProduced: s.TablesProduced,
		RulesFired:     s.RulesFired,
		StartTime:      s.StartTime,
		LastRunTime:    s.LastRunTime,
		Uptime:         time.Since(s.StartTime),
	}
}

// String renders the snapshot as a status block for -watch's stdout.
func (s Snapshot) String() string {
	return fmt.Sprintf(`watch statistics:
  Total Runs:       %d
  Successful:       %d
  Failed:           %d
  Tables Produced:  %d
  Rules Fired:      %d
  Uptime:           %s
  Last Run:         %s`,
		s.TotalRuns,
		s.SuccessfulRuns,
		s.FailedRuns,
		s.TablesProduced,
		s.RulesFired,
		s.Uptime.Round(time.Second),
		s.LastRunTime.Format("2006-01-02 15:04:05"),
	)
}
