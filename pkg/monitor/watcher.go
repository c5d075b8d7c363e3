// Package monitor watches a schema/dependency file pair on disk and
// re-runs the normalization pipeline whenever either one changes, tracking
// run statistics and surfacing diagnostics along the way.
package monitor

import (
	"context"
	"fmt"
	"os"
	"time"
)

// FilePairWatcher polls a schema file and a dependency file for mtime
// changes and emits a Change event whenever either one is newer than what
// was last observed.
type FilePairWatcher struct {
	schemaPath string
	depsPath   string
	interval   time.Duration

	lastSchemaMod time.Time
	lastDepsMod   time.Time
}

// Change describes which of the two watched files triggered a re-run.
type Change struct {
	SchemaChanged bool
	DepsChanged   bool
	At            time.Time
}

// NewFilePairWatcher creates a watcher over the given paths, polling at
// interval.
func NewFilePairWatcher(schemaPath, depsPath string, interval time.Duration) *FilePairWatcher {
	return &FilePairWatcher{schemaPath: schemaPath, depsPath: depsPath, interval: interval}
}

// Start begins polling and sends a Change on changes until ctx is done, at
// which point the channel is closed. The first poll always fires a Change
// so the caller's initial run goes through the same path as every re-run.
func (w *FilePairWatcher) Start(ctx context.Context) (<-chan Change, <-chan error) {
	changes := make(chan Change)
	errs := make(chan error, 1)

	go func() {
		defer close(changes)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		first := true
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			change, err := w.poll()
			if err != nil {
				select {
				case errs <- err:
				default:
				}
			} else if first || change.SchemaChanged || change.DepsChanged {
				first = false
				select {
				case changes <- change:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return changes, errs
}

func (w *FilePairWatcher) poll() (Change, error) {
	schemaMod, err := modTime(w.schemaPath)
	if err != nil {
		return Change{}, fmt.Errorf("stat schema file: %w", err)
	}
	depsMod, err := modTime(w.depsPath)
	if err != nil {
		return Change{}, fmt.Errorf("stat dependency file: %w", err)
	}

	change := Change{
		SchemaChanged: schemaMod.After(w.lastSchemaMod),
		DepsChanged:   depsMod.After(w.lastDepsMod),
		At:            time.Now(),
	}
	w.lastSchemaMod = schemaMod
	w.lastDepsMod = depsMod

	return change, nil
}

func modTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
