package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// fileWatcher reports writes to the database file made by other processes.
// Bursts of events are collapsed into one callback after the debounce
// interval. Events inside the self-write window are dropped.
type fileWatcher struct {
	fsw      *fsnotify.Watcher
	base     string
	debounce time.Duration
	onChange func()
	logger   *slog.Logger

	ignoreUntil atomic.Int64

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func newFileWatcher(dbPath string, debounce time.Duration, onChange func(), logger *slog.Logger) (*fileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	// Watching the directory survives the journal files being recreated.
	dir := filepath.Dir(dbPath)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()

		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	return &fileWatcher{
		fsw:      fsw,
		base:     filepath.Base(dbPath),
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

func (w *fileWatcher) start(ctx context.Context) {
	go w.run(ctx)
}

// markSelfWrite suppresses events for one debounce interval from now.
func (w *fileWatcher) markSelfWrite() {
	w.ignoreUntil.Store(time.Now().Add(w.debounce).UnixNano())
}

func (w *fileWatcher) close() error {
	w.stopOnce.Do(func() { close(w.stop) })
	<-w.done

	return w.fsw.Close()
}

func (w *fileWatcher) run(ctx context.Context) {
	defer close(w.done)

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			if !w.relevant(event) {
				continue
			}

			timer.Reset(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

			w.logger.WarnContext(ctx, "database file watcher error", slog.Any("error", err))
		case <-timer.C:
			if w.suppressed() {
				continue
			}

			w.logger.DebugContext(ctx, "database changed externally")
			w.onChange()
		}
	}
}

func (w *fileWatcher) relevant(event fsnotify.Event) bool {
	if !strings.HasPrefix(filepath.Base(event.Name), w.base) {
		return false
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
		return false
	}

	return !w.suppressed()
}

func (w *fileWatcher) suppressed() bool {
	return time.Now().UnixNano() <= w.ignoreUntil.Load()
}
