package baseline

import (
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Iron-Ham/multicheck/internal/errors"
	"github.com/Iron-Ham/multicheck/internal/logging"
)

// DefaultDebounce collapses the burst of events editors produce for one save.
const DefaultDebounce = 50 * time.Millisecond

// Watcher reloads a baseline file whenever it changes on disk and reports the
// parsed values (or the error) to a callback.
//
// The parent directory is watched rather than the file itself, so editors
// that save by renaming a temp file over the original are still observed.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	logger   *logging.Logger

	onChange func(values []string)
	onError  func(err error)

	mu       sync.Mutex
	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithWatcherLogger sets the logger used for watch diagnostics.
func WithWatcherLogger(logger *logging.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatcher creates a Watcher for path. Nothing is observed until Start.
func NewWatcher(path string, onChange func([]string), onError func(error), opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fsw,
		path:     abs,
		debounce: DefaultDebounce,
		logger:   logging.NopLogger(),
		onChange: onChange,
		onError:  onError,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.WithComponent("baseline").With("path", abs)

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching for file changes.
func (w *Watcher) Start() {
	if w.started.CompareAndSwap(false, true) {
		go w.watchLoop()
	}
}

// Stop stops the watcher and waits for the loop to exit. It is safe to call
// more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
	})
	if w.started.Load() {
		<-w.doneCh
	}
}

func (w *Watcher) watchLoop() {
	defer close(w.doneCh)

	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer
	defer debounceTimer.Stop()

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.logger.Debug("baseline file event", "op", event.Op.String())
			debounceTimer.Reset(w.debounce)

		case <-debounceTimer.C:
			if !w.reload() {
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err.Error())
		}
	}
}

// reload parses the file and dispatches to the matching callback. A rename
// can leave the path briefly missing; that surfaces as an error and the next
// create event reloads again. It reports false once the error is permanent,
// which ends the watch.
func (w *Watcher) reload() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	values, err := Load(w.path)
	if err != nil {
		w.logger.Warn("baseline reload failed", "error", err.Error())
		if w.onError != nil {
			w.onError(err)
		}
		if !errors.IsRetryable(err) {
			w.logger.Warn("baseline watch stopped")
			return false
		}
		return true
	}

	w.logger.Debug("baseline reloaded", "values", len(values))
	if w.onChange != nil {
		w.onChange(values)
	}
	return true
}
