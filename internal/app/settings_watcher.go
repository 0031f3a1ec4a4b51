package app

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/andyrewlee/gridsel/internal/logging"
	"github.com/andyrewlee/gridsel/internal/messages"
	"github.com/andyrewlee/gridsel/internal/safego"
)

// settingsWatcherDebounce coalesces bursts of filesystem events from
// editors that write config files in several steps.
const settingsWatcherDebounce = 200 * time.Millisecond

// settingsWatcher watches the config file for external edits and
// reports them debounced. The config directory is watched rather than
// the file itself so rename-style saves keep working.
type settingsWatcher struct {
	watcher *fsnotify.Watcher

	configPath string
	configDir  string

	onChanged func(reason string)
	debounce  time.Duration

	mu            sync.Mutex
	timer         *time.Timer
	pendingReason string
	closed        bool
	closeOnce     sync.Once
}

func newSettingsWatcher(configPath string, onChanged func(reason string)) (*settingsWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	sw := &settingsWatcher{
		watcher:    watcher,
		configPath: filepath.Clean(configPath),
		onChanged:  onChanged,
		debounce:   settingsWatcherDebounce,
	}
	sw.configDir = filepath.Dir(sw.configPath)

	if err := watcher.Add(sw.configDir); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return sw, nil
}

func (sw *settingsWatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return nil
			}
			if sw.isConfigEvent(event) {
				sw.scheduleNotify("config")
			}
		case _, ok := <-sw.watcher.Errors:
			if !ok {
				return nil
			}
			// Ignore errors; watcher will continue running.
		}
	}
}

func (sw *settingsWatcher) Close() error {
	var err error
	sw.closeOnce.Do(func() {
		sw.mu.Lock()
		sw.closed = true
		if sw.timer != nil {
			sw.timer.Stop()
			sw.timer = nil
		}
		sw.mu.Unlock()
		if sw.watcher != nil {
			err = sw.watcher.Close()
		}
	})
	return err
}

func (sw *settingsWatcher) isConfigEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != sw.configPath {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}

func (sw *settingsWatcher) scheduleNotify(reason string) {
	if sw.onChanged == nil {
		return
	}
	sw.mu.Lock()
	if sw.closed {
		sw.mu.Unlock()
		return
	}
	sw.pendingReason = reason
	if sw.timer == nil {
		sw.timer = time.AfterFunc(sw.debounce, sw.fire)
	} else {
		sw.timer.Reset(sw.debounce)
	}
	sw.mu.Unlock()
}

func (sw *settingsWatcher) fire() {
	sw.mu.Lock()
	if sw.closed {
		sw.mu.Unlock()
		return
	}
	reason := sw.pendingReason
	sw.pendingReason = ""
	sw.timer = nil
	sw.mu.Unlock()

	if sw.onChanged != nil {
		sw.onChanged(reason)
	}
}

// startSettingsWatcher begins watching the config file. Reloads arrive
// in the update loop as ConfigReloaded messages.
func (a *App) startSettingsWatcher() {
	if a.watcher != nil || a.cfg.Paths.ConfigPath == "" {
		return
	}
	sw, err := newSettingsWatcher(a.cfg.Paths.ConfigPath, func(reason string) {
		a.enqueueExternalMsg(messages.ConfigReloaded{Reason: reason})
	})
	if err != nil {
		logging.WithError(err, "Failed to start settings watcher")
		return
	}
	a.watcher = sw
	safego.Go("app.settingsWatcher", func() {
		_ = sw.Run(context.Background())
	})
}
