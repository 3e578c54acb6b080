package segments

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/logger"
)

// WatcherConfig configures the preset file watcher.
type WatcherConfig struct {
	// PollInterval is the fallback polling interval when fsnotify is
	// unavailable. Default: 2 seconds
	PollInterval time.Duration
}

// DefaultWatcherConfig returns the default watcher configuration.
func DefaultWatcherConfig() WatcherConfig {
	return WatcherConfig{PollInterval: 2 * time.Second}
}

// Watcher reloads the preset file when it changes and hands the result to
// a callback. The TUI uses it to keep the initiate tab's preset list current
// without a restart.
type Watcher struct {
	config    WatcherConfig
	path      string
	onChange  func(*File)
	fsWatcher *fsnotify.Watcher
	mu        sync.Mutex
	stopChan  chan struct{}
	wg        sync.WaitGroup
	running   bool
}

// NewWatcher creates a watcher for path. onChange runs on every successful
// reload, including the initial load.
func NewWatcher(path string, config WatcherConfig, onChange func(*File)) *Watcher {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultWatcherConfig().PollInterval
	}
	return &Watcher{
		config:   config,
		path:     path,
		onChange: onChange,
		stopChan: make(chan struct{}),
	}
}

// Start loads the file once, then begins watching it.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	w.reload()

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("fsnotify unavailable, falling back to polling", "error", err)
		w.wg.Add(1)
		go w.pollLoop(ctx)
		return nil
	}
	w.fsWatcher = fsWatcher

	// Watch the directory: editors replace files on save, and the file may
	// not exist yet.
	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		logger.Warn("failed to watch preset directory, falling back to polling",
			"dir", dir,
			"error", err)
		if cerr := w.fsWatcher.Close(); cerr != nil {
			logger.Error("failed to close fsnotify watcher", "error", cerr)
		}
		w.fsWatcher = nil
		w.wg.Add(1)
		go w.pollLoop(ctx)
		return nil
	}

	w.wg.Add(1)
	go w.fsWatchLoop(ctx)

	logger.Info("watching segment presets", "path", w.path, "mode", "fsnotify")
	return nil
}

func (w *Watcher) fsWatchLoop(ctx context.Context) {
	defer w.wg.Done()

	targetPath, _ := filepath.Abs(w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			eventPath, _ := filepath.Abs(event.Name)
			if eventPath != targetPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.reload()
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logger.Warn("fsnotify error", "error", err)
		}
	}
}

func (w *Watcher) pollLoop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	var lastModTime time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if info.ModTime().After(lastModTime) {
				lastModTime = info.ModTime()
				w.reload()
			}
		}
	}
}

// reload parses the file and invokes the callback. A broken file keeps the
// previous presets; the error is only logged.
func (w *Watcher) reload() {
	f, err := Load(w.path)
	if err != nil {
		logger.Warn("failed to reload segment presets",
			"path", w.path,
			"error", err)
		return
	}
	logger.Debug("segment presets loaded", "path", w.path, "presets", len(f.Presets))
	if w.onChange != nil {
		w.onChange(f)
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopChan)

	if w.fsWatcher != nil {
		if err := w.fsWatcher.Close(); err != nil {
			logger.Error("failed to close fsnotify watcher", "error", err)
		}
	}

	w.wg.Wait()
	return nil
}
