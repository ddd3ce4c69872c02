// Package watch keeps curricula in sync with settings files on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/service/readers"
)

const settingsExt = ".json"

type settingsSaver interface {
	SaveSettings(ctx context.Context, input readers.SaveSettingsInput) (*domain.Curriculum, error)
}

// SettingsWatcher imports every <curriculum>.json file of a directory and
// re-imports a file after it changes. Bursts of events for one file are
// collapsed into a single reload.
type SettingsWatcher struct {
	dir      string
	debounce time.Duration
	saver    settingsSaver
	log      *slog.Logger

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	running sync.WaitGroup

	// ready is closed once the initial scan is done.
	ready chan struct{}
}

// NewSettingsWatcher creates a watcher for dir.
func NewSettingsWatcher(log *slog.Logger, saver settingsSaver, dir string, debounce time.Duration) *SettingsWatcher {
	return &SettingsWatcher{
		dir:      dir,
		debounce: debounce,
		saver:    saver,
		log:      log.With("component", "settings_watcher", "dir", dir),
		timers:   make(map[string]*time.Timer),
		ready:    make(chan struct{}),
	}
}

// Run scans the directory, then watches it until ctx is cancelled. It
// returns after all pending reloads have been dropped and running ones have
// finished. Run must be called at most once.
func (w *SettingsWatcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	n, err := w.Scan(ctx)
	if err != nil {
		return err
	}
	w.log.InfoContext(ctx, "settings watcher started", slog.Int("imported", n), slog.Duration("debounce", w.debounce))
	close(w.ready)

	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("settings watcher stopped")
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !isSettingsFile(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				w.schedule(ctx, ev.Name)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.WarnContext(ctx, "watcher error", slog.String("error", err.Error()))
		}
	}
}

// Scan imports every settings file of the directory in name order and
// returns how many were stored. A file that fails to import is logged and
// skipped.
func (w *SettingsWatcher) Scan(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return 0, fmt.Errorf("read settings dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	imported := 0
	for _, e := range entries {
		if e.IsDir() || !isSettingsFile(e.Name()) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return imported, err
		}
		if w.reload(ctx, filepath.Join(w.dir, e.Name())) {
			imported++
		}
	}
	return imported, nil
}

func (w *SettingsWatcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if t, ok := w.timers[path]; ok && t.Stop() {
		t.Reset(w.debounce)
		return
	}

	var t *time.Timer
	t = time.AfterFunc(w.debounce, func() { w.fire(ctx, path, t) })
	w.timers[path] = t
}

func (w *SettingsWatcher) fire(ctx context.Context, path string, t *time.Timer) {
	w.mu.Lock()
	if w.stopped || w.timers[path] != t {
		w.mu.Unlock()
		return
	}
	delete(w.timers, path)
	w.running.Add(1)
	w.mu.Unlock()

	defer w.running.Done()
	w.reload(ctx, path)
}

func (w *SettingsWatcher) stop() {
	w.mu.Lock()
	w.stopped = true
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	w.mu.Unlock()

	w.running.Wait()
}

// reload reports whether the file was stored.
func (w *SettingsWatcher) reload(ctx context.Context, path string) bool {
	name := CurriculumName(path)
	log := w.log.With(slog.String("curriculum", name))

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	if err != nil {
		log.WarnContext(ctx, "read settings file", slog.String("error", err.Error()))
		return false
	}

	if _, err := w.saver.SaveSettings(ctx, readers.SaveSettingsInput{Name: name, Settings: data}); err != nil {
		log.ErrorContext(ctx, "import settings file", slog.String("error", err.Error()))
		return false
	}
	log.InfoContext(ctx, "settings file imported")
	return true
}

// CurriculumName is the curriculum a settings file belongs to: its base
// name without the extension.
func CurriculumName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// Editors write hidden swap files next to the real one.
func isSettingsFile(path string) bool {
	base := filepath.Base(path)
	return !strings.HasPrefix(base, ".") && strings.EqualFold(filepath.Ext(base), settingsExt)
}
