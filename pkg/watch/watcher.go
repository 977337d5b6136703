// Package watch reports changes to a fixed set of local files. Bursts of
// events are debounced and a file only counts as changed when its
// content hash differs from the last one seen.
package watch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/coolbeans/ontograph/pkg/errors"
	"github.com/coolbeans/ontograph/pkg/logger"
)

// DefaultDebounce is the quiet period after the last event before
// changes are reported.
const DefaultDebounce = 500 * time.Millisecond

// ChangeFunc is called once per changed file after the debounce period.
type ChangeFunc func(ctx context.Context, path string) error

// Watcher watches files for content changes.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	onChange ChangeFunc

	mu     sync.Mutex
	hashes map[string]string
}

// New watches paths. Their parent directories are watched rather than
// the files themselves so that editors replacing a file by rename are
// still seen.
func New(paths []string, debounce time.Duration, onChange ChangeFunc) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("no files to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}

	w := &Watcher{
		fs:       fs,
		debounce: debounce,
		onChange: onChange,
		hashes:   make(map[string]string),
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fs.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", p)
		}
		hash, err := hashFile(abs)
		if err != nil {
			fs.Close()
			return nil, err
		}
		w.hashes[abs] = hash
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fs.Add(dir); err != nil {
			fs.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}
	return w, nil
}

// Paths returns the watched files.
func (w *Watcher) Paths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.hashes))
	for p := range w.hashes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Run delivers changes until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if !w.watching(name) {
				continue
			}
			pending[name] = true
			timer.Reset(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("file watcher error", logger.FieldError, err.Error())

		case <-timer.C:
			names := make([]string, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			sort.Strings(names)
			clear(pending)

			for _, name := range names {
				if !w.Changed(name) {
					logger.Debugw("file touched without content change", logger.FieldFile, name)
					continue
				}
				logger.Infow("file changed", logger.FieldFile, name)
				if err := w.onChange(ctx, name); err != nil {
					logger.Warnw("change handler failed",
						logger.FieldFile, name,
						logger.FieldError, err.Error())
				}
			}
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) watching(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.hashes[path]
	return ok
}

// Changed rehashes path and reports whether its content differs from
// the last recorded hash. Unreadable files are not reported.
func (w *Watcher) Changed(path string) bool {
	hash, err := hashFile(path)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.hashes[path] == hash {
		return false
	}
	w.hashes[path] = hash
	return true
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrapf(err, "failed to hash %s", path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
