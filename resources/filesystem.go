package resources

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// FileSystem is a backend rooted at a directory.
type FileSystem struct {
	root  string
	write bool
	log   zerolog.Logger

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	changed map[string]struct{}
	done    chan struct{}
}

// FromRelPath creates a read-only backend rooted at base/rel.
func FromRelPath(base, rel string) *FileSystem {
	return &FileSystem{
		root:    filepath.Join(base, filepath.FromSlash(rel)),
		log:     zerolog.Nop(),
		changed: make(map[string]struct{}),
	}
}

// WithLogger sets the logger used for watch diagnostics.
func (f *FileSystem) WithLogger(log zerolog.Logger) *FileSystem {
	f.log = log
	return f
}

// WithWrite enables Write.
func (f *FileSystem) WithWrite() *FileSystem {
	f.write = true
	return f
}

// WithWatch starts watching the root for changes. If the watcher cannot be
// started the backend keeps working without change notifications.
func (f *FileSystem) WithWatch() *FileSystem {
	if err := f.startWatch(); err != nil {
		f.log.Warn().Err(err).Str("root", f.root).Msg("resource watch disabled")
	}
	return f
}

// Root returns the backend directory.
func (f *FileSystem) Root() string { return f.root }

// Watching reports whether change notifications are active.
func (f *FileSystem) Watching() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.watcher != nil
}

func (f *FileSystem) filePath(key string) string {
	return filepath.Join(f.root, filepath.FromSlash(key))
}

func (f *FileSystem) Exists(key string) bool {
	info, err := os.Stat(f.filePath(key))
	return err == nil && info.Mode().IsRegular()
}

func (f *FileSystem) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(f.filePath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// Write replaces the file atomically by writing a temporary file in the same
// directory and renaming it over the target.
func (f *FileSystem) Write(key string, data []byte) error {
	if !f.write {
		return ErrNotWritable
	}
	target := f.filePath(key)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(target)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

func (f *FileSystem) Notify(fn func(key string)) {
	f.mu.Lock()
	changed := f.changed
	f.changed = make(map[string]struct{})
	f.mu.Unlock()
	for k := range changed {
		fn(k)
	}
}

func (f *FileSystem) Close() error {
	f.mu.Lock()
	w := f.watcher
	f.watcher = nil
	f.mu.Unlock()
	if w == nil {
		return nil
	}
	err := w.Close()
	<-f.done
	return err
}

func (f *FileSystem) startWatch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// fsnotify is not recursive, so every directory is added up front and new
	// ones as they appear.
	err = filepath.WalkDir(f.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(p)
		}
		return nil
	})
	if err != nil {
		w.Close()
		return err
	}

	f.mu.Lock()
	f.watcher = w
	f.done = make(chan struct{})
	f.mu.Unlock()

	go f.watchLoop(w)
	return nil
}

func (f *FileSystem) watchLoop(w *fsnotify.Watcher) {
	defer close(f.done)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			f.handle(w, ev)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			f.log.Warn().Err(err).Str("root", f.root).Msg("resource watch error")
		}
	}
}

func (f *FileSystem) handle(w *fsnotify.Watcher, ev fsnotify.Event) {
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.Add(ev.Name); err != nil {
				f.log.Warn().Err(err).Str("dir", ev.Name).Msg("resource watch add failed")
			}
			return
		}
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}
	rel, err := filepath.Rel(f.root, ev.Name)
	if err != nil {
		return
	}
	key := filepath.ToSlash(rel)
	if strings.HasPrefix(path.Base(key), ".tmp-") {
		return
	}

	f.log.Debug().Str("key", key).Stringer("op", ev.Op).Msg("resource changed")
	f.mu.Lock()
	f.changed[key] = struct{}{}
	f.mu.Unlock()
}
