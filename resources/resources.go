// Package resources looks up application resources by relative key across a
// prioritized set of backends.
//
//	res := resources.New().
//		LoadedFrom("core", 0, resources.FromRelPath(projectDir, "core").WithWrite().WithWatch())
//	data, ok := res.Resource("Config.toml").Get()
package resources

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrNotFound is returned when no backend has the key.
	ErrNotFound = errors.New("resource not found")
	// ErrNotWritable is returned by backends that were not opened for writing.
	ErrNotWritable = errors.New("resource backend is read-only")
	// ErrInvalidKey is returned for keys that are absolute or escape the root.
	ErrInvalidKey = errors.New("invalid resource key")
)

// Backend stores resources under slash-separated relative keys.
type Backend interface {
	Exists(key string) bool
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	// Notify calls fn for each key modified since the previous call.
	Notify(fn func(key string))
	Close() error
}

type entry struct {
	name     string
	priority int
	backend  Backend
}

// Resources is a prioritized collection of backends.
type Resources struct {
	mu       sync.Mutex
	backends []entry
	modified map[string]bool
}

// New creates an empty collection.
func New() *Resources {
	return &Resources{modified: make(map[string]bool)}
}

// LoadedFrom adds a backend. Backends with a higher priority are consulted
// first; equal priorities keep insertion order.
func (r *Resources) LoadedFrom(name string, priority int, b Backend) *Resources {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends = append(r.backends, entry{name: name, priority: priority, backend: b})
	sort.SliceStable(r.backends, func(i, j int) bool {
		return r.backends[i].priority > r.backends[j].priority
	})
	return r
}

// Backends returns backend names in lookup order.
func (r *Resources) Backends() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.backends))
	for i, e := range r.backends {
		names[i] = e.name
	}
	return names
}

// Resource returns a handle for key.
func (r *Resources) Resource(key string) Resource {
	return Resource{res: r, key: key}
}

// Get reads key from the first backend that has it.
func (r *Resources) Get(key string) ([]byte, bool) {
	data, err := r.Read(key)
	return data, err == nil
}

// Read is Get with the failure reason.
func (r *Resources) Read(key string) ([]byte, error) {
	k, err := CleanKey(key)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.collect()
	for _, e := range r.backends {
		if !e.backend.Exists(k) {
			continue
		}
		data, err := e.backend.Read(k)
		if err != nil {
			return nil, fmt.Errorf("%s: read %s: %w", e.name, k, err)
		}
		delete(r.modified, k)
		return data, nil
	}
	return nil, fmt.Errorf("%s: %w", k, ErrNotFound)
}

// Write stores data in the highest-priority backend that accepts writes.
func (r *Resources) Write(key string, data []byte) error {
	k, err := CleanKey(key)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.backends {
		err := e.backend.Write(k, data)
		if errors.Is(err, ErrNotWritable) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: write %s: %w", e.name, k, err)
		}
		return nil
	}
	return fmt.Errorf("%s: %w", k, ErrNotWritable)
}

// Modified reports whether key changed in any backend since it was last read.
func (r *Resources) Modified(key string) bool {
	k, err := CleanKey(key)
	if err != nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.collect()
	return r.modified[k]
}

// collect drains pending backend notifications. Callers hold r.mu.
func (r *Resources) collect() {
	for _, e := range r.backends {
		e.backend.Notify(func(changed string) {
			r.modified[changed] = true
		})
	}
}

// Close closes every backend.
func (r *Resources) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var errs []error
	for _, e := range r.backends {
		if err := e.backend.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.name, err))
		}
	}
	return errors.Join(errs...)
}

// Resource is a handle to a single key.
type Resource struct {
	res *Resources
	key string
}

// Key returns the resource key.
func (r Resource) Key() string { return r.key }

// Get returns the resource contents, or false if no backend has it.
func (r Resource) Get() ([]byte, bool) { return r.res.Get(r.key) }

// Read returns the resource contents or the reason they are unavailable.
func (r Resource) Read() ([]byte, error) { return r.res.Read(r.key) }

// Write stores new contents.
func (r Resource) Write(data []byte) error { return r.res.Write(r.key, data) }

// Modified reports whether the resource changed since it was last read.
func (r Resource) Modified() bool { return r.res.Modified(r.key) }

// CleanKey normalizes a slash-separated key and rejects keys that are
// absolute or climb out of the backend root.
func CleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	k := path.Clean(key)
	if k == "." || k == ".." || strings.HasPrefix(k, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return k, nil
}
