// Package hotconfig keeps a set of configuration files cached in memory and
// transparently picks up on-disk edits without a process restart. Each
// tracked file is checked for modification on access; a successful re-parse
// atomically replaces the published value, while a failed one keeps the
// previous good value in service so a single malformed edit never takes the
// rest of the configuration offline.
package hotconfig

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
)

// ParseFunc decodes the raw bytes of one tracked file into an immutable
// value. It must be pure: no caching, no filesystem access.
type ParseFunc func(data []byte) (any, error)

// FileSpec registers one tracked file under a logical key.
type FileSpec struct {
	Key   string
	Path  string
	Parse ParseFunc
}

// ErrorHook is invoked whenever a reload attempt fails. The store keeps
// serving the last good value regardless; the hook exists so callers can
// surface failures beyond the default log line (metrics, admin endpoints).
type ErrorHook func(key string, err error)

type entry struct {
	key   string
	path  string
	parse ParseFunc

	// mu serializes reload attempts for this key only. Readers on the
	// fast path never take it.
	mu       sync.Mutex
	value    atomic.Pointer[any]
	baseline atomic.Pointer[Stamp]
	stale    atomic.Bool
	lastErr  error // guarded by mu
}

// Store is the single source of truth for the current value of each
// registered key. Values are immutable once published; a reload swaps the
// whole value, so concurrent readers see either the old or the new one,
// never a partially updated structure.
type Store struct {
	src     Source
	onError ErrorHook
	keys    []string
	entries map[string]*entry
}

// Option customizes a Store at construction time.
type Option func(*Store)

// WithSource replaces the default OS filesystem source.
func WithSource(src Source) Option {
	return func(s *Store) { s.src = src }
}

// WithErrorHook replaces the default log-only reload failure hook.
func WithErrorHook(hook ErrorHook) Option {
	return func(s *Store) { s.onError = hook }
}

// New registers the given files. No load happens yet; the first Get (or
// ReloadAll) per key performs it.
func New(specs []FileSpec, opts ...Option) (*Store, error) {
	s := &Store{
		src: OSSource{},
		onError: func(key string, err error) {
			log.Printf("Reload of config %q failed, keeping last good value: %v", key, err)
		},
		entries: make(map[string]*entry, len(specs)),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, spec := range specs {
		if spec.Key == "" || spec.Path == "" || spec.Parse == nil {
			return nil, fmt.Errorf("incomplete file spec for key %q", spec.Key)
		}
		if _, dup := s.entries[spec.Key]; dup {
			return nil, fmt.Errorf("duplicate config key %q", spec.Key)
		}
		s.entries[spec.Key] = &entry{key: spec.Key, path: spec.Path, parse: spec.Parse}
		s.keys = append(s.keys, spec.Key)
	}
	return s, nil
}

// Keys returns the registered keys in registration order.
func (s *Store) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Get returns the current value for key. If the backing file changed since
// the last successful load (or was never loaded), it is re-read and
// re-parsed first. A failed reload keeps the previous good value in service
// and only surfaces ErrUnavailable when there has never been one.
func (s *Store) Get(key string) (any, error) {
	e, ok := s.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if s.needsReload(e) {
		e.mu.Lock()
		// A concurrent caller may have finished the same reload while
		// we waited on the lock.
		if s.needsReload(e) {
			if err := s.loadLocked(e); err != nil && e.value.Load() == nil {
				e.mu.Unlock()
				return nil, fmt.Errorf("config %q: %w: %v", key, ErrUnavailable, err)
			}
		}
		e.mu.Unlock()
	}
	if v := e.value.Load(); v != nil {
		return *v, nil
	}
	return nil, fmt.Errorf("config %q: %w", key, ErrUnavailable)
}

// ReloadAll force-reloads every key regardless of file stamps. Keys that
// fail keep their last good value; the returned map holds the failures, or
// nil when every key reloaded cleanly.
func (s *Store) ReloadAll() map[string]error {
	failed := make(map[string]error)
	for _, key := range s.keys {
		e := s.entries[key]
		e.mu.Lock()
		err := s.loadLocked(e)
		e.mu.Unlock()
		if err != nil {
			failed[key] = err
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return failed
}

// Invalidate marks a key stale so the next Get reloads it even if the file
// stamp has not visibly moved. Used by the fsnotify-based Notifier.
func (s *Store) Invalidate(key string) {
	if e, ok := s.entries[key]; ok {
		e.stale.Store(true)
	}
}

// LastError returns the most recent reload failure for key, or nil after a
// successful load.
func (s *Store) LastError(key string) error {
	e, ok := s.entries[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

func (s *Store) needsReload(e *entry) bool {
	base := e.baseline.Load()
	if base == nil || e.stale.Load() {
		return true
	}
	stamp, err := s.src.Stat(e.path)
	if err != nil {
		// A vanished file counts as changed; the read in loadLocked
		// turns it into a keep-last-good failure.
		return true
	}
	return !stamp.Equal(*base)
}

// loadLocked re-reads and re-parses the entry's file. On success it swaps
// the published value and advances the stamp baseline; on failure both stay
// put so the next access retries. The stamp is taken before the read: an
// edit racing the read leaves the baseline older than the content, which
// only causes one extra reload on the next access.
func (s *Store) loadLocked(e *entry) error {
	// Clear staleness first: an Invalidate that lands after this point
	// refers to an edit this load may miss, and must survive it.
	e.stale.Store(false)
	stamp, err := s.src.Stat(e.path)
	if err != nil {
		return s.failLocked(e, fmt.Errorf("stat %s: %w", e.path, err))
	}
	data, err := s.src.ReadFile(e.path)
	if err != nil {
		return s.failLocked(e, fmt.Errorf("read %s: %w", e.path, err))
	}
	value, err := e.parse(data)
	if err != nil {
		return s.failLocked(e, err)
	}
	e.value.Store(&value)
	e.baseline.Store(&stamp)
	e.lastErr = nil
	return nil
}

func (s *Store) failLocked(e *entry, err error) error {
	e.lastErr = err
	s.onError(e.key, err)
	return err
}
