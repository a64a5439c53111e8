package hotconfig

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Notifier layers OS file-change notifications on top of a Store. The store
// contract stays poll-on-access; the notifier only marks keys stale so the
// next Get reloads immediately instead of waiting for a visible stamp
// change. Parent directories are watched rather than the files themselves,
// since editors typically replace config files on save.
type Notifier struct {
	store   *Store
	watcher *fsnotify.Watcher
	byPath  map[string]string // cleaned absolute-ish path -> key
	done    chan struct{}
}

// NewNotifier starts watching every file registered in store.
func NewNotifier(store *Store) (*Notifier, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	n := &Notifier{
		store:   store,
		watcher: watcher,
		byPath:  make(map[string]string),
		done:    make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, key := range store.keys {
		path := filepath.Clean(store.entries[key].path)
		n.byPath[path] = key
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}
	go n.run()
	return n, nil
}

func (n *Notifier) run() {
	defer close(n.done)
	for {
		select {
		case event, ok := <-n.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			key, tracked := n.byPath[filepath.Clean(event.Name)]
			if !tracked {
				continue
			}
			log.Printf("Config file changed on disk: %s (key %q)", event.Name, key)
			n.store.Invalidate(key)
		case err, ok := <-n.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Config watch error: %v", err)
		}
	}
}

// Close stops the notifier and waits for its event loop to exit.
func (n *Notifier) Close() error {
	err := n.watcher.Close()
	<-n.done
	return err
}
