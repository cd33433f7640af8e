package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const dirFileExt = ".json"

// Dir keeps one file per key inside a directory. Writes are atomic (temp
// file + rename). Changes made by other processes working on the same
// directory are picked up through fsnotify and delivered to subscribers.
type Dir struct {
	notifier

	root    string
	logger  zerolog.Logger
	watcher *fsnotify.Watcher
	done    chan struct{}

	mu     sync.Mutex
	seen   map[string]string // last value notified per key
	closed bool
}

func NewDir(root string, opts ...Option) (*Dir, error) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := os.MkdirAll(root, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(root); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", root, err)
	}

	d := &Dir{
		root:    root,
		logger:  o.logger,
		watcher: watcher,
		done:    make(chan struct{}),
		seen:    make(map[string]string),
	}
	go d.watch()

	return d, nil
}

func (d *Dir) path(key string) string {
	return filepath.Join(d.root, key+dirFileExt)
}

func (d *Dir) Get(key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	d.mu.Lock()
	closed := d.closed
	d.mu.Unlock()
	if closed {
		return "", false, ErrClosed
	}

	data, err := os.ReadFile(d.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return string(data), true, nil
}

func (d *Dir) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrClosed
	}
	if err := d.writeFile(key, value); err != nil {
		d.mu.Unlock()
		return err
	}
	d.seen[key] = value
	d.mu.Unlock()

	d.notify(Event{Key: key, Value: value})
	return nil
}

func (d *Dir) writeFile(key, value string) error {
	tmp, err := os.CreateTemp(d.root, "."+key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	if err := os.Rename(tmpName, d.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (d *Dir) Remove(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrClosed
	}
	err := os.Remove(d.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		d.mu.Unlock()
		return nil
	}
	if err != nil {
		d.mu.Unlock()
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	delete(d.seen, key)
	d.mu.Unlock()

	d.notify(Event{Key: key, Removed: true})
	return nil
}

func (d *Dir) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.mu.Unlock()

	err := d.watcher.Close()
	<-d.done
	return err
}

func (d *Dir) watch() {
	defer close(d.done)
	for {
		select {
		case ev, ok := <-d.watcher.Events:
			if !ok {
				return
			}
			d.handle(ev)
		case err, ok := <-d.watcher.Errors:
			if !ok {
				return
			}
			d.logger.Warn().Err(err).Str("dir", d.root).Msg("watcher error")
		}
	}
}

// handle turns a filesystem event into a storage Event. Writes this handle
// made itself were already notified by Set or Remove and are skipped by
// comparing against the last value seen for the key. The file is read under
// d.mu, which Set and Remove hold across their own writes, so seen only ever
// moves to what is currently on disk.
func (d *Dir) handle(ev fsnotify.Event) {
	name := filepath.Base(ev.Name)
	if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, dirFileExt) {
		return
	}
	key := strings.TrimSuffix(name, dirFileExt)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	data, err := os.ReadFile(d.path(key))
	removed := errors.Is(err, fs.ErrNotExist)
	if err != nil && !removed {
		d.mu.Unlock()
		d.logger.Warn().Err(err).Str("key", key).Msg("failed to read changed file")
		return
	}
	prev, known := d.seen[key]
	if removed {
		if !known {
			d.mu.Unlock()
			return
		}
		delete(d.seen, key)
	} else {
		if known && prev == string(data) {
			d.mu.Unlock()
			return
		}
		d.seen[key] = string(data)
	}
	d.mu.Unlock()

	d.logger.Debug().Str("key", key).Bool("removed", removed).Msg("external change")
	d.notify(Event{Key: key, Value: string(data), Removed: removed})
}
