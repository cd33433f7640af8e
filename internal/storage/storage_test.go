package storage

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]func(t *testing.T) Storage {
	t.Helper()
	return map[string]func(t *testing.T) Storage{
		"memory": func(t *testing.T) Storage {
			return NewMemory()
		},
		"sqlite": func(t *testing.T) Storage {
			s, err := NewSQLite(filepath.Join(t.TempDir(), "data", "devnotes.db"))
			require.NoError(t, err)
			return s
		},
		"dir": func(t *testing.T) Storage {
			s, err := NewDir(filepath.Join(t.TempDir(), "data"))
			require.NoError(t, err)
			return s
		},
	}
}

func TestStorage_GetSetRemove(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			_, ok, err := s.Get(KeyNotes)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(KeyNotes, `[{"id":"a"}]`))
			v, ok, err := s.Get(KeyNotes)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":"a"}]`, v)

			require.NoError(t, s.Set(KeyNotes, `[]`))
			v, _, err = s.Get(KeyNotes)
			require.NoError(t, err)
			assert.Equal(t, `[]`, v)

			require.NoError(t, s.Remove(KeyNotes))
			_, ok, err = s.Get(KeyNotes)
			require.NoError(t, err)
			assert.False(t, ok)

			// removing an absent key is not an error
			require.NoError(t, s.Remove(KeyNotes))
		})
	}
}

func TestStorage_SubscribeNotifiesWrites(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			var mu sync.Mutex
			var got []Event
			unsubscribe := s.Subscribe(func(ev Event) {
				mu.Lock()
				got = append(got, ev)
				mu.Unlock()
			})

			require.NoError(t, s.Set(KeyFolders, `[]`))
			require.NoError(t, s.Remove(KeyFolders))

			mu.Lock()
			require.Len(t, got, 2)
			assert.Equal(t, Event{Key: KeyFolders, Value: `[]`}, got[0])
			assert.Equal(t, Event{Key: KeyFolders, Removed: true}, got[1])
			mu.Unlock()

			unsubscribe()
			unsubscribe()
			require.NoError(t, s.Set(KeyFolders, `[]`))

			mu.Lock()
			assert.Len(t, got, 2)
			mu.Unlock()
		})
	}
}

func TestStorage_Closed(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			require.NoError(t, s.Close())

			assert.ErrorIs(t, s.Set(KeyNotes, `[]`), ErrClosed)
			_, _, err := s.Get(KeyNotes)
			assert.ErrorIs(t, err, ErrClosed)
			assert.ErrorIs(t, s.Remove(KeyNotes), ErrClosed)
			assert.NoError(t, s.Close())
		})
	}
}

func TestStorage_InvalidKey(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			for _, key := range []string{"", "../notes", ".hidden", `a\b`} {
				assert.ErrorIs(t, s.Set(key, "x"), ErrInvalidKey, "key %q", key)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(KindMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open(KindSQLite, filepath.Join(dir, "notes.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, s)
	require.NoError(t, s.Close())

	s, err = Open(KindDir, filepath.Join(dir, "kv"))
	require.NoError(t, err)
	assert.IsType(t, &Dir{}, s)
	require.NoError(t, s.Close())

	_, err = Open("redis", "")
	assert.ErrorContains(t, err, `unknown storage kind "redis"`)
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devnotes.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(KeyScratchpad, `"hello"`))
	require.NoError(t, s.Close())

	s, err = NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(KeyScratchpad)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"hello"`, v)
}

func TestDir_ExternalChangesAreNotified(t *testing.T) {
	root := t.TempDir()

	a, err := NewDir(root)
	require.NoError(t, err)
	defer a.Close()

	b, err := NewDir(root)
	require.NoError(t, err)
	defer b.Close()

	var mu sync.Mutex
	var events []Event
	b.Subscribe(func(ev Event) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	})

	require.NoError(t, a.Set(KeyNotes, `[{"id":"n1"}]`))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, ev := range events {
			if ev.Key == KeyNotes && ev.Value == `[{"id":"n1"}]` {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)

	v, ok, err := b.Get(KeyNotes)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"n1"}]`, v)
}

func TestDir_IgnoresForeignFiles(t *testing.T) {
	root := t.TempDir()

	d, err := NewDir(root)
	require.NoError(t, err)
	defer d.Close()

	var mu sync.Mutex
	var events []Event
	d.Subscribe(func(ev Event) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	})

	require.NoError(t, os.WriteFile(filepath.Join(root, "README.txt"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".notes.123.tmp"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "folders.json"), []byte("[]"), 0600))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(events) > 0
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for _, ev := range events {
		assert.Equal(t, KeyFolders, ev.Key)
	}
}

func TestDir_OwnWritesNeverReplayStaleValues(t *testing.T) {
	d, err := NewDir(t.TempDir())
	require.NoError(t, err)
	defer d.Close()

	var mu sync.Mutex
	var values []string
	d.Subscribe(func(ev Event) {
		mu.Lock()
		values = append(values, ev.Value)
		mu.Unlock()
	})

	const writes = 200
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < writes; i++ {
			assert.NoError(t, d.Set(KeyNotes, strconv.Itoa(i)))
		}
	}()

	// a watcher event for the same key racing with the writes above
	changed := fsnotify.Event{Name: d.path(KeyNotes), Op: fsnotify.Write}
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
			d.handle(changed)
		}
	}
	d.handle(changed)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, values, writes)
	for i, v := range values {
		assert.Equal(t, strconv.Itoa(i), v)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	assert.Equal(t, strconv.Itoa(writes-1), d.seen[KeyNotes])
}
