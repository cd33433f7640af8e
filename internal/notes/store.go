// Package notes owns the notes and folders collections: every mutation goes
// through Store, which keeps folder membership, trash and favorite state
// consistent and persists the result.
package notes

import (
	"encoding/json"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nzaccagnino/devnotes/internal/storage"
)

type Option func(*Store)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

func WithRand(r *rand.Rand) Option {
	return func(s *Store) {
		s.rand = r
	}
}

// Store is the single writer of the notes and folders keys. Each mutation
// reads both collections from storage, applies the change and rewrites the
// touched collections whole. Two handles working from the same stale
// snapshot therefore resolve last-writer-wins.
type Store struct {
	storage storage.Storage
	logger  zerolog.Logger
	newID   func() string
	rand    *rand.Rand

	mu sync.Mutex

	lmu       sync.Mutex
	listeners map[int]func(Change)
	nextID    int
	inflight  *storage.Event
	unwatch   func()
}

func New(st storage.Storage, opts ...Option) *Store {
	s := &Store{
		storage:   st,
		logger:    zerolog.Nop(),
		newID:     uuid.NewString,
		listeners: make(map[int]func(Change)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.unwatch = st.Subscribe(s.onStorageEvent)
	return s
}

// Close detaches the store from storage notifications. The storage itself
// stays open.
func (s *Store) Close() {
	if s.unwatch != nil {
		s.unwatch()
	}
}

// Subscribe registers fn to run after every successful write of the notes or
// folders collection, whether made by this store or by another handle on the
// same storage.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.lmu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.lmu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.lmu.Lock()
			delete(s.listeners, id)
			s.lmu.Unlock()
		})
	}
}

func (s *Store) emit(c Change) {
	s.lmu.Lock()
	ids := slices.Sorted(maps.Keys(s.listeners))
	fns := make([]func(Change), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.listeners[id])
	}
	s.lmu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}

// onStorageEvent forwards writes made by other handles. Our own writes are
// emitted by mutate once the store lock is released.
func (s *Store) onStorageEvent(ev storage.Event) {
	if ev.Key != storage.KeyNotes && ev.Key != storage.KeyFolders {
		return
	}
	s.lmu.Lock()
	own := s.inflight != nil && *s.inflight == ev
	s.lmu.Unlock()
	if own {
		return
	}
	s.emit(Change{Key: ev.Key})
}

type state struct {
	notes        []Note
	folders      []Folder
	notesDirty   bool
	foldersDirty bool
}

func (st *state) noteIndex(id string) int {
	return slices.IndexFunc(st.notes, func(n Note) bool { return n.ID == id })
}

func (st *state) folder(id string) (Folder, bool) {
	i := slices.IndexFunc(st.folders, func(f Folder) bool { return f.ID == id })
	if i < 0 {
		return Folder{}, false
	}
	return st.folders[i], true
}

func load[T any](st storage.Storage, key string) ([]T, error) {
	raw, ok, err := st.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	items := []T{}
	if !ok || raw == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *Store) load() (*state, error) {
	notes, err := load[Note](s.storage, storage.KeyNotes)
	if err != nil {
		return nil, err
	}
	folders, err := load[Folder](s.storage, storage.KeyFolders)
	if err != nil {
		return nil, err
	}
	return &state{notes: notes, folders: folders}, nil
}

func (s *Store) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	ev := storage.Event{Key: key, Value: string(data)}
	s.lmu.Lock()
	s.inflight = &ev
	s.lmu.Unlock()
	defer func() {
		s.lmu.Lock()
		s.inflight = nil
		s.lmu.Unlock()
	}()

	if err := s.storage.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// mutate runs fn against freshly loaded state and persists whatever fn marked
// dirty. Subscribers are notified after the lock is released.
func (s *Store) mutate(op string, fn func(st *state)) error {
	s.mu.Lock()
	written, err := s.apply(fn)
	s.mu.Unlock()

	for _, key := range written {
		s.emit(Change{Key: key})
	}
	if err != nil {
		s.logger.Error().Err(err).Str("op", op).Msg("persistence failure")
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	return nil
}

func (s *Store) apply(fn func(st *state)) ([]string, error) {
	st, err := s.load()
	if err != nil {
		return nil, err
	}
	fn(st)

	// Notes are written first so a failed folders write never leaves active
	// notes filed under a folder that no longer exists.
	var written []string
	if st.notesDirty {
		if err := s.write(storage.KeyNotes, st.notes); err != nil {
			return written, err
		}
		written = append(written, storage.KeyNotes)
	}
	if st.foldersDirty {
		if err := s.write(storage.KeyFolders, st.folders); err != nil {
			return written, err
		}
		written = append(written, storage.KeyFolders)
	}
	return written, nil
}

// CreateNote adds an empty note at the front of the collection and returns
// its id. In a folder view with an existing folder the note joins it and
// takes the folder name as category; a stale folder id falls back to the
// default category.
func (s *Store) CreateNote(vc ViewContext) (string, error) {
	id := s.newID()
	err := s.mutate("create note", func(st *state) {
		note := Note{
			ID:       id,
			Category: DefaultCategory,
			IsFav:    vc.View == ViewFavorites,
		}
		if vc.View == ViewFolder && vc.FolderID != "" {
			if f, ok := st.folder(vc.FolderID); ok {
				note.FolderID = f.ID
				note.Category = f.Name
			}
		}
		st.notes = slices.Insert(st.notes, 0, note)
		st.notesDirty = true
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// CreateFolder adds a folder named after the trimmed name. Blank names are
// dropped without error.
func (s *Store) CreateFolder(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return s.mutate("create folder", func(st *state) {
		f := Folder{
			ID:    s.newID(),
			Name:  name,
			Color: RandomColor(s.rand),
		}
		st.folders = slices.Insert(st.folders, 0, f)
		st.foldersDirty = true
	})
}

// RenameFolder changes a folder's name. Categories already copied onto notes
// keep the old name.
func (s *Store) RenameFolder(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return s.mutate("rename folder", func(st *state) {
		i := slices.IndexFunc(st.folders, func(f Folder) bool { return f.ID == id })
		if i < 0 || st.folders[i].Name == name {
			return
		}
		st.folders[i].Name = name
		st.foldersDirty = true
	})
}

// DeleteFolder removes the folder and moves every note that referenced it to
// trash with the folder cleared and the default category.
func (s *Store) DeleteFolder(id string) error {
	return s.mutate("delete folder", func(st *state) {
		before := len(st.folders)
		st.folders = slices.DeleteFunc(st.folders, func(f Folder) bool { return f.ID == id })
		st.foldersDirty = len(st.folders) != before

		if id == "" {
			return
		}
		for i := range st.notes {
			n := &st.notes[i]
			if n.FolderID != id {
				continue
			}
			n.IsTrash = true
			n.IsHidden = false
			n.FolderID = ""
			n.Category = DefaultCategory
			st.notesDirty = true
		}
	})
}

func (s *Store) ToggleFavorite(id string) error {
	return s.mutate("toggle favorite", func(st *state) {
		if i := st.noteIndex(id); i >= 0 {
			st.notes[i].IsFav = !st.notes[i].IsFav
			st.notesDirty = true
		}
	})
}

func (s *Store) ToggleHidden(id string) error {
	return s.mutate("toggle hidden", func(st *state) {
		if i := st.noteIndex(id); i >= 0 {
			st.notes[i].IsHidden = !st.notes[i].IsHidden
			st.notesDirty = true
		}
	})
}

// MoveNoteToFolder assigns the note to folderID, or to no folder when
// folderID is empty. The category follows only when the target folder
// exists; otherwise the previous category is kept.
func (s *Store) MoveNoteToFolder(noteID, folderID string) error {
	return s.mutate("move note", func(st *state) {
		i := st.noteIndex(noteID)
		if i < 0 {
			return
		}
		n := st.notes[i]
		n.FolderID = folderID
		if folderID != "" {
			if f, ok := st.folder(folderID); ok {
				n.Category = f.Name
			}
		}
		if n != st.notes[i] {
			st.notes[i] = n
			st.notesDirty = true
		}
	})
}

// TrashNote soft-deletes a note. Favorite flag, category and folder are kept
// so RestoreNote can bring the note back as it was.
func (s *Store) TrashNote(id string) error {
	return s.TrashNotes([]string{id})
}

func (s *Store) TrashNotes(ids []string) error {
	return s.mutate("trash notes", func(st *state) {
		for _, id := range ids {
			if i := st.noteIndex(id); i >= 0 && !st.notes[i].IsTrash {
				st.notes[i].IsTrash = true
				st.notesDirty = true
			}
		}
	})
}

// RestoreNote takes a trashed note out of trash. Notes that are not in trash
// are left alone.
func (s *Store) RestoreNote(id string) error {
	return s.mutate("restore note", func(st *state) {
		if i := st.noteIndex(id); i >= 0 && st.notes[i].IsTrash {
			st.notes[i].IsTrash = false
			st.notes[i].IsHidden = false
			st.notesDirty = true
		}
	})
}

// DeleteNotesPermanently drops the given notes from the collection. The order
// of the remaining notes is unchanged.
func (s *Store) DeleteNotesPermanently(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	return s.mutate("delete notes", func(st *state) {
		before := len(st.notes)
		st.notes = slices.DeleteFunc(st.notes, func(n Note) bool {
			_, ok := drop[n.ID]
			return ok
		})
		st.notesDirty = len(st.notes) != before
	})
}

// EmptyTrash permanently deletes every trashed note.
func (s *Store) EmptyTrash() error {
	return s.mutate("empty trash", func(st *state) {
		before := len(st.notes)
		st.notes = slices.DeleteFunc(st.notes, func(n Note) bool { return n.IsTrash })
		st.notesDirty = len(st.notes) != before
	})
}

func (s *Store) UpdateNoteText(id, text string) error {
	return s.mutate("update note", func(st *state) {
		if i := st.noteIndex(id); i >= 0 && st.notes[i].Text != text {
			st.notes[i].Text = text
			st.notesDirty = true
		}
	})
}

// ReplaceNotes overwrites the notes collection with a caller-held copy.
// Anything written since that copy was taken is lost.
func (s *Store) ReplaceNotes(notes []Note) error {
	if notes == nil {
		notes = []Note{}
	}
	s.mu.Lock()
	err := s.write(storage.KeyNotes, notes)
	s.mu.Unlock()

	if err != nil {
		s.logger.Error().Err(err).Str("op", "replace notes").Msg("persistence failure")
		return fmt.Errorf("failed to replace notes: %w", err)
	}
	s.emit(Change{Key: storage.KeyNotes})
	return nil
}

func (s *Store) GetNote(id string) (Note, bool, error) {
	notes, err := s.Notes()
	if err != nil {
		return Note{}, false, err
	}
	i := slices.IndexFunc(notes, func(n Note) bool { return n.ID == id })
	if i < 0 {
		return Note{}, false, nil
	}
	return notes[i], true, nil
}

func (s *Store) GetFolder(id string) (Folder, bool, error) {
	folders, err := s.Folders()
	if err != nil {
		return Folder{}, false, err
	}
	i := slices.IndexFunc(folders, func(f Folder) bool { return f.ID == id })
	if i < 0 {
		return Folder{}, false, nil
	}
	return folders[i], true, nil
}

// Notes returns every note, most recent first.
func (s *Store) Notes() ([]Note, error) {
	return load[Note](s.storage, storage.KeyNotes)
}

// Folders returns every folder, most recent first.
func (s *Store) Folders() ([]Folder, error) {
	return load[Folder](s.storage, storage.KeyFolders)
}

func (s *Store) Snapshot() (Snapshot, error) {
	st, err := s.load()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Notes: st.notes, Folders: st.folders}, nil
}
