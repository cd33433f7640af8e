// Package nav tracks which collection view is on screen and which note is
// selected in it.
package nav

import "github.com/nzaccagnino/devnotes/internal/notes"

// Selector is owned by the presentation layer and is not safe for concurrent
// use.
type Selector struct {
	view     notes.View
	folderID string
	noteID   string
}

// New starts on the all-notes view with nothing selected.
func New() *Selector {
	return &Selector{view: notes.ViewNotes}
}

func (s *Selector) Current() notes.View {
	return s.view
}

// FolderID is the last folder chosen with SelectFolder. It survives switching
// to other views.
func (s *Selector) FolderID() string {
	return s.folderID
}

// Select switches view. Switching to a different view drops the selected
// note.
func (s *Selector) Select(v notes.View) {
	if v == s.view {
		return
	}
	s.view = v
	s.noteID = ""
}

// SelectFolder opens the folder view on id.
func (s *Selector) SelectFolder(id string) {
	if s.view != notes.ViewFolder || s.folderID != id {
		s.noteID = ""
	}
	s.view = notes.ViewFolder
	s.folderID = id
}

// ForgetFolder clears the folder selection if it points at id. Call it after
// the folder was deleted.
func (s *Selector) ForgetFolder(id string) {
	if id == "" || s.folderID != id {
		return
	}
	s.folderID = ""
	if s.view == notes.ViewFolder {
		s.noteID = ""
	}
}

// Context is what CreateNote needs to place a new note.
func (s *Selector) Context() notes.ViewContext {
	vc := notes.ViewContext{View: s.view}
	if s.view == notes.ViewFolder {
		vc.FolderID = s.folderID
	}
	return vc
}

func (s *Selector) SelectNote(id string) {
	s.noteID = id
}

// SelectedNote returns the selected note id, or "" when none is selected.
func (s *Selector) SelectedNote() string {
	return s.noteID
}
