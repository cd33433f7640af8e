// Package editor connects the text editing surface to the data it edits: the
// selected note, or the scratchpad when that view is active.
package editor

import (
	"github.com/nzaccagnino/devnotes/internal/nav"
	"github.com/nzaccagnino/devnotes/internal/notes"
)

type Adapter struct {
	store      *notes.Store
	scratchpad *Scratchpad
	selector   *nav.Selector
}

func NewAdapter(store *notes.Store, scratchpad *Scratchpad, selector *nav.Selector) *Adapter {
	return &Adapter{store: store, scratchpad: scratchpad, selector: selector}
}

// Content is the text the editor should display for the current view. It is
// empty when no note is selected or the selected note no longer exists.
func (a *Adapter) Content() (string, error) {
	if a.selector.Current() == notes.ViewScratchpad {
		return a.scratchpad.Load()
	}
	id := a.selector.SelectedNote()
	if id == "" {
		return "", nil
	}
	n, ok, err := a.store.GetNote(id)
	if err != nil || !ok {
		return "", err
	}
	return n.Text, nil
}

// Editable reports whether Change would store anything.
func (a *Adapter) Editable() bool {
	return a.selector.Current() == notes.ViewScratchpad || a.selector.SelectedNote() != ""
}

// Change stores text for the current view. Without a selected note it does
// nothing.
func (a *Adapter) Change(text string) error {
	if a.selector.Current() == notes.ViewScratchpad {
		return a.scratchpad.Save(text)
	}
	id := a.selector.SelectedNote()
	if id == "" {
		return nil
	}
	return a.store.UpdateNoteText(id, text)
}
