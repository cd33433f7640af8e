package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nzaccagnino/devnotes/internal/nav"
	"github.com/nzaccagnino/devnotes/internal/notes"
)

func TestSelector_Defaults(t *testing.T) {
	s := nav.New()
	assert.Equal(t, notes.ViewNotes, s.Current())
	assert.Empty(t, s.FolderID())
	assert.Empty(t, s.SelectedNote())
	assert.Equal(t, notes.ViewContext{View: notes.ViewNotes}, s.Context())
}

func TestSelector_SwitchingViewClearsSelectedNote(t *testing.T) {
	s := nav.New()
	s.SelectNote("n1")

	s.Select(notes.ViewNotes)
	assert.Equal(t, "n1", s.SelectedNote(), "same view keeps the selection")

	s.Select(notes.ViewTrash)
	assert.Empty(t, s.SelectedNote())
	assert.Equal(t, notes.ViewTrash, s.Current())
}

func TestSelector_Folders(t *testing.T) {
	s := nav.New()
	s.SelectFolder("f1")
	assert.Equal(t, notes.ViewContext{View: notes.ViewFolder, FolderID: "f1"}, s.Context())

	s.SelectNote("n1")
	s.SelectFolder("f1")
	assert.Equal(t, "n1", s.SelectedNote())

	s.SelectFolder("f2")
	assert.Empty(t, s.SelectedNote())

	s.Select(notes.ViewFavorites)
	assert.Equal(t, "f2", s.FolderID())
	assert.Equal(t, notes.ViewContext{View: notes.ViewFavorites}, s.Context())
}

func TestSelector_ForgetFolder(t *testing.T) {
	s := nav.New()
	s.SelectFolder("f1")
	s.SelectNote("n1")

	s.ForgetFolder("other")
	assert.Equal(t, "f1", s.FolderID())
	assert.Equal(t, "n1", s.SelectedNote())

	s.ForgetFolder("f1")
	assert.Empty(t, s.FolderID())
	assert.Empty(t, s.SelectedNote())
	assert.Equal(t, notes.ViewContext{View: notes.ViewFolder}, s.Context())
}
