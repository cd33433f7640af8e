package notes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nzaccagnino/devnotes/internal/notes"
	"github.com/nzaccagnino/devnotes/internal/storage"
)

func TestVisible(t *testing.T) {
	plain := notes.Note{ID: "plain"}
	fav := notes.Note{ID: "fav", IsFav: true}
	trashedFav := notes.Note{ID: "trashed", IsFav: true, IsTrash: true}
	hidden := notes.Note{ID: "hidden", IsHidden: true, FolderID: "f1"}
	inFolder := notes.Note{ID: "in-folder", FolderID: "f1"}

	tests := []struct {
		name string
		vc   notes.ViewContext
		want []string
	}{
		{name: "notes", vc: notes.ViewContext{View: notes.ViewNotes}, want: []string{"plain", "fav", "in-folder"}},
		{name: "favorites", vc: notes.ViewContext{View: notes.ViewFavorites}, want: []string{"fav"}},
		{name: "trash", vc: notes.ViewContext{View: notes.ViewTrash}, want: []string{"trashed"}},
		{name: "folder", vc: notes.ViewContext{View: notes.ViewFolder, FolderID: "f1"}, want: []string{"in-folder"}},
		{name: "folder without selection", vc: notes.ViewContext{View: notes.ViewFolder}, want: nil},
		{name: "scratchpad", vc: notes.ViewContext{View: notes.ViewScratchpad}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, n := range []notes.Note{plain, fav, trashedFav, hidden, inFolder} {
				if notes.Visible(n, tt.vc) {
					got = append(got, n.ID)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_ListAndCounts(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	require.NoError(t, s.CreateFolder("Work"))
	work := onlyFolder(t, s)

	a, err := s.CreateNote(notes.ViewContext{View: notes.ViewNotes})
	require.NoError(t, err)
	b, err := s.CreateNote(notes.ViewContext{View: notes.ViewFavorites})
	require.NoError(t, err)
	c, err := s.CreateNote(notes.ViewContext{View: notes.ViewFolder, FolderID: work.ID})
	require.NoError(t, err)
	d, err := s.CreateNote(notes.ViewContext{View: notes.ViewNotes})
	require.NoError(t, err)
	require.NoError(t, s.TrashNote(d))

	list, err := s.List(notes.ViewContext{View: notes.ViewNotes})
	require.NoError(t, err)
	assert.Equal(t, []string{c, b, a}, ids(list))

	list, err = s.List(notes.ViewContext{View: notes.ViewScratchpad})
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = s.List(notes.ViewContext{View: notes.ViewFolder, FolderID: work.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{c}, ids(list))

	counts, err := s.CountByView()
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Notes)
	assert.Equal(t, 1, counts.Favorites)
	assert.Equal(t, 1, counts.Trash)
	assert.Equal(t, map[string]int{work.ID: 1}, counts.Folders)
}

func TestParseView(t *testing.T) {
	v, err := notes.ParseView("favorites")
	require.NoError(t, err)
	assert.Equal(t, notes.ViewFavorites, v)

	_, err = notes.ParseView("archive")
	assert.Error(t, err)
}

func ids(list []notes.Note) []string {
	out := make([]string, 0, len(list))
	for _, n := range list {
		out = append(out, n.ID)
	}
	return out
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "", notes.Title(notes.Note{}))
	assert.Equal(t, "", notes.Title(notes.Note{Text: " \n\t\n"}))
	assert.Equal(t, "Shopping list", notes.Title(notes.Note{Text: "\n  Shopping list  \n- milk"}))
}
