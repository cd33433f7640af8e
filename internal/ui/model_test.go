package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nzaccagnino/devnotes/internal/config"
	"github.com/nzaccagnino/devnotes/internal/editor"
	"github.com/nzaccagnino/devnotes/internal/i18n"
	"github.com/nzaccagnino/devnotes/internal/notes"
	"github.com/nzaccagnino/devnotes/internal/storage"
)

func newTestModel(t *testing.T) (Model, *notes.Store) {
	t.Helper()
	mem := storage.NewMemory()
	store := notes.New(mem)
	t.Cleanup(store.Close)

	cfg := config.Default()
	cfg.AutoSaveInterval = 0

	m := NewModel(store, editor.NewScratchpad(mem), cfg, zerolog.Nop())
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, store
}

// update feeds msg to m and keeps running the returned commands, as the
// program loop would, until one yields nothing.
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	for i := 0; msg != nil && i < 10; i++ {
		next, cmd := m.Update(msg)
		m = next.(Model)
		if cmd == nil {
			break
		}
		msg = cmd()
		if _, ok := msg.(tea.BatchMsg); ok {
			break
		}
	}
	return m
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_InitLoadsCollections(t *testing.T) {
	m, store := newTestModel(t)
	require.NoError(t, store.CreateFolder("Work"))
	_, err := store.CreateNote(notes.ViewContext{View: notes.ViewNotes})
	require.NoError(t, err)

	m = update(t, m, m.Init()())

	assert.Len(t, m.folders, 1)
	assert.Len(t, m.notes, 1)
	assert.Equal(t, 1, m.counts.Notes)
	assert.Contains(t, m.View(), "Work")
}

func TestModel_CreateAndEditNote(t *testing.T) {
	m, store := newTestModel(t)

	m = update(t, m, keys("n"))
	require.Equal(t, ModeEditing, m.mode)
	id := m.sel.SelectedNote()
	require.NotEmpty(t, id)

	m = update(t, m, keys("hi"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeNormal, m.mode)

	n, ok, err := store.GetNote(id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hi", n.Text)
}

func TestModel_DeleteFolderTrashesNotesAndClearsSelection(t *testing.T) {
	m, store := newTestModel(t)
	require.NoError(t, store.CreateFolder("Work"))
	folders, err := store.Folders()
	require.NoError(t, err)
	work := folders[0]
	id, err := store.CreateNote(notes.ViewContext{View: notes.ViewFolder, FolderID: work.ID})
	require.NoError(t, err)
	m = update(t, m, m.Init()())

	// move the sidebar cursor onto the folder and open it
	for m.sidebarCursor < len(sidebarViews) {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, work.ID, m.sel.FolderID())
	require.Len(t, m.notes, 1)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, PanelSidebar, m.activePanel)
	m = update(t, m, keys("d"))
	require.Equal(t, ModeConfirmDeleteFolder, m.mode)
	assert.Contains(t, m.View(), "Work")

	m = update(t, m, keys("y"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, m.sel.FolderID())

	n, _, err := store.GetNote(id)
	require.NoError(t, err)
	assert.True(t, n.IsTrash)
	assert.Equal(t, notes.DefaultCategory, n.Category)
}

func TestModel_ScratchpadEditing(t *testing.T) {
	m, _ := newTestModel(t)

	m.sidebarCursor = 0
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, notes.ViewScratchpad, m.sel.Current())
	assert.Equal(t, editor.WelcomeText, m.textarea.Value())

	m = update(t, m, keys("i"))
	require.Equal(t, ModeEditing, m.mode)
	m.textarea.SetValue("")
	m = update(t, m, keys("todo"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	content, err := m.editor.Content()
	require.NoError(t, err)
	assert.Equal(t, "todo", content)
}

func TestModel_TrashAndEmpty(t *testing.T) {
	m, store := newTestModel(t)
	_, err := store.CreateNote(notes.ViewContext{View: notes.ViewNotes})
	require.NoError(t, err)
	m = update(t, m, m.Init()())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, PanelList, m.activePanel)
	m = update(t, m, keys("d"))
	assert.Empty(t, m.notes)
	assert.Equal(t, 1, m.counts.Trash)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m.sidebarCursor = 3
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, notes.ViewTrash, m.sel.Current())
	require.Len(t, m.notes, 1)

	m = update(t, m, keys("X"))
	require.Equal(t, ModeConfirmEmptyTrash, m.mode)
	m = update(t, m, keys("y"))

	all, err := store.Notes()
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, m.notes)
}

func TestModel_ChangedMsgReloads(t *testing.T) {
	m, store := newTestModel(t)
	m = update(t, m, m.Init()())
	require.Empty(t, m.notes)

	_, err := store.CreateNote(notes.ViewContext{View: notes.ViewNotes})
	require.NoError(t, err)
	m = update(t, m, ChangedMsg{Key: storage.KeyNotes})

	assert.Len(t, m.notes, 1)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 5))
	assert.Equal(t, "he...", truncate("hello world", 5))
	assert.Equal(t, "hé", truncate("héllo", 2))
	assert.Equal(t, "", truncate("x", 0))
}

func TestModel_ContentMarksHiddenNotes(t *testing.T) {
	m, store := newTestModel(t)
	hidden, err := store.CreateNote(notes.ViewContext{View: notes.ViewNotes})
	require.NoError(t, err)
	visible, err := store.CreateNote(notes.ViewContext{View: notes.ViewNotes})
	require.NoError(t, err)
	require.NoError(t, store.ToggleHidden(hidden))
	require.NoError(t, store.TrashNotes([]string{hidden, visible}))

	m.sidebarCursor = 3
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, notes.ViewTrash, m.sel.Current())
	require.Len(t, m.notes, 2)

	m.sel.SelectNote(hidden)
	assert.True(t, m.selectedHidden())
	assert.Contains(t, m.renderContent(), i18n.T().Hidden)

	m.sel.SelectNote(visible)
	assert.False(t, m.selectedHidden())
	assert.NotContains(t, m.renderContent(), i18n.T().Hidden)
}
