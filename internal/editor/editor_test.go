package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nzaccagnino/devnotes/internal/editor"
	mock_storage "github.com/nzaccagnino/devnotes/internal/mocks/storage"
	"github.com/nzaccagnino/devnotes/internal/nav"
	"github.com/nzaccagnino/devnotes/internal/notes"
	"github.com/nzaccagnino/devnotes/internal/storage"
)

func TestScratchpad_LoadSave(t *testing.T) {
	mem := storage.NewMemory()
	p := editor.NewScratchpad(mem)

	text, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, editor.WelcomeText, text)

	require.NoError(t, p.Save("line one\n\"quoted\""))
	text, err = p.Load()
	require.NoError(t, err)
	assert.Equal(t, "line one\n\"quoted\"", text)

	raw, ok, err := mem.Get(storage.KeyScratchpad)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"line one\n\"quoted\""`, raw)

	require.NoError(t, p.Save(""))
	text, err = p.Load()
	require.NoError(t, err)
	assert.Empty(t, text, "an emptied scratchpad stays empty")
}

func TestScratchpad_Corrupt(t *testing.T) {
	mem := storage.NewMemory()
	require.NoError(t, mem.Set(storage.KeyScratchpad, "not json"))

	_, err := editor.NewScratchpad(mem).Load()
	assert.ErrorIs(t, err, notes.ErrCorruptState)
}

func TestScratchpad_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock_storage.NewMockStorage(ctrl)
	st.EXPECT().Set(storage.KeyScratchpad, `"x"`).Return(storage.ErrClosed)

	err := editor.NewScratchpad(st).Save("x")
	assert.ErrorIs(t, err, storage.ErrClosed)
}

func TestScratchpad_Watch(t *testing.T) {
	mem := storage.NewMemory()
	p := editor.NewScratchpad(mem)

	var calls int
	stop := p.Watch(func() { calls++ })

	require.NoError(t, editor.NewScratchpad(mem).Save("from elsewhere"))
	require.NoError(t, mem.Set(storage.KeyNotes, "[]"))
	assert.Equal(t, 1, calls)

	stop()
	require.NoError(t, p.Save("again"))
	assert.Equal(t, 1, calls)
}

func newAdapter(t *testing.T) (*editor.Adapter, *notes.Store, *nav.Selector) {
	t.Helper()
	mem := storage.NewMemory()
	store := notes.New(mem)
	t.Cleanup(store.Close)
	sel := nav.New()
	return editor.NewAdapter(store, editor.NewScratchpad(mem), sel), store, sel
}

func TestAdapter_RoutesToSelectedNote(t *testing.T) {
	a, store, sel := newAdapter(t)

	id, err := store.CreateNote(sel.Context())
	require.NoError(t, err)

	assert.False(t, a.Editable())
	require.NoError(t, a.Change("ignored"))
	n, _, err := store.GetNote(id)
	require.NoError(t, err)
	assert.Empty(t, n.Text)

	sel.SelectNote(id)
	assert.True(t, a.Editable())
	require.NoError(t, a.Change("hello"))

	content, err := a.Content()
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
}

func TestAdapter_RoutesToScratchpad(t *testing.T) {
	a, store, sel := newAdapter(t)
	id, err := store.CreateNote(sel.Context())
	require.NoError(t, err)
	sel.SelectNote(id)

	sel.Select(notes.ViewScratchpad)
	content, err := a.Content()
	require.NoError(t, err)
	assert.Equal(t, editor.WelcomeText, content)

	require.NoError(t, a.Change("scribble"))
	content, err = a.Content()
	require.NoError(t, err)
	assert.Equal(t, "scribble", content)

	n, _, err := store.GetNote(id)
	require.NoError(t, err)
	assert.Empty(t, n.Text, "scratchpad edits never touch notes")
}

func TestAdapter_MissingNote(t *testing.T) {
	a, _, sel := newAdapter(t)
	sel.SelectNote("gone")

	content, err := a.Content()
	require.NoError(t, err)
	assert.Empty(t, content)
	require.NoError(t, a.Change("x"))
}
