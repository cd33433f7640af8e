package ui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/nzaccagnino/devnotes/internal/config"
	"github.com/nzaccagnino/devnotes/internal/editor"
	"github.com/nzaccagnino/devnotes/internal/i18n"
	"github.com/nzaccagnino/devnotes/internal/nav"
	"github.com/nzaccagnino/devnotes/internal/notes"
	"github.com/nzaccagnino/devnotes/internal/storage"
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
	ModeNewFolder
	ModeRenameFolder
	ModeConfirmDeleteFolder
	ModeConfirmDeleteNote
	ModeConfirmEmptyTrash
	ModeMoveNote
	ModeHelp
)

type Panel int

const (
	PanelSidebar Panel = iota
	PanelList
	PanelContent
)

// sidebarViews are the fixed entries above the folder list.
var sidebarViews = []notes.View{notes.ViewScratchpad, notes.ViewNotes, notes.ViewFavorites, notes.ViewTrash}

type Model struct {
	store  *notes.Store
	editor *editor.Adapter
	sel    *nav.Selector
	config *config.Config
	logger zerolog.Logger

	folders []notes.Folder
	notes   []notes.Note
	counts  notes.Counts

	sidebarCursor int
	cursor        int
	listOffset    int
	moveCursor    int

	mode        Mode
	activePanel Panel

	textarea  textarea.Model
	textinput textinput.Model
	help      help.Model
	keys      KeyMap

	width  int
	height int

	dirty   bool
	saveSeq int

	// target of the open dialog
	targetFolder notes.Folder
	targetNote   notes.Note

	status string
	err    error
}

// ChangedMsg tells the program that a stored collection was rewritten,
// possibly by another process sharing the same storage.
type ChangedMsg struct {
	Key string
}

type dataLoadedMsg struct {
	vc      notes.ViewContext
	folders []notes.Folder
	notes   []notes.Note
	counts  notes.Counts
}
type noteCreatedMsg struct {
	id   string
	data dataLoadedMsg
}
type autosaveMsg int
type statusMsg string
type errMsg error

func NewModel(store *notes.Store, pad *editor.Scratchpad, cfg *config.Config, logger zerolog.Logger) Model {
	t := i18n.T()

	lipgloss.SetHasDarkBackground(cfg.Theme != "light")

	ti := textinput.New()
	ti.Placeholder = t.FolderPlaceholder
	ti.CharLimit = 128

	ta := textarea.New()
	ta.Placeholder = t.NotePlaceholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	sel := nav.New()

	return Model{
		store:         store,
		editor:        editor.NewAdapter(store, pad, sel),
		sel:           sel,
		config:        cfg,
		logger:        logger,
		keys:          NewKeyMap(),
		textinput:     ti,
		textarea:      ta,
		help:          help.New(),
		activePanel:   PanelSidebar,
		sidebarCursor: 1,
	}
}

// Forward delivers store and scratchpad changes to p as ChangedMsg until the
// returned func is called. Listeners run inside store calls made from
// commands or from Update, so the send must not block the caller.
func Forward(p *tea.Program, store *notes.Store, pad *editor.Scratchpad) func() {
	send := func(key string) {
		go p.Send(ChangedMsg{Key: key})
	}
	stopStore := store.Subscribe(func(c notes.Change) { send(c.Key) })
	stopPad := pad.Watch(func() { send(storage.KeyScratchpad) })
	return func() {
		stopStore()
		stopPad()
	}
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) loader() func() tea.Msg {
	vc := m.sel.Context()
	store := m.store
	return func() tea.Msg {
		folders, err := store.Folders()
		if err != nil {
			return errMsg(err)
		}
		list, err := store.List(vc)
		if err != nil {
			return errMsg(err)
		}
		counts, err := store.CountByView()
		if err != nil {
			return errMsg(err)
		}
		return dataLoadedMsg{vc: vc, folders: folders, notes: list, counts: counts}
	}
}

func (m Model) load() tea.Cmd {
	return m.loader()
}

// run performs a store mutation off the event loop and reloads afterwards.
func (m Model) run(fn func() error) tea.Cmd {
	load := m.loader()
	return func() tea.Msg {
		if err := fn(); err != nil {
			return errMsg(err)
		}
		return load()
	}
}

func (m Model) createNote() tea.Cmd {
	vc := m.sel.Context()
	store := m.store
	load := m.loader()
	return func() tea.Msg {
		id, err := store.CreateNote(vc)
		if err != nil {
			return errMsg(err)
		}
		data, ok := load().(dataLoadedMsg)
		if !ok {
			return nil
		}
		return noteCreatedMsg{id: id, data: data}
	}
}

func (m Model) autosave() tea.Cmd {
	seq := m.saveSeq
	return tea.Tick(m.config.AutoSaveInterval, func(time.Time) tea.Msg {
		return autosaveMsg(seq)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.textarea.SetWidth(m.contentWidth() - 4)
		m.textarea.SetHeight(m.contentHeight() - 2)

	case ChangedMsg:
		return m, m.load()

	case dataLoadedMsg:
		m.applyData(msg)

	case noteCreatedMsg:
		m.sel.SelectNote(msg.id)
		m.applyData(msg.data)
		for i, n := range m.notes {
			if n.ID == msg.id {
				m.cursor = i
				m.activePanel = PanelContent
				return m, m.startEditing()
			}
		}

	case autosaveMsg:
		if int(msg) == m.saveSeq {
			m.flush()
		}

	case statusMsg:
		m.status = string(msg)
		m.err = nil

	case errMsg:
		m.err = msg

	case tea.KeyMsg:
		switch m.mode {
		case ModeEditing:
			return m.handleEditingKeys(msg)
		case ModeNewFolder, ModeRenameFolder:
			return m.handleFolderNameKeys(msg)
		case ModeConfirmDeleteFolder, ModeConfirmDeleteNote, ModeConfirmEmptyTrash:
			return m.handleConfirmKeys(msg)
		case ModeMoveNote:
			return m.handleMoveKeys(msg)
		case ModeHelp:
			if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Help) {
				m.mode = ModeNormal
			}
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

func (m *Model) applyData(msg dataLoadedMsg) {
	if msg.vc != m.sel.Context() {
		return
	}
	m.folders = msg.folders
	m.notes = msg.notes
	m.counts = msg.counts

	if m.sidebarCursor >= m.sidebarLen() {
		m.sidebarCursor = m.sidebarLen() - 1
	}
	if m.cursor >= len(m.notes) {
		m.cursor = max(len(m.notes)-1, 0)
	}
	if m.listOffset > m.cursor {
		m.listOffset = m.cursor
	}

	if id := m.sel.FolderID(); id != "" && !m.hasFolder(id) {
		m.sel.ForgetFolder(id)
	}
	if m.mode != ModeEditing {
		m.syncEditor()
	}
}

func (m Model) hasFolder(id string) bool {
	for _, f := range m.folders {
		if f.ID == id {
			return true
		}
	}
	return false
}

func (m *Model) syncEditor() {
	content, err := m.editor.Content()
	if err != nil {
		m.err = err
		return
	}
	m.textarea.SetValue(content)
	m.dirty = false
}

// flush writes pending editor text through the adapter.
func (m *Model) flush() {
	if !m.dirty {
		return
	}
	if err := m.editor.Change(m.textarea.Value()); err != nil {
		m.err = err
		return
	}
	m.dirty = false
	m.status = i18n.T().Saved
}

func (m *Model) startEditing() tea.Cmd {
	if !m.editor.Editable() || m.sel.Current() == notes.ViewTrash {
		return nil
	}
	m.mode = ModeEditing
	m.activePanel = PanelContent
	return m.textarea.Focus()
}

func (m Model) sidebarLen() int {
	return len(sidebarViews) + len(m.folders)
}

func (m Model) sidebarFolder(i int) (notes.Folder, bool) {
	if i < len(sidebarViews) || i-len(sidebarViews) >= len(m.folders) {
		return notes.Folder{}, false
	}
	return m.folders[i-len(sidebarViews)], true
}

func (m Model) selectedHidden() bool {
	id := m.sel.SelectedNote()
	for _, n := range m.notes {
		if n.ID == id {
			return n.IsHidden
		}
	}
	return false
}

func (m Model) currentNote() (notes.Note, bool) {
	if m.cursor >= 0 && m.cursor < len(m.notes) {
		return m.notes[m.cursor], true
	}
	return notes.Note{}, false
}

// openSidebarItem switches the view to the entry under the sidebar cursor.
func (m Model) openSidebarItem() (tea.Model, tea.Cmd) {
	m.flush()
	if f, ok := m.sidebarFolder(m.sidebarCursor); ok {
		m.sel.SelectFolder(f.ID)
	} else {
		m.sel.Select(sidebarViews[m.sidebarCursor])
	}
	m.cursor = 0
	m.listOffset = 0
	m.notes = nil

	if m.sel.Current() == notes.ViewScratchpad {
		m.activePanel = PanelContent
		m.syncEditor()
		return m, nil
	}
	m.activePanel = PanelList
	return m, m.load()
}

func (m *Model) selectCursorNote() {
	if n, ok := m.currentNote(); ok {
		m.sel.SelectNote(n.ID)
	} else {
		m.sel.SelectNote("")
	}
	m.syncEditor()
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := i18n.T()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.flush()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, m.keys.Tab):
		m.activePanel = (m.activePanel + 1) % 3

	case key.Matches(msg, m.keys.ShiftTab):
		m.activePanel = (m.activePanel + 2) % 3

	case key.Matches(msg, m.keys.Up):
		switch m.activePanel {
		case PanelSidebar:
			if m.sidebarCursor > 0 {
				m.sidebarCursor--
			}
		case PanelList:
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.listOffset {
					m.listOffset = m.cursor
				}
				m.selectCursorNote()
			}
		}

	case key.Matches(msg, m.keys.Down):
		switch m.activePanel {
		case PanelSidebar:
			if m.sidebarCursor < m.sidebarLen()-1 {
				m.sidebarCursor++
			}
		case PanelList:
			if m.cursor < len(m.notes)-1 {
				m.cursor++
				if h := m.listHeight(); m.cursor >= m.listOffset+h {
					m.listOffset = m.cursor - h + 1
				}
				m.selectCursorNote()
			}
		}

	case key.Matches(msg, m.keys.Enter):
		switch m.activePanel {
		case PanelSidebar:
			return m.openSidebarItem()
		case PanelList:
			if _, ok := m.currentNote(); ok {
				m.selectCursorNote()
				m.activePanel = PanelContent
			}
		}

	case key.Matches(msg, m.keys.Edit):
		if m.activePanel == PanelList {
			m.selectCursorNote()
		}
		return m, m.startEditing()

	case key.Matches(msg, m.keys.New):
		if m.sel.Current() == notes.ViewScratchpad || m.sel.Current() == notes.ViewTrash {
			return m, nil
		}
		m.flush()
		return m, m.createNote()

	case key.Matches(msg, m.keys.NewFolder):
		m.mode = ModeNewFolder
		m.textinput.SetValue("")
		m.textinput.Placeholder = t.FolderPlaceholder
		return m, m.textinput.Focus()

	case key.Matches(msg, m.keys.Rename):
		if f, ok := m.sidebarFolder(m.sidebarCursor); ok && m.activePanel == PanelSidebar {
			m.targetFolder = f
			m.mode = ModeRenameFolder
			m.textinput.SetValue(f.Name)
			return m, m.textinput.Focus()
		}

	case key.Matches(msg, m.keys.Delete):
		if m.activePanel == PanelSidebar {
			if f, ok := m.sidebarFolder(m.sidebarCursor); ok {
				m.targetFolder = f
				m.mode = ModeConfirmDeleteFolder
			}
			return m, nil
		}
		n, ok := m.currentNote()
		if !ok {
			return m, nil
		}
		if n.IsTrash {
			m.targetNote = n
			m.mode = ModeConfirmDeleteNote
			return m, nil
		}
		m.dropSelection(n.ID)
		store := m.store
		return m, m.run(func() error { return store.TrashNote(n.ID) })

	case key.Matches(msg, m.keys.Restore):
		if n, ok := m.currentNote(); ok && n.IsTrash {
			m.dropSelection(n.ID)
			store := m.store
			return m, m.run(func() error { return store.RestoreNote(n.ID) })
		}

	case key.Matches(msg, m.keys.Favorite):
		if n, ok := m.currentNote(); ok {
			store := m.store
			return m, m.run(func() error { return store.ToggleFavorite(n.ID) })
		}

	case key.Matches(msg, m.keys.Hide):
		if n, ok := m.currentNote(); ok {
			store := m.store
			return m, m.run(func() error { return store.ToggleHidden(n.ID) })
		}

	case key.Matches(msg, m.keys.Move):
		if n, ok := m.currentNote(); ok && !n.IsTrash {
			m.targetNote = n
			m.moveCursor = 0
			for i, f := range m.folders {
				if f.ID == n.FolderID {
					m.moveCursor = i + 1
				}
			}
			m.mode = ModeMoveNote
		}

	case key.Matches(msg, m.keys.EmptyTrash):
		if m.sel.Current() == notes.ViewTrash && m.counts.Trash > 0 {
			m.mode = ModeConfirmEmptyTrash
		}

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyToClipboard(m.textarea.Value())
	}

	return m, nil
}

// dropSelection clears the selected note when it is about to leave the
// current listing.
func (m *Model) dropSelection(id string) {
	if m.sel.SelectedNote() == id {
		m.sel.SelectNote("")
		m.textarea.SetValue("")
	}
}

func (m Model) copyToClipboard(s string) tea.Cmd {
	logger := m.logger
	return func() tea.Msg {
		if err := clipboard.WriteAll(s); err != nil {
			logger.Warn().Err(err).Msg("clipboard write failed")
			return statusMsg(i18n.T().CopyError)
		}
		return statusMsg(i18n.T().Copied)
	}
}

func (m Model) handleEditingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.textarea.Blur()
		m.flush()
		if m.sel.Current() != notes.ViewScratchpad {
			m.activePanel = PanelList
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		m.flush()
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		m.flush()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		m.textarea.InsertString("    ")

	default:
		m.textarea, cmd = m.textarea.Update(msg)
	}

	m.dirty = true
	if m.config.AutoSaveInterval <= 0 {
		m.flush()
		return m, cmd
	}
	m.saveSeq++
	return m, tea.Batch(cmd, m.autosave())
}

func (m Model) handleFolderNameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.textinput.Blur()

	case key.Matches(msg, m.keys.Enter):
		name := m.textinput.Value()
		mode := m.mode
		m.mode = ModeNormal
		m.textinput.Blur()
		store := m.store
		if mode == ModeRenameFolder {
			id := m.targetFolder.ID
			return m, m.run(func() error { return store.RenameFolder(id, name) })
		}
		return m, m.run(func() error { return store.CreateFolder(name) })

	default:
		m.textinput, cmd = m.textinput.Update(msg)
	}

	return m, cmd
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		mode := m.mode
		m.mode = ModeNormal
		store := m.store
		switch mode {
		case ModeConfirmDeleteFolder:
			id := m.targetFolder.ID
			m.sel.ForgetFolder(id)
			return m, m.run(func() error { return store.DeleteFolder(id) })
		case ModeConfirmDeleteNote:
			id := m.targetNote.ID
			m.dropSelection(id)
			return m, m.run(func() error { return store.DeleteNotesPermanently([]string{id}) })
		case ModeConfirmEmptyTrash:
			m.sel.SelectNote("")
			m.textarea.SetValue("")
			return m, m.run(store.EmptyTrash)
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
		m.targetFolder = notes.Folder{}
		m.targetNote = notes.Note{}
	}
	return m, nil
}

func (m Model) handleMoveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.moveCursor > 0 {
			m.moveCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.moveCursor < len(m.folders) {
			m.moveCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		m.mode = ModeNormal
		folderID := ""
		if m.moveCursor > 0 {
			folderID = m.folders[m.moveCursor-1].ID
		}
		id := m.targetNote.ID
		store := m.store
		return m, m.run(func() error { return store.MoveNoteToFolder(id, folderID) })
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
	}
	return m, nil
}
