package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/nzaccagnino/devnotes/internal/i18n"
)

type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Enter      key.Binding
	Edit       key.Binding
	Escape     key.Binding
	Save       key.Binding
	New        key.Binding
	NewFolder  key.Binding
	Delete     key.Binding
	Favorite   key.Binding
	Hide       key.Binding
	Restore    key.Binding
	Move       key.Binding
	Rename     key.Binding
	EmptyTrash key.Binding
	Copy       key.Binding
	Quit       key.Binding
	Help       key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
}

func NewKeyMap() KeyMap {
	t := i18n.T()
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", t.KeyUp),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", t.KeyDown),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", t.KeyEnter),
		),
		Edit: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", t.KeyEdit),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", t.KeyEscape),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", t.KeySave),
		),
		New: key.NewBinding(
			key.WithKeys("ctrl+n", "n"),
			key.WithHelp("n", t.KeyNew),
		),
		NewFolder: key.NewBinding(
			key.WithKeys("ctrl+d", "N"),
			key.WithHelp("N", t.KeyNewFolder),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", t.KeyDelete),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", t.KeyFavorite),
		),
		Hide: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", t.KeyHide),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", t.KeyRestore),
		),
		Move: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", t.KeyMove),
		),
		Rename: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", t.KeyRename),
		),
		EmptyTrash: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", t.KeyEmptyTrash),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", t.KeyCopy),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("Ctrl+Q", t.KeyQuit),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", t.KeyHelp),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", t.KeyTab),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", t.KeyShiftTab),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Edit, k.New, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Tab, k.ShiftTab},
		{k.Edit, k.Escape, k.Save, k.Copy},
		{k.New, k.Favorite, k.Hide, k.Delete, k.Restore, k.Move, k.EmptyTrash},
		{k.NewFolder, k.Rename, k.Help, k.Quit},
	}
}
