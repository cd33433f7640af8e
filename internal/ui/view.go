package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nzaccagnino/devnotes/internal/i18n"
	"github.com/nzaccagnino/devnotes/internal/notes"
)

func (m Model) sidebarWidth() int {
	return int(float64(m.width) * 0.22)
}

func (m Model) listWidth() int {
	return int(float64(m.width) * 0.28)
}

func (m Model) contentWidth() int {
	return m.width - m.sidebarWidth() - m.listWidth()
}

func (m Model) contentHeight() int {
	return m.height - 5
}

func (m Model) listHeight() int {
	return max(m.contentHeight()-2, 1)
}

func viewLabel(v notes.View) string {
	t := i18n.T()
	switch v {
	case notes.ViewScratchpad:
		return t.ViewScratchpad
	case notes.ViewFavorites:
		return t.ViewFavorites
	case notes.ViewTrash:
		return t.ViewTrash
	case notes.ViewFolder:
		return t.Folders
	default:
		return t.ViewNotes
	}
}

func (m Model) viewCount(v notes.View) (int, bool) {
	switch v {
	case notes.ViewNotes:
		return m.counts.Notes, true
	case notes.ViewFavorites:
		return m.counts.Favorites, true
	case notes.ViewTrash:
		return m.counts.Trash, true
	}
	return 0, false
}

func (m Model) View() string {
	t := i18n.T()

	if m.width == 0 {
		return t.Loading
	}

	switch m.mode {
	case ModeHelp:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderHelp())
	case ModeNewFolder, ModeRenameFolder:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderInputDialog())
	case ModeConfirmDeleteFolder, ModeConfirmDeleteNote, ModeConfirmEmptyTrash:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderConfirmDialog())
	case ModeMoveNote:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderMoveDialog())
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.renderBody(), m.renderStatus())
}

func (m Model) renderHeader() string {
	title := viewLabel(m.sel.Current())
	if m.sel.Current() == notes.ViewFolder {
		for _, f := range m.folders {
			if f.ID == m.sel.FolderID() {
				title = folderStyle(f.Color).Render(FolderIcon) + " " + f.Name
			}
		}
	}
	return HeaderStyle.Width(m.width - 2).Render("DevNotes · " + title)
}

func (m Model) renderBody() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.renderList(), m.renderContent())
}

func (m Model) panelStyle(p Panel) lipgloss.Style {
	if m.activePanel == p {
		return ActivePanelStyle
	}
	return PanelStyle
}

func (m Model) renderSidebar() string {
	t := i18n.T()
	width := m.sidebarWidth() - 4

	var lines []string
	for i, v := range sidebarViews {
		label := viewLabel(v)
		if n, ok := m.viewCount(v); ok {
			label = fmt.Sprintf("%s (%d)", label, n)
		}
		active := m.sel.Current() == v
		lines = append(lines, m.sidebarLine(i, truncate(label, width), active))
	}

	lines = append(lines, SectionStyle.Render(t.Folders))
	if len(m.folders) == 0 {
		lines = append(lines, MutedStyle.Render(t.NoFolders))
	}
	for i, f := range m.folders {
		label := fmt.Sprintf("%s (%d)", f.Name, m.counts.Folders[f.ID])
		line := folderStyle(f.Color).Render(FolderIcon) + " " + truncate(label, width-2)
		active := m.sel.Current() == notes.ViewFolder && m.sel.FolderID() == f.ID
		lines = append(lines, m.sidebarLine(len(sidebarViews)+i, line, active))
	}

	return m.panelStyle(PanelSidebar).
		Width(m.sidebarWidth() - 2).
		Height(m.contentHeight()).
		Render(strings.Join(lines, "\n"))
}

func (m Model) sidebarLine(i int, label string, active bool) string {
	switch {
	case i == m.sidebarCursor && m.activePanel == PanelSidebar:
		return SelectedItemStyle.Render("▶ " + label)
	case active:
		return LabelStyle.Render("• " + label)
	default:
		return "  " + label
	}
}

func (m Model) renderList() string {
	t := i18n.T()
	style := m.panelStyle(PanelList).Width(m.listWidth() - 2).Height(m.contentHeight())

	if m.sel.Current() == notes.ViewScratchpad {
		return style.Render("")
	}
	if len(m.notes) == 0 {
		return style.Render(MutedStyle.Render(t.EmptyList))
	}

	maxLen := m.listWidth() - 10
	var items []string
	for i := m.listOffset; i < len(m.notes) && i < m.listOffset+m.listHeight(); i++ {
		n := m.notes[i]
		title := notes.Title(n)
		if title == "" {
			title = t.Untitled
		}
		title = truncate(title, maxLen)

		marker := " "
		switch {
		case n.IsFav:
			marker = FavoriteStyle.Render(FavoriteIcon)
		case n.IsHidden:
			marker = MutedStyle.Render(HiddenIcon)
		}

		if i == m.cursor {
			items = append(items, marker+SelectedItemStyle.Render(fmt.Sprintf(" %-*s ", maxLen, title)))
		} else {
			items = append(items, marker+fmt.Sprintf(" %-*s ", maxLen, title))
		}
	}

	return style.Render(strings.Join(items, "\n"))
}

func (m Model) renderContent() string {
	t := i18n.T()
	style := m.panelStyle(PanelContent).Width(m.contentWidth() - 2).Height(m.contentHeight())

	switch {
	case m.mode == ModeEditing:
		return style.Render(m.textarea.View())
	case m.sel.Current() == notes.ViewScratchpad || m.sel.SelectedNote() != "":
		body := m.textarea.Value()
		if m.selectedHidden() {
			body = MutedStyle.Render(HiddenIcon+" "+t.Hidden) + "\n\n" + body
		}
		return style.Render(body)
	default:
		return style.Render(MutedStyle.Render(t.NoNoteSelected))
	}
}

func (m Model) renderStatus() string {
	t := i18n.T()

	modeStr := t.ModeNormal
	if m.mode == ModeEditing {
		modeStr = t.ModeEdit
	}

	left := fmt.Sprintf(" %s | %d %s", modeStr, len(m.notes), t.Notes)
	if m.dirty {
		left += " | * " + t.Unsaved
	}
	switch {
	case m.err != nil:
		left += " | " + ErrorStyle.Render(t.Error+": "+m.err.Error())
	case m.status != "":
		left += " | " + OKStyle.Render(m.status)
	}

	right := m.help.View(m.keys)

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 0 {
		padding = 0
	}

	return StatusBarStyle.Render(left + strings.Repeat(" ", padding) + right)
}

func (m Model) renderInputDialog() string {
	t := i18n.T()

	title := t.NewFolder
	if m.mode == ModeRenameFolder {
		title = t.RenameFolder
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		TitleStyle.Render(title),
		"",
		m.textinput.View(),
		"",
		MutedStyle.Render(t.EnterConfirm+"  "+t.EscCancel),
	)

	return DialogStyle.Width(44).Render(content)
}

func (m Model) renderConfirmDialog() string {
	t := i18n.T()

	var title, message string
	switch m.mode {
	case ModeConfirmDeleteFolder:
		title = t.DeleteFolder
		message = fmt.Sprintf(t.DeleteFolderPrompt, m.targetFolder.Name)
	case ModeConfirmDeleteNote:
		title = t.DeleteNote
		name := notes.Title(m.targetNote)
		if name == "" {
			name = t.Untitled
		}
		message = fmt.Sprintf(t.DeleteNotePrompt, truncate(name, 30))
	case ModeConfirmEmptyTrash:
		title = t.EmptyTrash
		message = fmt.Sprintf(t.EmptyTrashPrompt, m.counts.Trash)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		TitleStyle.Render(title),
		"",
		message,
		"",
		MutedStyle.Render("[Y] "+t.Yes+"  [N] "+t.No),
	)

	return DialogStyle.Width(50).Render(content)
}

func (m Model) renderMoveDialog() string {
	t := i18n.T()

	options := []string{t.NoFolder}
	for _, f := range m.folders {
		options = append(options, folderStyle(f.Color).Render(FolderIcon)+" "+f.Name)
	}
	for i := range options {
		if i == m.moveCursor {
			options[i] = "▶ " + options[i]
		} else {
			options[i] = "  " + options[i]
		}
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render(t.MoveNote),
		"",
		strings.Join(options, "\n"),
		"",
		MutedStyle.Render(t.EnterConfirm+"  "+t.EscCancel),
	)

	return DialogStyle.Width(44).Align(lipgloss.Left).Render(content)
}

func (m Model) renderHelp() string {
	t := i18n.T()
	k := m.keys

	var b strings.Builder
	section := func(title string, rows ...[2]string) {
		b.WriteString(LabelStyle.Render(title) + "\n")
		for _, r := range rows {
			b.WriteString(fmt.Sprintf("  %-12s %s\n", r[0], r[1]))
		}
		b.WriteString("\n")
	}

	section(t.HelpNavigation,
		[2]string{k.Up.Help().Key, t.HelpUp},
		[2]string{k.Down.Help().Key, t.HelpDown},
		[2]string{k.Enter.Help().Key, t.HelpOpen},
		[2]string{k.Tab.Help().Key, t.HelpNextPanel},
		[2]string{k.ShiftTab.Help().Key, t.HelpPrevPanel},
	)
	section(t.HelpEditing,
		[2]string{k.Edit.Help().Key, t.HelpEdit},
		[2]string{k.Escape.Help().Key, t.HelpExitEdit},
		[2]string{k.Save.Help().Key, t.HelpSave},
		[2]string{k.Copy.Help().Key, t.HelpCopy},
	)
	section(t.HelpNotes,
		[2]string{k.New.Help().Key, t.HelpNew},
		[2]string{k.Favorite.Help().Key, t.HelpFavorite},
		[2]string{k.Hide.Help().Key, t.HelpHide},
		[2]string{k.Delete.Help().Key, t.HelpTrash},
		[2]string{k.Restore.Help().Key, t.HelpRestore},
		[2]string{k.Move.Help().Key, t.HelpMove},
		[2]string{k.EmptyTrash.Help().Key, t.HelpEmptyTrash},
	)
	section(t.HelpFolders,
		[2]string{k.NewFolder.Help().Key, t.HelpNewFolder},
		[2]string{k.Rename.Help().Key, t.HelpRenameFolder},
		[2]string{k.Delete.Help().Key, t.HelpDeleteFolder},
	)
	section(t.HelpGeneral,
		[2]string{k.Help.Help().Key, t.HelpHelp},
		[2]string{k.Quit.Help().Key, t.HelpExit},
	)

	b.WriteString(MutedStyle.Render(t.HelpClose))

	helpStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(highlight).
		Padding(1, 2).
		Align(lipgloss.Left)

	return helpStyle.Render(b.String())
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 {
		return ""
	}
	if len(r) <= limit {
		return s
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}
