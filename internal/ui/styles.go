package ui

import "github.com/charmbracelet/lipgloss"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	text      = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#fafafa"}
	muted     = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}
	favorite  = lipgloss.AdaptiveColor{Light: "#F9A825", Dark: "#FFC107"}

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1)

	ActivePanelStyle = PanelStyle.
				BorderForeground(highlight)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(text)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(muted).
			MarginTop(1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(muted)

	FavoriteStyle = lipgloss.NewStyle().
			Foreground(favorite)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	OKStyle = lipgloss.NewStyle().
		Foreground(special)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1, 3).
			Align(lipgloss.Center)

	SelectedItemStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.Color("#000000"))
)

const (
	FolderIcon   = "■"
	FavoriteIcon = "★"
	HiddenIcon   = "◌"
)

// folderStyle paints the folder marker in the folder's own accent color.
func folderStyle(color string) lipgloss.Style {
	if color == "" {
		return MutedStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
