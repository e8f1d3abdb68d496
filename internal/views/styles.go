package views

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = "86"
	colorMuted  = "241"
	colorDanger = "196"
	colorText   = "252"
)

var styles = struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Hint     lipgloss.Style
	Error    lipgloss.Style
	Playhead lipgloss.Style
	Track    lipgloss.Style
	Played   lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
	Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)).Italic(true),
	Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorDanger)),
	Playhead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)),
	Track:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
	Played:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)),
}
