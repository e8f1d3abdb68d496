package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the workspace.
const (
	ColorAccent    = "86"  // titles, focused pane border
	ColorHighlight = "205" // active tab, drop target
	ColorMuted     = "241" // inactive tabs, hints
	ColorText      = "252"
	ColorBorder    = "238"
)

// Styles contains the shared style definitions for panes and tab strips.
var Styles = struct {
	Pane        lipgloss.Style // unfocused pane border
	PaneFocused lipgloss.Style
	PaneDrop    lipgloss.Style // drop target while dragging

	Tab       lipgloss.Style // inactive tab label
	TabActive lipgloss.Style
	TabMoving lipgloss.Style // the tab being dragged

	Empty  lipgloss.Style // empty pane hint
	Status lipgloss.Style // bottom status line
}{
	Pane: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)),
	PaneFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)),
	PaneDrop: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),

	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	TabActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorBorder)).
		Bold(true).
		Padding(0, 1),
	TabMoving: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Underline(true).
		Padding(0, 1),

	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
}
