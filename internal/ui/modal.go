package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// modalStyles contains shared style definitions for modals.
var modalStyles = struct {
	Box     lipgloss.Style // warning box (red border)
	Title   lipgloss.Style
	Label   lipgloss.Style
	Help    lipgloss.Style // dim gray
	Details lipgloss.Style // orange
}{
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(1, 2),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196")),
	Label: lipgloss.NewStyle(),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color("208")),
}

// dismissModalMsg closes the open modal without acting.
type dismissModalMsg struct{}

// closeTabMsg closes a tab after confirmation.
type closeTabMsg struct {
	pane string
	uid  int
}

// ConfirmModal asks before a destructive action. Enter or y confirms; Esc
// cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string // optional warning line
	OnConfirm func() tea.Msg
}

// NewConfirmModal creates a confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{Title: title, Label: label, OnConfirm: onConfirm}
}

// WithDetails adds a warning line to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// Update handles a key press while the modal is open.
func (m *ConfirmModal) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "n":
		return func() tea.Msg { return dismissModalMsg{} }
	case "enter", "y":
		if m.OnConfirm != nil {
			return m.OnConfirm
		}
		return func() tea.Msg { return dismissModalMsg{} }
	}
	return nil
}

// View renders the modal box.
func (m *ConfirmModal) View() string {
	content := modalStyles.Title.Render(m.Title) + "\n\n"
	content += modalStyles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + modalStyles.Details.Render(m.Details)
	}
	content += "\n\n" + modalStyles.Help.Render("y/Enter: confirm  Esc: cancel")
	return modalStyles.Box.Render(content)
}
