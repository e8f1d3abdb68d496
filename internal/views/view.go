// Package views holds the views a tab can host and the registry resolving
// view ids to them.
package views

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"supertab/internal/layout"
)

// View is a tab's content. It follows Bubble Tea's Init/Update/View and is
// told its size by the pane hosting it.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
	ID() layout.ViewID
}

// placeholderView stands in for ids the registry does not know.
type placeholderView struct {
	id            layout.ViewID
	hint          string
	width, height int
}

var _ View = (*placeholderView)(nil)

func (p *placeholderView) Init() tea.Cmd                  { return nil }
func (p *placeholderView) Update(tea.Msg) (View, tea.Cmd) { return p, nil }
func (p *placeholderView) SetSize(width, height int)      { p.width, p.height = width, height }
func (p *placeholderView) ID() layout.ViewID              { return p.id }

func (p *placeholderView) View() string {
	msg := "unknown view " + quoteID(p.id)
	if p.hint != "" {
		msg += "\n" + styles.Hint.Render("did you mean "+quoteID(layout.ViewID(p.hint))+"?")
	}
	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, styles.Muted.Render(msg))
}

func quoteID(id layout.ViewID) string {
	return "\"" + string(id) + "\""
}
