package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"supertab/internal/layout"
	"supertab/internal/ui/textutil"
)

const emptyPaneHint = "empty pane, alt+1..4 opens a tab"

// footer renders the status line and key help.
func (a *App) footer() string {
	status := a.title
	if a.moving != nil {
		status = fmt.Sprintf("moving %s → pane %s", a.moving.view, a.target)
		return Styles.Status.Render(status) + "\n" + a.help.ShortHelpView(a.keys.dragHelp())
	}
	if status == "" {
		status = "supertab"
	}
	return Styles.Status.Render(status+"  pane "+a.focus.Current) + "\n" + a.help.View(a.keys)
}

func (a *App) bodyHeight() int {
	return max(a.height-lipgloss.Height(a.footer()), 0)
}

// resize recomputes pane geometry and tells every view its content size:
// the pane minus its border and tab strip.
func (a *App) resize() {
	a.boxes = Arrange(a.ws.Contents(), Rect{W: a.width, H: a.bodyHeight()})
	for _, b := range a.boxes {
		p := a.ws.Pane(b.ID)
		if p == nil {
			continue
		}
		w, h := max(b.Rect.W-2, 0), max(b.Rect.H-3, 0)
		for _, t := range p.Tabs {
			t.View.SetSize(w, h)
		}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}
	body := a.renderNode(a.ws.root, a.width, a.bodyHeight())
	if a.modal != nil {
		body = lipgloss.Place(a.width, a.bodyHeight(), lipgloss.Center, lipgloss.Center, a.modal.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, a.footer())
}

func (a *App) renderNode(n *node, w, h int) string {
	if n.pane != nil {
		return a.renderPane(n.pane, w, h)
	}
	if len(n.children) == 0 {
		return blank(w, h)
	}
	var parts []string
	if n.split.Orientation == layout.Horizontal {
		for i, cw := range layout.Sizes(n.split, len(n.children), w) {
			if cw > 0 {
				parts = append(parts, a.renderNode(n.children[i], cw, h))
			}
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	for i, ch := range layout.Sizes(n.split, len(n.children), h) {
		if ch > 0 {
			parts = append(parts, a.renderNode(n.children[i], w, ch))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) renderPane(p *Pane, w, h int) string {
	if w < 3 || h < 3 {
		return blank(w, h)
	}
	style := Styles.Pane
	switch {
	case a.DropTarget() == p.ID:
		style = Styles.PaneDrop
	case p.ID == a.focus.Current:
		style = Styles.PaneFocused
	}
	innerW, innerH := w-2, h-2

	body := Styles.Empty.Render(emptyPaneHint)
	if tv := p.ActiveTab(); tv != nil {
		body = tv.View.View()
	}
	content := a.tabStrip(p, innerW) + "\n" + body
	return style.Render(textutil.FitLines(content, innerW, innerH))
}

// tabStrip renders the pane's tab labels on one line.
func (a *App) tabStrip(p *Pane, width int) string {
	labels := make([]string, len(p.Tabs))
	for i, t := range p.Tabs {
		label := textutil.Truncate(fmt.Sprintf("%d:%s", t.Tab.UID, t.Tab.View), a.tabWidth)
		style := Styles.Tab
		switch {
		case a.DropTarget() != "" && a.moving.from == p.ID && a.moving.uid == t.Tab.UID:
			style = Styles.TabMoving
		case i == p.Active:
			style = Styles.TabActive
		}
		labels[i] = style.Render(label)
	}
	return textutil.FitLines(strings.Join(labels, ""), width, 1)
}

func blank(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
