package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"supertab/internal/layout"
	"supertab/internal/views"
)

// KeyMap holds the workspace-level bindings. Keys not bound here go to the
// focused tab's view, so bindings use modifiers where views need letters.
type KeyMap struct {
	Quit     key.Binding
	NextPane key.Binding
	PrevPane key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	CloseTab key.Binding
	AddTab   []key.Binding // one per built-in view, see addTabViews
	Drag     key.Binding
	Drop     key.Binding
	Cancel   key.Binding
	Help     key.Binding
}

// addTabViews lists the view each AddTab binding opens, in order.
var addTabViews = []layout.ViewID{views.Effects, views.Preview, views.Timeline, views.Console}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevPane: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		NextTab:  key.NewBinding(key.WithKeys("alt+l", "alt+right"), key.WithHelp("alt+l", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("alt+h", "alt+left"), key.WithHelp("alt+h", "prev tab")),
		CloseTab: key.NewBinding(key.WithKeys("alt+w"), key.WithHelp("alt+w", "close tab")),
		Drag:     key.NewBinding(key.WithKeys("alt+d"), key.WithHelp("alt+d", "move tab")),
		Drop:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop here")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	}
	for i, id := range addTabViews {
		k := "alt+" + string(rune('1'+i))
		km.AddTab = append(km.AddTab, key.NewBinding(key.WithKeys(k), key.WithHelp(k, "new "+string(id))))
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPane, k.NextTab, k.Drag, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPane, k.PrevPane, k.NextTab, k.PrevTab, k.CloseTab},
		k.AddTab,
		{k.Drag, k.Drop, k.Cancel, k.Help, k.Quit},
	}
}

// dragHelp is shown while a tab is being dragged.
func (k KeyMap) dragHelp() []key.Binding {
	return []key.Binding{k.NextPane, k.PrevPane, k.Drop, k.Cancel}
}

var _ help.KeyMap = KeyMap{}

func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	h.Styles.FullSeparator = h.Styles.ShortSeparator
	return h
}
