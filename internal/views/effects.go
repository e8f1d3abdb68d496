package views

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"supertab/internal/layout"
)

// Effect is one entry in the effects stack.
type Effect struct {
	Name    string
	Enabled bool
}

// DefaultEffects returns the effects stack a new effects tab starts with.
func DefaultEffects() []Effect {
	return []Effect{
		{Name: "Color grade", Enabled: true},
		{Name: "Vignette"},
		{Name: "Bloom"},
		{Name: "Chromatic aberration"},
		{Name: "Film grain"},
	}
}

type effectItem struct{ Effect }

func (e effectItem) FilterValue() string { return e.Name }
func (e effectItem) Title() string       { return e.Name }
func (e effectItem) Description() string {
	if e.Enabled {
		return "enabled"
	}
	return "disabled"
}

// EffectsView lists the effect stack; space toggles the selected effect.
type EffectsView struct {
	list list.Model
}

var _ View = (*EffectsView)(nil)

// NewEffectsView creates an effects view over effects.
func NewEffectsView(effects []Effect) *EffectsView {
	items := make([]list.Item, len(effects))
	for i, e := range effects {
		items[i] = effectItem{e}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Effects"
	l.Styles.Title = styles.Title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return &EffectsView{list: l}
}

func (v *EffectsView) ID() layout.ViewID { return Effects }
func (v *EffectsView) Init() tea.Cmd     { return nil }

func (v *EffectsView) SetSize(width, height int) {
	v.list.SetSize(width, height)
}

// Effects returns the current stack.
func (v *EffectsView) Effects() []Effect {
	items := v.list.Items()
	out := make([]Effect, len(items))
	for i, it := range items {
		out[i] = it.(effectItem).Effect
	}
	return out
}

// Selected returns the index of the highlighted effect.
func (v *EffectsView) Selected() int {
	return v.list.Index()
}

func (v *EffectsView) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == " " {
		idx := v.list.Index()
		if it, ok := v.list.SelectedItem().(effectItem); ok {
			it.Enabled = !it.Enabled
			return v, v.list.SetItem(idx, it)
		}
		return v, nil
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *EffectsView) View() string {
	return v.list.View()
}
