package ui

import (
	"fmt"

	"supertab/internal/layout"
	"supertab/internal/views"
)

// TabView is a live tab: its contents-tree entry and the view it hosts.
type TabView struct {
	Tab  layout.Tab
	View views.View
}

// Pane is a live tab pane of the workspace.
type Pane struct {
	ID     string
	Path   layout.Path
	Tabs   []TabView
	Active int // index into Tabs; 0 when empty
}

// ActiveTab returns the selected tab, or nil for an empty pane.
func (p *Pane) ActiveTab() *TabView {
	if len(p.Tabs) == 0 {
		return nil
	}
	return &p.Tabs[p.Active]
}

func (p *Pane) nextUID() int {
	next := 0
	for _, t := range p.Tabs {
		if t.Tab.UID >= next {
			next = t.Tab.UID + 1
		}
	}
	return next
}

func (p *Pane) indexOf(uid int) int {
	for i, t := range p.Tabs {
		if t.Tab.UID == uid {
			return i
		}
	}
	return -1
}

// node mirrors the contents tree with live panes at the leaves.
type node struct {
	split    layout.SplitSpec
	children []*node
	pane     *Pane // nil for split nodes
}

// Workspace is the mutable, rendered form of a contents tree. The tree
// shape is fixed; tabs can be added, closed and moved between panes.
type Workspace struct {
	root     *node
	panes    map[string]*Pane
	order    []string
	registry *views.Registry
}

// NewWorkspace builds live panes for c, creating one view per tab.
func NewWorkspace(c layout.Contents, registry *views.Registry) *Workspace {
	w := &Workspace{panes: make(map[string]*Pane), registry: registry}
	w.root = w.build(c, nil)
	return w
}

func (w *Workspace) build(c layout.Contents, path layout.Path) *node {
	switch v := c.(type) {
	case *layout.SplitPane:
		n := &node{split: v.Split}
		for i, child := range v.Panes {
			n.children = append(n.children, w.build(child, path.Child(i)))
		}
		return n
	case *layout.TabPane:
		p := &Pane{ID: path.String(), Path: path}
		for _, t := range v.Tabs {
			p.Tabs = append(p.Tabs, TabView{Tab: t, View: w.registry.Build(t.View)})
		}
		w.panes[p.ID] = p
		w.order = append(w.order, p.ID)
		return &node{pane: p}
	default:
		// Unknown node types render as an empty pane.
		return w.build(&layout.TabPane{}, path)
	}
}

// PaneIDs returns tab pane ids in pre-order.
func (w *Workspace) PaneIDs() []string {
	return append([]string(nil), w.order...)
}

// Pane returns the pane with id, or nil.
func (w *Workspace) Pane(id string) *Pane {
	return w.panes[id]
}

// Views returns every live view.
func (w *Workspace) Views() []views.View {
	var out []views.View
	for _, id := range w.order {
		for _, t := range w.panes[id].Tabs {
			out = append(out, t.View)
		}
	}
	return out
}

func (w *Workspace) pane(id string) (*Pane, error) {
	p, ok := w.panes[id]
	if !ok {
		return nil, fmt.Errorf("pane %q: %w", id, ErrNoSuchPane)
	}
	return p, nil
}

// CycleTab moves the active tab of pane id by delta, wrapping around.
func (w *Workspace) CycleTab(id string, delta int) error {
	p, err := w.pane(id)
	if err != nil {
		return err
	}
	n := len(p.Tabs)
	if n == 0 {
		return nil
	}
	p.Active = ((p.Active+delta)%n + n) % n
	return nil
}

// SelectTab activates the tab with uid in pane id.
func (w *Workspace) SelectTab(id string, uid int) error {
	p, err := w.pane(id)
	if err != nil {
		return err
	}
	idx := p.indexOf(uid)
	if idx < 0 {
		return fmt.Errorf("pane %q tab %d: %w", id, uid, ErrNoSuchTab)
	}
	p.Active = idx
	return nil
}

// AddTab appends a new tab showing view to pane id and activates it. The
// new uid is one past the largest uid in the pane.
func (w *Workspace) AddTab(id string, view layout.ViewID) (TabView, error) {
	p, err := w.pane(id)
	if err != nil {
		return TabView{}, err
	}
	tv := TabView{Tab: layout.Tab{UID: p.nextUID(), View: view}, View: w.registry.Build(view)}
	p.Tabs = append(p.Tabs, tv)
	p.Active = len(p.Tabs) - 1
	return tv, nil
}

// CloseTab removes the tab with uid from pane id. The pane may become empty.
func (w *Workspace) CloseTab(id string, uid int) (TabView, error) {
	p, err := w.pane(id)
	if err != nil {
		return TabView{}, err
	}
	idx := p.indexOf(uid)
	if idx < 0 {
		return TabView{}, fmt.Errorf("pane %q tab %d: %w", id, uid, ErrNoSuchTab)
	}
	closed := p.Tabs[idx]
	p.Tabs = append(p.Tabs[:idx], p.Tabs[idx+1:]...)
	if p.Active >= len(p.Tabs) {
		p.Active = max(len(p.Tabs)-1, 0)
	} else if p.Active > idx {
		p.Active--
	}
	return closed, nil
}

// MoveTab moves the tab with uid from pane from to the end of pane to,
// keeping its view. The tab gets a fresh uid in the destination pane.
// Moving within the same pane moves the tab to the end.
func (w *Workspace) MoveTab(from string, uid int, to string) (TabView, error) {
	dst, err := w.pane(to)
	if err != nil {
		return TabView{}, err
	}
	tv, err := w.CloseTab(from, uid)
	if err != nil {
		return TabView{}, err
	}
	tv.Tab.UID = dst.nextUID()
	dst.Tabs = append(dst.Tabs, tv)
	dst.Active = len(dst.Tabs) - 1
	return tv, nil
}

// Contents returns a snapshot of the workspace as a contents tree.
func (w *Workspace) Contents() layout.Contents {
	return snapshot(w.root)
}

func snapshot(n *node) layout.Contents {
	if n.pane != nil {
		tabs := make([]layout.Tab, len(n.pane.Tabs))
		for i, t := range n.pane.Tabs {
			tabs[i] = t.Tab
		}
		return &layout.TabPane{Tabs: tabs}
	}
	panes := make([]layout.Contents, len(n.children))
	for i, c := range n.children {
		panes[i] = snapshot(c)
	}
	return &layout.SplitPane{Split: n.split, Panes: panes}
}
