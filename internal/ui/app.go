package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"supertab/internal/layout"
	"supertab/internal/logging"
	"supertab/internal/signal"
	"supertab/internal/views"
)

// Options configures an App.
type Options struct {
	Registry *views.Registry
	// Drag is the shared drag-in-progress flag. Nil creates a private one.
	Drag     *signal.Signal[bool]
	TabWidth int
	Title    string
	Logger   *slog.Logger
}

// movingTab is the tab picked up by a drag.
type movingTab struct {
	from string
	uid  int
	view layout.ViewID
}

// App is the root Bubble Tea model: a workspace of split panes with tab
// strips. Workspace keys are handled here; everything else goes to the
// focused tab's view.
type App struct {
	ws       *Workspace
	focus    *FocusManager
	keys     KeyMap
	help     help.Model
	drag     *signal.Signal[bool]
	dragCh   <-chan bool
	unwatch  func()
	moving   *movingTab
	modal    *ConfirmModal
	target   string // drop target pane while moving
	boxes    []PaneBox
	width    int
	height   int
	tabWidth int
	title    string
	log      *slog.Logger
}

var _ tea.Model = (*App)(nil)

// NewApp builds the workspace for c.
func NewApp(c layout.Contents, opts Options) *App {
	reg := opts.Registry
	if reg == nil {
		reg = views.Default(views.Options{})
	}
	drag := opts.Drag
	if drag == nil {
		drag = signal.NewDragState()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.New("ui")
	}
	tabWidth := opts.TabWidth
	if tabWidth <= 0 {
		tabWidth = 16
	}

	ws := NewWorkspace(c, reg)
	order := ws.PaneIDs()
	focus := &FocusManager{Order: order}
	if len(order) > 0 {
		focus.Current = order[0]
	}
	if unknown := reg.Unknown(layout.Views(c)); len(unknown) > 0 {
		logger.Warn("layout names unknown views", "views", unknown)
	}
	a := &App{
		ws:       ws,
		focus:    focus,
		keys:     DefaultKeyMap(),
		help:     newHelp(),
		drag:     drag,
		tabWidth: tabWidth,
		title:    opts.Title,
		log:      logger,
	}
	a.dragCh, a.unwatch = drag.Subscribe()
	focus.OnChange = func(from, to string) {
		a.log.Debug("focus", "from", from, "to", to)
	}
	return a
}

// Workspace returns the live workspace.
func (a *App) Workspace() *Workspace { return a.ws }

// Focused returns the id of the focused pane.
func (a *App) Focused() string { return a.focus.Current }

// DropTarget returns the pane a dragged tab would land in, or "" when no
// drag is in progress.
func (a *App) DropTarget() string {
	if a.moving == nil || !a.drag.Get() {
		return ""
	}
	return a.target
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range a.ws.Views() {
		cmds = append(cmds, v.Init())
	}
	cmds = append(cmds, a.watchDrag())
	return tea.Batch(cmds...)
}

// DragStateMsg reports a change of the shared drag flag. Views receive it
// too, so they can react to a drag in progress.
type DragStateMsg struct {
	Active bool
}

// watchDrag waits for the next change of the drag flag.
func (a *App) watchDrag() tea.Cmd {
	ch := a.dragCh
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return DragStateMsg{Active: a.drag.Get()}
	}
}

// syncDrag follows the drag flag. Another owner clearing it ends a drag
// started here.
func (a *App) syncDrag(msg DragStateMsg) tea.Cmd {
	if !a.drag.Get() && a.moving != nil {
		a.moving = nil
		a.target = ""
	}
	return tea.Batch(a.broadcast(msg), a.watchDrag())
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.resize()
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			a.cancelDrag()
			a.unwatch()
			return a, tea.Quit
		}
		if a.modal != nil {
			return a, a.modal.Update(msg)
		}
		if a.moving != nil {
			return a, a.updateDrag(msg)
		}
		if cmd, handled := a.updateWorkspaceKey(msg); handled {
			return a, cmd
		}
		return a, a.forwardToFocused(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if id, ok := HitTest(a.boxes, msg.X, msg.Y); ok {
				if a.moving != nil {
					a.target = id
				} else {
					a.focus.SetFocus(id)
				}
			}
			return a, nil
		}
		return a, a.forwardToFocused(msg)
	case DragStateMsg:
		return a, a.syncDrag(msg)
	case dismissModalMsg:
		a.modal = nil
		return a, nil
	case closeTabMsg:
		a.modal = nil
		a.closeTab(msg.pane, msg.uid)
		return a, nil
	}
	return a, a.broadcast(msg)
}

func (a *App) updateWorkspaceKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	id := a.focus.Current
	switch {
	case key.Matches(msg, a.keys.NextPane):
		a.focus.Next()
	case key.Matches(msg, a.keys.PrevPane):
		a.focus.Prev()
	case key.Matches(msg, a.keys.NextTab):
		_ = a.ws.CycleTab(id, 1)
	case key.Matches(msg, a.keys.PrevTab):
		_ = a.ws.CycleTab(id, -1)
	case key.Matches(msg, a.keys.CloseTab):
		a.closeActive()
	case key.Matches(msg, a.keys.Drag):
		a.startDrag()
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		a.resize()
	default:
		for i, b := range a.keys.AddTab {
			if key.Matches(msg, b) {
				return a.addTab(addTabViews[i]), true
			}
		}
		return nil, false
	}
	return nil, true
}

func (a *App) addTab(view layout.ViewID) tea.Cmd {
	tv, err := a.ws.AddTab(a.focus.Current, view)
	if err != nil {
		a.log.Warn("add tab", "error", err)
		return nil
	}
	a.resize()
	return tv.View.Init()
}

type stopper interface{ Stop() }

type runningView interface{ Running() bool }

// closeActive closes the focused tab, asking first when its view is still
// running a command.
func (a *App) closeActive() {
	p := a.ws.Pane(a.focus.Current)
	if p == nil || p.ActiveTab() == nil {
		return
	}
	tv := p.ActiveTab()
	pane, uid := p.ID, tv.Tab.UID
	if r, ok := tv.View.(runningView); ok && r.Running() {
		a.modal = NewConfirmModal(
			"Close running tab?",
			fmt.Sprintf("%d:%s in pane %s", uid, tv.Tab.View, pane),
			func() tea.Msg { return closeTabMsg{pane: pane, uid: uid} },
		).WithDetails("The running command will be stopped")
		return
	}
	a.closeTab(pane, uid)
}

func (a *App) closeTab(pane string, uid int) {
	closed, err := a.ws.CloseTab(pane, uid)
	if err != nil {
		a.log.Warn("close tab", "error", err)
		return
	}
	if s, ok := closed.View.(stopper); ok {
		s.Stop()
	}
	a.log.Debug("closed tab", "pane", pane, "uid", closed.Tab.UID, "view", closed.Tab.View)
}

// Modal returns the open confirmation modal, or nil.
func (a *App) Modal() *ConfirmModal { return a.modal }

func (a *App) startDrag() {
	p := a.ws.Pane(a.focus.Current)
	if p == nil || p.ActiveTab() == nil {
		return
	}
	t := p.ActiveTab().Tab
	a.moving = &movingTab{from: p.ID, uid: t.UID, view: t.View}
	a.target = p.ID
	a.drag.Set(true)
}

func (a *App) cancelDrag() {
	a.moving = nil
	a.target = ""
	a.drag.Set(false)
}

func (a *App) updateDrag(msg tea.KeyMsg) tea.Cmd {
	order := a.ws.PaneIDs()
	idx := indexOf(order, a.target)
	switch {
	case key.Matches(msg, a.keys.NextPane):
		a.target = order[(idx+1)%len(order)]
	case key.Matches(msg, a.keys.PrevPane):
		a.target = order[(idx-1+len(order))%len(order)]
	case key.Matches(msg, a.keys.Cancel):
		a.cancelDrag()
	case key.Matches(msg, a.keys.Drop):
		a.drop()
	}
	return nil
}

func (a *App) drop() {
	m, target := a.moving, a.target
	a.cancelDrag()
	if m == nil || target == "" || target == m.from {
		return
	}
	tv, err := a.ws.MoveTab(m.from, m.uid, target)
	if err != nil {
		a.log.Warn("move tab", "error", err)
		return
	}
	a.focus.SetFocus(target)
	a.resize()
	a.log.Debug("moved tab", "from", m.from, "to", target, "view", tv.Tab.View, "uid", tv.Tab.UID)
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return 0
}

func (a *App) forwardToFocused(msg tea.Msg) tea.Cmd {
	p := a.ws.Pane(a.focus.Current)
	if p == nil || p.ActiveTab() == nil {
		return nil
	}
	tv := p.ActiveTab()
	var cmd tea.Cmd
	tv.View, cmd = tv.View.Update(msg)
	return cmd
}

// broadcast delivers non-input messages (ticks, command output) to every
// view; each view ignores messages addressed to another instance.
func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range a.ws.PaneIDs() {
		p := a.ws.Pane(id)
		for i := range p.Tabs {
			var cmd tea.Cmd
			p.Tabs[i].View, cmd = p.Tabs[i].View.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}
