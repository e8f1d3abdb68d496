package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"supertab/internal/layout"
	"supertab/internal/logging"
	"supertab/internal/signal"
	"supertab/internal/views"
)

// stubView records what the workspace does to it.
type stubView struct {
	id            layout.ViewID
	width, height int
	keys          []string
	msgs          int
	stopped       bool
	running       bool
}

func (s *stubView) Init() tea.Cmd { return nil }
func (s *stubView) Update(msg tea.Msg) (views.View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		s.keys = append(s.keys, km.String())
	} else {
		s.msgs++
	}
	return s, nil
}
func (s *stubView) View() string              { return "body of " + string(s.id) }
func (s *stubView) SetSize(width, height int) { s.width, s.height = width, height }
func (s *stubView) ID() layout.ViewID         { return s.id }
func (s *stubView) Stop()                     { s.stopped, s.running = true, false }
func (s *stubView) Running() bool             { return s.running }

func stubRegistry() *views.Registry {
	r := views.NewRegistry()
	for _, id := range []layout.ViewID{views.Effects, views.Preview, views.Timeline, views.Console} {
		id := id
		r.Register(id, func() views.View { return &stubView{id: id} })
	}
	return r
}

// sampleContents is the bundled editor layout.
func sampleContents(t *testing.T) layout.Contents {
	t.Helper()
	c, err := layout.ExpandRaw(map[string]any{
		"split": map[string]any{"orientation": "horizontal", "position": 0.3},
		"panes": []any{
			[]any{"effects", "preview", "console", "timeline"},
			map[string]any{
				"split": map[string]any{"orientation": "vertical", "position": 0.7},
				"panes": []any{[]any{"preview"}, []any{"timeline", "console"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("ExpandRaw: %v", err)
	}
	return c
}

func newTestApp(t *testing.T) (*App, *signal.Signal[bool]) {
	t.Helper()
	drag := signal.NewDragState()
	a := NewApp(sampleContents(t), Options{
		Registry: stubRegistry(),
		Drag:     drag,
		Logger:   logging.Discard(),
	})
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return a, drag
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	}
	if len(s) > 4 && s[:4] == "alt+" {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s[4:]), Alt: true}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
