package views

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supertab/internal/layout"
	"supertab/internal/pty"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// pipeRunner hands out a PTY stand-in that stays open until closed.
type pipeRunner struct {
	pr      *io.PipeReader
	pw      *io.PipeWriter
	closed  atomic.Bool
	resizes []pty.Size
}

func newPipeRunner() *pipeRunner {
	pr, pw := io.Pipe()
	return &pipeRunner{pr: pr, pw: pw}
}

func (p *pipeRunner) Start(context.Context, *exec.Cmd, pty.Size) (io.ReadWriteCloser, error) {
	return pipeRWC{p}, nil
}

func (p *pipeRunner) Resize(_ io.ReadWriteCloser, size pty.Size) error {
	p.resizes = append(p.resizes, size)
	return nil
}

type pipeRWC struct{ p *pipeRunner }

func (r pipeRWC) Read(b []byte) (int, error)  { return r.p.pr.Read(b) }
func (r pipeRWC) Write(b []byte) (int, error) { return len(b), nil }
func (r pipeRWC) Close() error {
	r.p.closed.Store(true)
	return r.p.pr.Close()
}

type nopCloser struct{ io.Reader }

func (nopCloser) Write(p []byte) (int, error) { return len(p), nil }
func (nopCloser) Close() error                { return nil }

type fakeRunner struct {
	output string
	err    error
	lines  []string
}

func (f *fakeRunner) Start(_ context.Context, cmd *exec.Cmd, _ pty.Size) (io.ReadWriteCloser, error) {
	f.lines = append(f.lines, strings.Join(cmd.Args, " "))
	if f.err != nil {
		return nil, f.err
	}
	return nopCloser{strings.NewReader(f.output)}, nil
}

func (f *fakeRunner) Resize(io.ReadWriteCloser, pty.Size) error { return nil }

// drain runs cmd and feeds resulting messages back into v until no command
// remains.
func drain(t *testing.T, v View, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil && i < 100; i++ {
		msg := cmd()
		_, cmd = v.Update(msg)
	}
}

func TestRegistry_DefaultViews(t *testing.T) {
	r := Default(Options{Runner: &fakeRunner{}})
	assert.Equal(t, []layout.ViewID{Console, Effects, Preview, Timeline}, r.IDs())
	for _, id := range r.IDs() {
		v := r.Build(id)
		require.NotNil(t, v)
		assert.Equal(t, id, v.ID())
	}
	a, b := r.Build(Timeline), r.Build(Timeline)
	assert.NotSame(t, a, b, "every tab gets its own view")
}

func TestRegistry_UnknownAndSuggest(t *testing.T) {
	r := Default(Options{Runner: &fakeRunner{}})

	got, ok := r.Suggest("previw")
	assert.True(t, ok)
	assert.Equal(t, Preview, got)

	got, ok = r.Suggest("Consol")
	assert.True(t, ok)
	assert.Equal(t, Console, got)

	_, ok = r.Suggest("spreadsheet")
	assert.False(t, ok)
	_, ok = r.Suggest("")
	assert.False(t, ok)

	v := r.Build("timline")
	v.SetSize(60, 5)
	assert.Equal(t, layout.ViewID("timline"), v.ID())
	assert.Contains(t, v.View(), `did you mean "timeline"?`)

	assert.Equal(t, []layout.ViewID{"timline", "x"}, r.Unknown([]layout.ViewID{"effects", "timline", "x", "timline"}))
}

func TestEffectsView_ToggleSelected(t *testing.T) {
	v := NewEffectsView(DefaultEffects())
	v.SetSize(40, 20)
	require.False(t, v.Effects()[1].Enabled)

	v.Update(keyMsg("j"))
	assert.Equal(t, 1, v.Selected())
	v.Update(keyMsg(" "))
	assert.True(t, v.Effects()[1].Enabled)
	v.Update(keyMsg(" "))
	assert.False(t, v.Effects()[1].Enabled)
	assert.Contains(t, v.View(), "Vignette")
}

func TestPreviewView_Renders(t *testing.T) {
	v := NewPreviewView("# Heading\n\nsome *body* text")
	v.SetSize(40, 10)
	require.NoError(t, v.Err())
	assert.Contains(t, v.Rendered(), "Heading")
	assert.Contains(t, v.Rendered(), "body")

	v.SetMarkdown("replaced")
	assert.Contains(t, v.Rendered(), "replaced")
}

func TestTimelineView_Scrub(t *testing.T) {
	v := NewTimelineView(10)
	v.SetSize(20, 2)
	v.Update(keyMsg("h"))
	assert.Equal(t, 0, v.Frame())
	v.Update(keyMsg("l"))
	v.Update(keyMsg("l"))
	assert.Equal(t, 2, v.Frame())
	v.Update(keyMsg("$"))
	assert.Equal(t, 9, v.Frame())
	v.Update(keyMsg("0"))
	assert.Equal(t, 0, v.Frame())
	assert.Contains(t, v.View(), "frame 1/10")
}

func TestTimelineView_PlaybackStopsAtEnd(t *testing.T) {
	v := NewTimelineView(3)
	_, cmd := v.Update(keyMsg(" "))
	require.NotNil(t, cmd)
	assert.True(t, v.Playing())

	// Ticks for another timeline are ignored.
	v.Update(timelineTickMsg{id: v.id + 1000})
	assert.Equal(t, 0, v.Frame())

	for i := 0; i < 5; i++ {
		v.Update(timelineTickMsg{id: v.id, gen: v.gen})
	}
	assert.Equal(t, 2, v.Frame())
	assert.False(t, v.Playing())
}

func TestTimelineView_ReplayDropsStaleTicks(t *testing.T) {
	v := NewTimelineView(100)
	_, first := v.Update(keyMsg(" "))
	v.Update(keyMsg(" "))
	assert.False(t, v.Playing())
	_, second := v.Update(keyMsg(" "))
	require.NotNil(t, first)
	require.NotNil(t, second)

	// Both ticks fire after one period; only the current session advances.
	_, staleNext := v.Update(first())
	assert.Nil(t, staleNext, "stale tick must not reschedule")
	_, next := v.Update(second())
	assert.NotNil(t, next)
	assert.Equal(t, 1, v.Frame())
}

func TestConsoleView_RunStreamsOutput(t *testing.T) {
	runner := &fakeRunner{output: "one\r\ntwo\n"}
	v := NewConsoleView(runner)
	v.SetSize(40, 6)

	v.input.SetValue("echo one two")
	_, cmd := v.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.True(t, v.Running())
	drain(t, v, cmd)

	assert.False(t, v.Running())
	assert.Equal(t, []string{"$ echo one two", "one", "two"}, v.Lines())
	assert.Equal(t, []string{"sh -c echo one two"}, runner.lines)
	assert.Equal(t, "", v.input.Value())
}

func TestConsoleView_StartError(t *testing.T) {
	v := NewConsoleView(&fakeRunner{err: errors.New("no pty")})
	v.SetSize(40, 6)
	drain(t, v, v.Run("ls"))
	assert.False(t, v.Running())
	lines := v.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "no pty")
}

func TestConsoleView_EmptyCommandIgnored(t *testing.T) {
	v := NewConsoleView(&fakeRunner{})
	assert.Nil(t, v.Run("  "))
	assert.Empty(t, v.Lines())
}

func TestConsoleView_IgnoresOtherConsoles(t *testing.T) {
	a := NewConsoleView(&fakeRunner{})
	b := NewConsoleView(&fakeRunner{})
	b.Run("true")
	a.Update(consoleLineMsg{run: b.run, line: "not mine"})
	assert.Empty(t, a.Lines())
}

func TestConsoleView_ScrollbackLimit(t *testing.T) {
	v := NewConsoleView(&fakeRunner{})
	for i := 0; i < maxConsoleLines+10; i++ {
		v.Append("x")
	}
	assert.Len(t, v.Lines(), maxConsoleLines)
}

func TestConsoleView_StopReleasesPTY(t *testing.T) {
	runner := newPipeRunner()
	v := NewConsoleView(runner)
	v.SetSize(40, 6)

	cmd := v.Run("sleep 60")
	require.NotNil(t, cmd)
	_, err := runner.pw.Write([]byte("partial\n"))
	require.NoError(t, err)
	_, next := v.Update(cmd())
	assert.Equal(t, []string{"$ sleep 60", "partial"}, v.Lines())

	v.Stop()
	assert.True(t, runner.closed.Load(), "stop must close the pty")
	drain(t, v, next)
	assert.False(t, v.Running())
	assert.Len(t, v.Lines(), 2, "a stopped command is not an error")
}

func TestConsoleView_ClosedTabDoesNotLeakReader(t *testing.T) {
	runner := newPipeRunner()
	v := NewConsoleView(runner)
	v.SetSize(40, 6)
	require.NotNil(t, v.Run("sleep 60"))
	run := v.run

	// The tab is closed: Stop is called and no further messages reach the view.
	v.Stop()
	assert.True(t, runner.closed.Load())
	require.Eventually(t, func() bool { return len(run.done) == 1 }, time.Second, 10*time.Millisecond,
		"reader goroutine should finish without the view draining it")
}

func TestConsoleView_ResizesRunningPTY(t *testing.T) {
	runner := newPipeRunner()
	v := NewConsoleView(runner)
	v.SetSize(40, 6)
	assert.Empty(t, runner.resizes, "no pty to resize while idle")

	require.NotNil(t, v.Run("top"))
	v.SetSize(50, 10)
	assert.Equal(t, []pty.Size{{Rows: 9, Cols: 50}}, runner.resizes)
	v.Stop()
}

func TestConsoleView_ReportsExitStatus(t *testing.T) {
	v := NewConsoleView(&pty.CreackPTY{})
	v.SetSize(40, 6)
	cmd := v.Run("echo out; exit 3")
	if !v.Running() {
		t.Skip("pty not available")
	}
	drain(t, v, cmd)
	assert.False(t, v.Running())
	lines := v.Lines()
	require.NotEmpty(t, lines)
	assert.Contains(t, lines, "out")
	assert.Contains(t, lines[len(lines)-1], "exit status 3")
}
