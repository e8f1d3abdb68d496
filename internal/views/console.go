package views

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"supertab/internal/layout"
	"supertab/internal/logging"
	"supertab/internal/pty"
)

// maxConsoleLines bounds the scrollback.
const maxConsoleLines = 1000

// consoleRun is one command started by a console. Its reader goroutine
// owns the scanner; the view only holds the handles needed to stop it.
type consoleRun struct {
	rwc    io.ReadWriteCloser
	cancel context.CancelFunc
	lines  chan string
	done   chan error // receives once, after lines is closed
}

type consoleLineMsg struct {
	run  *consoleRun
	line string
}

type consoleDoneMsg struct {
	run *consoleRun
	err error
}

// ConsoleView is a command prompt with scrollback. Enter runs the typed
// line in a PTY and streams its output; ctrl+k stops it.
type ConsoleView struct {
	runner   pty.Runner
	input    textinput.Model
	viewport viewport.Model
	lines    []string
	run      *consoleRun // nil when idle
	width    int
	height   int
}

var _ View = (*ConsoleView)(nil)

// NewConsoleView creates a console running commands with runner.
func NewConsoleView(runner pty.Runner) *ConsoleView {
	in := textinput.New()
	in.Prompt = "$ "
	in.Placeholder = "command"
	in.Focus()
	return &ConsoleView{
		runner:   runner,
		input:    in,
		viewport: viewport.New(0, 0),
	}
}

func (v *ConsoleView) ID() layout.ViewID { return Console }
func (v *ConsoleView) Init() tea.Cmd     { return textinput.Blink }

// Lines returns the scrollback.
func (v *ConsoleView) Lines() []string { return v.lines }

// Running reports whether a command is in progress.
func (v *ConsoleView) Running() bool { return v.run != nil }

func (v *ConsoleView) SetSize(width, height int) {
	v.width, v.height = width, height
	v.input.Width = max(width-len(v.input.Prompt)-1, 1)
	v.viewport.Width = width
	v.viewport.Height = max(height-1, 0)
	v.refresh()
	if v.run != nil && v.run.rwc != nil {
		if err := v.runner.Resize(v.run.rwc, v.ptySize()); err != nil {
			logging.New("console").Debug("resize pty", "error", err)
		}
	}
}

func (v *ConsoleView) ptySize() pty.Size {
	return pty.Size{Rows: uint16(max(v.viewport.Height, 1)), Cols: uint16(max(v.width, 1))}
}

// Append adds lines to the scrollback, dropping the oldest past the limit.
func (v *ConsoleView) Append(lines ...string) {
	v.lines = append(v.lines, lines...)
	if over := len(v.lines) - maxConsoleLines; over > 0 {
		v.lines = append([]string(nil), v.lines[over:]...)
	}
	v.refresh()
}

func (v *ConsoleView) refresh() {
	v.viewport.SetContent(strings.Join(v.lines, "\n"))
	v.viewport.GotoBottom()
}

// Run starts line in a PTY and returns the command streaming its output.
func (v *ConsoleView) Run(line string) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	cmd, err := pty.ShellCommand(ctx, line)
	if err != nil {
		cancel()
		return nil
	}
	v.Append(v.input.Prompt + line)

	rwc, err := v.runner.Start(ctx, cmd, v.ptySize())
	if err != nil {
		cancel()
		v.fail(err)
		return nil
	}
	run := &consoleRun{
		rwc:    rwc,
		cancel: cancel,
		lines:  make(chan string, 64),
		done:   make(chan error, 1),
	}
	v.run = run
	go run.read(ctx, cmd)
	return run.wait()
}

// read scans output until the PTY hangs up, then reaps the process. Lines
// are dropped once ctx is cancelled so a closed tab never blocks it.
func (r *consoleRun) read(ctx context.Context, cmd *exec.Cmd) {
	sc := bufio.NewScanner(r.rwc)
	for sc.Scan() {
		select {
		case r.lines <- sc.Text():
		case <-ctx.Done():
		}
	}
	err := sc.Err()
	if err != nil && isHangup(err) {
		err = nil
	}
	r.rwc.Close()
	if cmd.Process != nil {
		if werr := cmd.Wait(); werr != nil && err == nil && ctx.Err() == nil {
			err = werr
		}
	}
	r.done <- err
	close(r.lines)
}

// wait delivers the next line, or the exit result once output ends.
func (r *consoleRun) wait() tea.Cmd {
	return func() tea.Msg {
		if line, ok := <-r.lines; ok {
			return consoleLineMsg{run: r, line: line}
		}
		return consoleDoneMsg{run: r, err: <-r.done}
	}
}

// Stop cancels the running command and closes its PTY, if any.
func (v *ConsoleView) Stop() {
	if v.run == nil {
		return
	}
	v.run.cancel()
	v.run.rwc.Close()
}

func (v *ConsoleView) fail(err error) {
	logging.New("console").Warn("command failed", "error", err)
	v.Append(styles.Error.Render("error: " + err.Error()))
}

func isHangup(err error) bool {
	// A PTY reports EIO once the child exits; a closed PTY reports ErrClosed.
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed) ||
		strings.Contains(err.Error(), "input/output error")
}

func (v *ConsoleView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case consoleLineMsg:
		if msg.run != v.run {
			return v, nil
		}
		v.Append(ansi.Strip(strings.TrimRight(msg.line, "\r")))
		return v, msg.run.wait()
	case consoleDoneMsg:
		if msg.run != v.run {
			return v, nil
		}
		v.run = nil
		msg.run.cancel()
		if msg.err != nil {
			v.fail(msg.err)
		}
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if v.run != nil {
				return v, nil
			}
			line := v.input.Value()
			v.input.SetValue("")
			return v, v.Run(line)
		case "ctrl+k":
			if v.run != nil {
				v.Stop()
				return v, nil
			}
		case "pgup", "pgdown":
			var cmd tea.Cmd
			v.viewport, cmd = v.viewport.Update(msg)
			return v, cmd
		}
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *ConsoleView) View() string {
	return v.viewport.View() + "\n" + v.input.View()
}
