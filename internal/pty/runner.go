// Package pty runs shell commands attached to a pseudo terminal so their
// output keeps terminal formatting (colors, progress lines) when shown in
// the console view.
package pty

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// ErrEmptyCommand is returned when asked to run a blank command line.
var ErrEmptyCommand = errors.New("empty command")

// Runner starts commands in a PTY. Implementations can be swapped for tests.
type Runner interface {
	Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// CreackPTY implements Runner using github.com/creack/pty.
type CreackPTY struct{}

var _ Runner = (*CreackPTY)(nil)

// Start spawns cmd in a PTY of the given size. Closing the returned file
// hangs up the terminal; cancelling ctx kills the process if cmd was built
// with exec.CommandContext.
func (c *CreackPTY) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Resize resizes the PTY. rwc must be the *os.File returned by Start; other
// types are ignored.
func (c *CreackPTY) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}

// ShellCommand builds `sh -c line` bound to ctx.
func ShellCommand(ctx context.Context, line string) (*exec.Cmd, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrEmptyCommand
	}
	return exec.CommandContext(ctx, "sh", "-c", line), nil
}
