// Package tmux materializes a contents tree as panes in the current tmux
// window. Plan is pure and decides every split; Client.Apply runs the plan
// through the tmux CLI. Commands target the current session automatically.
package tmux

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"supertab/internal/layout"
)

// PaneRef names a pane inside a plan before tmux assigns it an id. Ref 0 is
// the pane Apply starts from.
type PaneRef int

// Root is the pane the plan starts in.
const Root PaneRef = 0

// StepKind is the tmux operation a step performs.
type StepKind int

const (
	StepSplit StepKind = iota
	StepTitle
	StepRun
)

func (k StepKind) String() string {
	switch k {
	case StepSplit:
		return "split"
	case StepTitle:
		return "title"
	case StepRun:
		return "run"
	default:
		return "unknown"
	}
}

// Step is one tmux operation.
type Step struct {
	Kind   StepKind
	Target PaneRef

	// StepSplit: New receives the new pane, which takes Percent of Target
	// to the right (Horizontal) or below.
	New        PaneRef
	Horizontal bool
	Percent    int

	// StepTitle
	Title string

	// StepRun
	Command string
}

func (s Step) String() string {
	switch s.Kind {
	case StepSplit:
		dir := "v"
		if s.Horizontal {
			dir = "h"
		}
		return fmt.Sprintf("split %d -> %d -%s %d%%", s.Target, s.New, dir, s.Percent)
	case StepTitle:
		return fmt.Sprintf("title %d %q", s.Target, s.Title)
	case StepRun:
		return fmt.Sprintf("run %d %q", s.Target, s.Command)
	default:
		return "unknown"
	}
}

// Plan returns the steps that build c starting from the Root pane.
// commands maps a view id to a shell command started in the pane whose
// first tab shows that view.
func Plan(c layout.Contents, commands map[layout.ViewID]string) []Step {
	p := &planner{next: Root + 1, commands: commands}
	p.pane(c, Root)
	return p.steps
}

type planner struct {
	steps    []Step
	next     PaneRef
	commands map[layout.ViewID]string
}

func (p *planner) pane(c layout.Contents, ref PaneRef) {
	switch node := c.(type) {
	case *layout.TabPane:
		views := make([]string, len(node.Tabs))
		for i, t := range node.Tabs {
			views[i] = string(t.View)
		}
		p.steps = append(p.steps, Step{Kind: StepTitle, Target: ref, Title: strings.Join(views, " | ")})
		if len(node.Tabs) > 0 {
			if cmd := p.commands[node.Tabs[0].View]; cmd != "" {
				p.steps = append(p.steps, Step{Kind: StepRun, Target: ref, Command: cmd})
			}
		}
	case *layout.SplitPane:
		fr := layout.Fractions(node.Split, len(node.Panes))
		refs := make([]PaneRef, len(node.Panes))
		if len(refs) > 0 {
			refs[0] = ref
		}
		// Carve each child off the pane still holding the remaining space.
		for i := 1; i < len(node.Panes); i++ {
			rest := 0.0
			for _, f := range fr[i:] {
				rest += f
			}
			refs[i] = p.next
			p.next++
			p.steps = append(p.steps, Step{
				Kind:       StepSplit,
				Target:     refs[i-1],
				New:        refs[i],
				Horizontal: node.Split.Orientation == layout.Horizontal,
				Percent:    percentOf(rest, fr[i-1]+rest),
			})
		}
		for i, child := range node.Panes {
			p.pane(child, refs[i])
		}
	}
}

// percentOf returns part/whole as a tmux size percentage in [1, 99].
func percentOf(part, whole float64) int {
	if whole <= 0 {
		return 50
	}
	pct := int(math.Round(part / whole * 100))
	return min(max(pct, 1), 99)
}

// Commander runs a tmux subcommand and returns its trimmed stdout.
type Commander func(ctx context.Context, args ...string) (string, error)

// Exec runs the tmux binary.
func Exec(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "tmux", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		name := "tmux"
		if len(args) > 0 {
			name += " " + args[0]
		}
		return "", fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Client applies plans using a Commander.
type Client struct {
	run Commander
}

// NewClient returns a client. A nil run uses Exec.
func NewClient(run Commander) *Client {
	if run == nil {
		run = Exec
	}
	return &Client{run: run}
}

// CurrentPane returns the id of the pane the client runs in (e.g. %3).
func (c *Client) CurrentPane(ctx context.Context) (string, error) {
	return c.run(ctx, "display-message", "-p", "#{pane_id}")
}

// Apply executes steps starting from the current pane. It returns the tmux
// pane id assigned to each ref. If a step fails, panes created so far are
// killed and the error is returned.
func (c *Client) Apply(ctx context.Context, steps []Step) (map[PaneRef]string, error) {
	root, err := c.CurrentPane(ctx)
	if err != nil {
		return nil, err
	}
	ids := map[PaneRef]string{Root: root}
	var created []string
	if err := c.apply(ctx, steps, ids, &created); err != nil {
		for i := len(created) - 1; i >= 0; i-- {
			_ = c.KillPane(ctx, created[i])
		}
		return nil, err
	}
	return ids, nil
}

func (c *Client) apply(ctx context.Context, steps []Step, ids map[PaneRef]string, created *[]string) error {
	for i, s := range steps {
		target, ok := ids[s.Target]
		if !ok {
			return fmt.Errorf("step %d (%s): unknown pane ref %d", i, s.Kind, s.Target)
		}
		switch s.Kind {
		case StepSplit:
			dir := "-v"
			if s.Horizontal {
				dir = "-h"
			}
			id, err := c.run(ctx, "split-window", "-d", "-P", "-F", "#{pane_id}",
				"-t", target, dir, "-l", strconv.Itoa(s.Percent)+"%")
			if err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
			ids[s.New] = id
			*created = append(*created, id)
		case StepTitle:
			if _, err := c.run(ctx, "select-pane", "-t", target, "-T", s.Title); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		case StepRun:
			if _, err := c.run(ctx, "send-keys", "-t", target, "-l", s.Command); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
			if _, err := c.run(ctx, "send-keys", "-t", target, "Enter"); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		}
	}
	return nil
}

// KillPane kills the pane with the given ID.
func (c *Client) KillPane(ctx context.Context, paneID string) error {
	_, err := c.run(ctx, "kill-pane", "-t", paneID)
	return err
}
