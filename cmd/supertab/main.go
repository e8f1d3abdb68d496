package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"supertab/internal/config"
	"supertab/internal/layout"
	"supertab/internal/layoutfile"
	"supertab/internal/logging"
	"supertab/internal/signal"
	"supertab/internal/telemetry"
	"supertab/internal/tmux"
	"supertab/internal/ui"
	"supertab/internal/views"
)

// options holds the parsed command line.
type options struct {
	layoutPath  string
	previewPath string
	print       bool
	plan        bool
	tmux        bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.layoutPath, "layout", "", "layout file (.json, .yaml, .yml or .toml); overrides layout.path")
	flag.StringVar(&opts.previewPath, "preview", "", "markdown file shown by the preview view")
	flag.BoolVar(&opts.print, "print", false, "print the expanded contents tree as JSON and exit")
	flag.BoolVar(&opts.plan, "plan", false, "print the tmux commands for the layout and exit")
	flag.BoolVar(&opts.tmux, "tmux", false, "materialize the layout as panes in the current tmux window")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: supertab [flags]\n\n")
		fmt.Fprintf(os.Stderr, "supertab opens a split-pane workspace of tabbed views described by a layout file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func main() {
	opts := parseFlags()
	if err := run(context.Background(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	log := logging.New("main")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn("telemetry shutdown", "error", err)
		}
	}()

	doc, err := loadLayout(ctx, opts.layoutPath, cfg.Layout.Path)
	if err != nil {
		return err
	}
	log.Debug("layout loaded", "source", doc.Source, "name", doc.Name, "tabs", layout.TabCount(doc.Contents))

	switch {
	case opts.print:
		out, err := json.MarshalIndent(doc.Contents, "", "  ")
		if err != nil {
			return fmt.Errorf("encode contents: %w", err)
		}
		fmt.Println(string(out))
		return nil
	case opts.plan:
		for _, step := range tmux.Plan(doc.Contents, cfg.Tmux.ViewCommands()) {
			fmt.Println(step)
		}
		return nil
	case opts.tmux:
		if os.Getenv("TMUX") == "" {
			return fmt.Errorf("-tmux must run inside tmux (e.g. `tmux new -s dev` then `supertab -tmux`)")
		}
		panes, err := tmux.NewClient(nil).Apply(ctx, tmux.Plan(doc.Contents, cfg.Tmux.ViewCommands()))
		if err != nil {
			return err
		}
		log.Info("tmux layout applied", "panes", len(panes))
		return nil
	}

	var markdown string
	if opts.previewPath != "" {
		data, err := os.ReadFile(opts.previewPath)
		if err != nil {
			return fmt.Errorf("read preview: %w", err)
		}
		markdown = string(data)
	}

	registry := views.Default(views.Options{PreviewMarkdown: markdown})
	for _, id := range registry.Unknown(layout.Views(doc.Contents)) {
		if s, ok := registry.Suggest(id); ok {
			log.Warn("unknown view", "view", id, "did_you_mean", s)
		}
	}

	title := doc.Name
	if title == "" {
		title = "supertab"
	}
	app := ui.NewApp(doc.Contents, ui.Options{
		Registry: registry,
		Drag:     signal.NewDragState(),
		TabWidth: cfg.UI.TabWidth,
		Title:    title,
		Logger:   logging.New("ui"),
	})

	// The TUI owns the terminal from here on.
	if cfg.Log.File != "" {
		restore, err := logging.ToFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer restore()
	}

	progOpts := []tea.ProgramOption{tea.WithMouseCellMotion(), tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(app, progOpts...).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// loadLayout prefers the -layout flag, then layout.path from config, then
// the bundled layout.
func loadLayout(ctx context.Context, flagPath, cfgPath string) (layoutfile.Document, error) {
	path := flagPath
	if path == "" {
		path = cfgPath
	}
	if path == "" {
		return layoutfile.Default(ctx), nil
	}
	return layoutfile.Load(ctx, path)
}
