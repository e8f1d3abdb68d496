package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"supertab/internal/layout"
)

// DefaultPreviewMarkdown is shown when no preview document is configured.
const DefaultPreviewMarkdown = `# Preview

Nothing is loaded yet. Open a document to preview it here.

- **effects** lists the effect stack
- **timeline** scrubs through frames
- **console** runs shell commands
`

// PreviewView renders a markdown document into a scrollable viewport.
type PreviewView struct {
	markdown string
	viewport viewport.Model
	rendered string
	width    int
	err      error
}

var _ View = (*PreviewView)(nil)

// NewPreviewView creates a preview of markdown.
func NewPreviewView(markdown string) *PreviewView {
	return &PreviewView{markdown: markdown, viewport: viewport.New(0, 0)}
}

func (v *PreviewView) ID() layout.ViewID { return Preview }
func (v *PreviewView) Init() tea.Cmd     { return nil }

// SetMarkdown replaces the document and re-renders it.
func (v *PreviewView) SetMarkdown(md string) {
	v.markdown = md
	v.render()
}

// Rendered returns the last rendered document, before viewport clipping.
func (v *PreviewView) Rendered() string {
	return v.rendered
}

// Err returns the last render error. On error the raw markdown is shown.
func (v *PreviewView) Err() error {
	return v.err
}

func (v *PreviewView) SetSize(width, height int) {
	v.viewport.Width = width
	v.viewport.Height = height
	if width != v.width || v.rendered == "" {
		v.width = width
		v.render()
	}
}

func (v *PreviewView) render() {
	wrap := v.width
	if wrap <= 0 {
		wrap = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		v.rendered, err = r.Render(v.markdown)
	}
	v.err = err
	if err != nil {
		v.rendered = v.markdown
	}
	v.viewport.SetContent(strings.TrimRight(v.rendered, "\n"))
}

func (v *PreviewView) Update(msg tea.Msg) (View, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); !ok {
		if _, ok := msg.(tea.MouseMsg); !ok {
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *PreviewView) View() string {
	return v.viewport.View()
}
