package views

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"supertab/internal/layout"
	"supertab/internal/pty"
)

// Built-in view ids.
const (
	Effects  layout.ViewID = "effects"
	Preview  layout.ViewID = "preview"
	Timeline layout.ViewID = "timeline"
	Console  layout.ViewID = "console"
)

// Factory builds a fresh view instance. Every tab gets its own instance.
type Factory func() View

// Registry maps view ids to factories.
type Registry struct {
	factories map[layout.ViewID]Factory
}

// Options configures the built-in views.
type Options struct {
	// PreviewMarkdown is rendered by the preview view.
	PreviewMarkdown string
	// Runner starts console commands. Nil uses a real PTY.
	Runner pty.Runner
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[layout.ViewID]Factory)}
}

// Default returns a registry with effects, preview, timeline and console.
func Default(opts Options) *Registry {
	runner := opts.Runner
	if runner == nil {
		runner = &pty.CreackPTY{}
	}
	md := opts.PreviewMarkdown
	if md == "" {
		md = DefaultPreviewMarkdown
	}
	r := NewRegistry()
	r.Register(Effects, func() View { return NewEffectsView(DefaultEffects()) })
	r.Register(Preview, func() View { return NewPreviewView(md) })
	r.Register(Timeline, func() View { return NewTimelineView(DefaultTimelineFrames) })
	r.Register(Console, func() View { return NewConsoleView(runner) })
	return r
}

// Register adds or replaces the factory for id.
func (r *Registry) Register(id layout.ViewID, f Factory) {
	r.factories[id] = f
}

// Lookup returns the factory for id.
func (r *Registry) Lookup(id layout.ViewID) (Factory, bool) {
	f, ok := r.factories[id]
	return f, ok
}

// Build returns a new view for id. Unknown ids get a placeholder that names
// the closest known id.
func (r *Registry) Build(id layout.ViewID) View {
	if f, ok := r.factories[id]; ok {
		return f()
	}
	hint, _ := r.Suggest(id)
	return &placeholderView{id: id, hint: string(hint)}
}

// IDs returns the registered ids sorted.
func (r *Registry) IDs() []layout.ViewID {
	ids := make([]layout.ViewID, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Suggest returns the registered id closest to id by edit distance, if one
// is near enough to be a plausible typo.
func (r *Registry) Suggest(id layout.ViewID) (layout.ViewID, bool) {
	needle := strings.ToLower(string(id))
	if needle == "" {
		return "", false
	}
	best, bestDist := layout.ViewID(""), -1
	for _, candidate := range r.IDs() {
		d := levenshtein.ComputeDistance(needle, string(candidate))
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	limit := len(needle) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return "", false
	}
	return best, true
}

// Unknown returns the ids in views that the registry cannot build.
func (r *Registry) Unknown(ids []layout.ViewID) []layout.ViewID {
	var out []layout.ViewID
	seen := make(map[layout.ViewID]bool)
	for _, id := range ids {
		if _, ok := r.factories[id]; ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
