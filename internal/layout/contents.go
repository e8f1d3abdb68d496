package layout

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Tab is a single view instance inside a tab pane. UID is unique within its
// pane only.
type Tab struct {
	UID  int    `json:"uid"`
	View ViewID `json:"view"`
}

// Contents is a node of an expanded contents tree: *TabPane or *SplitPane.
type Contents interface {
	isContents()
}

// TabPane is a leaf pane showing a strip of tabs.
type TabPane struct {
	Tabs []Tab `json:"tabs"`
}

// SplitPane is a pane divided into child panes.
type SplitPane struct {
	Split SplitSpec  `json:"split"`
	Panes []Contents `json:"panes"`
}

func (*TabPane) isContents()   {}
func (*SplitPane) isContents() {}

// MarshalJSON keeps an empty pane list as [] rather than null.
func (p *SplitPane) MarshalJSON() ([]byte, error) {
	panes := p.Panes
	if panes == nil {
		panes = []Contents{}
	}
	return json.Marshal(struct {
		Split SplitSpec  `json:"split"`
		Panes []Contents `json:"panes"`
	}{p.Split, panes})
}

// MarshalJSON keeps an empty tab list as [] rather than null.
func (p *TabPane) MarshalJSON() ([]byte, error) {
	tabs := p.Tabs
	if tabs == nil {
		tabs = []Tab{}
	}
	return json.Marshal(struct {
		Tabs []Tab `json:"tabs"`
	}{tabs})
}

// Path addresses a pane by child indices from the root. The root is the
// empty path.
type Path []int

func (p Path) String() string {
	if len(p) == 0 {
		return "root"
	}
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// Child returns a new path extended by idx. The receiver is not modified.
func (p Path) Child(idx int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, idx)
}

// Walk visits every node in pre-order. Returning false from fn skips the
// node's children.
func Walk(c Contents, fn func(path Path, node Contents) bool) {
	walk(c, nil, fn)
}

func walk(c Contents, path Path, fn func(Path, Contents) bool) {
	if c == nil || !fn(path, c) {
		return
	}
	if sp, ok := c.(*SplitPane); ok {
		for i, child := range sp.Panes {
			walk(child, path.Child(i), fn)
		}
	}
}

// Views returns every tab's view id in pre-order.
func Views(c Contents) []ViewID {
	var out []ViewID
	Walk(c, func(_ Path, node Contents) bool {
		if tp, ok := node.(*TabPane); ok {
			for _, t := range tp.Tabs {
				out = append(out, t.View)
			}
		}
		return true
	})
	return out
}

// TabCount returns the number of tabs across all panes.
func TabCount(c Contents) int {
	return len(Views(c))
}

// Lookup returns the node at path, or nil if the path does not exist.
func Lookup(c Contents, path Path) Contents {
	node := c
	for _, idx := range path {
		sp, ok := node.(*SplitPane)
		if !ok || idx < 0 || idx >= len(sp.Panes) {
			return nil
		}
		node = sp.Panes[idx]
	}
	return node
}
