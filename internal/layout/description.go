package layout

// ViewID names a view hosted by a tab, e.g. "preview". The layout package
// treats it as opaque.
type ViewID string

// Description is a parsed layout description: TabList, SplitNode or Scalar.
type Description interface {
	isDescription()
}

// TabList is one pane containing the given views as tabs, in order.
type TabList []ViewID

// SplitNode divides a pane into child panes.
type SplitNode struct {
	Split SplitSpec
	Panes []Description
}

// Scalar is a lone view id standing in for a single-tab pane.
type Scalar ViewID

func (TabList) isDescription()    {}
func (*SplitNode) isDescription() {}
func (Scalar) isDescription()     {}

// Tabs is shorthand for building a TabList from plain strings.
func Tabs(views ...string) TabList {
	out := make(TabList, len(views))
	for i, v := range views {
		out[i] = ViewID(v)
	}
	return out
}

// Split is shorthand for building a SplitNode.
func Split(spec SplitSpec, panes ...Description) *SplitNode {
	return &SplitNode{Split: spec, Panes: panes}
}
