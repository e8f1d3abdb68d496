package layout

// Expand turns a layout description into a contents tree. It never fails:
// a nil description expands to a single tab with an empty view id.
func Expand(d Description) Contents {
	switch v := d.(type) {
	case TabList:
		tabs := make([]Tab, len(v))
		for uid, view := range v {
			tabs[uid] = Tab{UID: uid, View: view}
		}
		return &TabPane{Tabs: tabs}
	case *SplitNode:
		if v == nil {
			return Expand(Scalar(""))
		}
		panes := make([]Contents, len(v.Panes))
		for i, child := range v.Panes {
			panes[i] = Expand(child)
		}
		return &SplitPane{Split: ResolveSplit(v.Split), Panes: panes}
	case Scalar:
		return Expand(TabList{ViewID(v)})
	default:
		return Expand(Scalar(""))
	}
}

// ExpandRaw parses a loosely typed layout value and expands it.
func ExpandRaw(raw any) (Contents, error) {
	d, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return Expand(d), nil
}
