package ui

// FocusManager tracks and rotates focus across panes.
type FocusManager struct {
	Current  string   // ID of the focused pane
	Order    []string // rotation order
	OnChange func(from, to string)
}

func (f *FocusManager) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) move(to string) string {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
	return f.Current
}

// Next advances focus to the next pane in order and returns it.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	return f.move(f.Order[(f.index(f.Current)+1)%len(f.Order)])
}

// Prev moves focus to the previous pane in order.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index(f.Current) - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	return f.move(f.Order[idx])
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.move(id)
	return true
}
