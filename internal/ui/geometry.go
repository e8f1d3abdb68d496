package ui

import "supertab/internal/layout"

// Rect is a cell rectangle on screen.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// PaneBox is the screen area of one tab pane.
type PaneBox struct {
	ID   string
	Path layout.Path
	Rect Rect
}

// Arrange computes the screen area of every tab pane in c within r, in
// pre-order. Horizontal splits lay children side by side, vertical splits
// stack them. A split with no children yields no boxes.
func Arrange(c layout.Contents, r Rect) []PaneBox {
	var out []PaneBox
	arrange(c, nil, r, &out)
	return out
}

func arrange(c layout.Contents, path layout.Path, r Rect, out *[]PaneBox) {
	switch v := c.(type) {
	case *layout.TabPane:
		*out = append(*out, PaneBox{ID: path.String(), Path: path, Rect: r})
	case *layout.SplitPane:
		for i, child := range splitRects(v.Split, len(v.Panes), r) {
			arrange(v.Panes[i], path.Child(i), child, out)
		}
	}
}

// splitRects divides r among n children of a split.
func splitRects(split layout.SplitSpec, n int, r Rect) []Rect {
	out := make([]Rect, n)
	if split.Orientation == layout.Horizontal {
		x := r.X
		for i, w := range layout.Sizes(split, n, r.W) {
			out[i] = Rect{X: x, Y: r.Y, W: w, H: r.H}
			x += w
		}
		return out
	}
	y := r.Y
	for i, h := range layout.Sizes(split, n, r.H) {
		out[i] = Rect{X: r.X, Y: y, W: r.W, H: h}
		y += h
	}
	return out
}

// HitTest returns the id of the box containing (x, y).
func HitTest(boxes []PaneBox, x, y int) (string, bool) {
	for _, b := range boxes {
		if b.Rect.Contains(x, y) {
			return b.ID, true
		}
	}
	return "", false
}
