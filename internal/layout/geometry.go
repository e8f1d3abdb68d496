package layout

import "math"

// Fractions returns the share of a split pane's extent each of n children
// gets: the first child takes the split position and the rest share the
// remainder equally.
func Fractions(split SplitSpec, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{1}
	}
	out := make([]float64, n)
	out[0] = split.Position
	rest := (1 - split.Position) / float64(n-1)
	for i := 1; i < n; i++ {
		out[i] = rest
	}
	return out
}

// Sizes divides total cells among children by Fractions. Boundaries are
// rounded so the sizes always sum to total.
func Sizes(split SplitSpec, n, total int) []int {
	fr := Fractions(split, n)
	out := make([]int, len(fr))
	acc, prev := 0.0, 0
	for i, f := range fr {
		acc += f
		edge := int(math.Round(acc * float64(total)))
		if i == len(fr)-1 {
			edge = total
		}
		edge = min(max(edge, prev), total)
		out[i] = edge - prev
		prev = edge
	}
	return out
}
