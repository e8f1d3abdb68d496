package layout

import (
	"fmt"
	"math"
)

// Orientation is the axis along which a split pane arranges its children.
type Orientation string

const (
	// Horizontal places children side by side.
	Horizontal Orientation = "horizontal"
	// Vertical stacks children top to bottom.
	Vertical Orientation = "vertical"
)

// DefaultPosition is the split position used when none (or an invalid one)
// is given.
const DefaultPosition = 0.5

// SplitSpec is a normalized split descriptor.
type SplitSpec struct {
	Orientation Orientation `json:"orientation"`
	Position    float64     `json:"position"`
}

// DefaultSplit returns the descriptor used for missing or unrecognized input.
func DefaultSplit() SplitSpec {
	return SplitSpec{Orientation: Vertical, Position: DefaultPosition}
}

func (s SplitSpec) String() string {
	return fmt.Sprintf("%s@%g", s.Orientation, s.Position)
}

// ResolveSplit normalizes a raw split value. Accepted forms are a bare
// orientation string, a bare number (position) or a record with optional
// orientation and position fields. Each field is resolved on its own.
func ResolveSplit(raw any) SplitSpec {
	split := DefaultSplit()
	switch v := raw.(type) {
	case string:
		split.Orientation = NormalizeOrientation(v)
	case map[string]any:
		split.Orientation = NormalizeOrientation(v["orientation"])
		split.Position = NormalizePosition(v["position"])
	case SplitSpec:
		split.Orientation = NormalizeOrientation(string(v.Orientation))
		split.Position = NormalizePosition(v.Position)
	default:
		if _, ok := toFloat(raw); ok {
			split.Position = NormalizePosition(raw)
		}
	}
	return split
}

// NormalizeOrientation returns Horizontal only for the exact string
// "horizontal". Everything else, including misspellings and non-strings,
// is Vertical.
func NormalizeOrientation(v any) Orientation {
	switch s := v.(type) {
	case string:
		if s == string(Horizontal) {
			return Horizontal
		}
	case Orientation:
		if s == Horizontal {
			return Horizontal
		}
	}
	return Vertical
}

// NormalizePosition clamps a numeric position into [0, 1]. Non-numeric
// values and NaN yield DefaultPosition.
func NormalizePosition(v any) float64 {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) {
		return DefaultPosition
	}
	return math.Min(math.Max(f, 0), 1)
}

// toFloat accepts the numeric types JSON, YAML and TOML decoders produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
