package layout

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// ErrExpandedContents is returned by Parse when handed a tab pane from an
// already expanded contents tree. Expansion is not a fixpoint.
var ErrExpandedContents = errors.New("layout: value is an expanded contents tree, not a layout")

// Parse builds a Description from values produced by JSON, YAML or TOML
// decoders. Lists become tab lists, records become splits, everything else
// is a scalar tab. Non-string list elements are formatted with ToString.
func Parse(raw any) (Description, error) {
	return parse(raw, nil)
}

func parse(raw any, path Path) (Description, error) {
	switch v := raw.(type) {
	case []any:
		return tabList(v), nil
	case []string:
		return Tabs(v...), nil
	case []ViewID:
		return TabList(v), nil
	case map[string]any:
		return parseSplit(v, path)
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[ToString(k)] = val
		}
		return parseSplit(m, path)
	default:
		if items, ok := listItems(raw); ok {
			return tabList(items), nil
		}
		if m, ok := stringMap(raw); ok {
			return parseSplit(m, path)
		}
		return Scalar(ToString(raw)), nil
	}
}

// listItems returns the elements of any slice or array value.
func listItems(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// stringMap copies a map with string keys of any value type.
func stringMap(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func parseSplit(m map[string]any, path Path) (Description, error) {
	rawPanes, hasPanes := m["panes"]
	if _, hasTabs := m["tabs"]; hasTabs && !hasPanes {
		return nil, fmt.Errorf("pane %s: %w", path, ErrExpandedContents)
	}
	node := &SplitNode{Split: ResolveSplit(m["split"])}
	for i, child := range asList(rawPanes) {
		d, err := parse(child, path.Child(i))
		if err != nil {
			return nil, err
		}
		node.Panes = append(node.Panes, d)
	}
	return node, nil
}

func tabList(items []any) TabList {
	out := make(TabList, len(items))
	for i, item := range items {
		out[i] = ViewID(ToString(item))
	}
	return out
}

// asList returns the elements of a decoded list value. A missing or
// non-list value has no elements.
func asList(v any) []any {
	items, _ := listItems(v)
	return items
}

// ToString converts a decoded scalar to a view id string. Whole numbers are
// formatted without a fraction; nil becomes "".
func ToString(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case ViewID:
		return string(val)
	case float64:
		if math.Trunc(val) == val && math.Abs(val) < 1<<53 {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
