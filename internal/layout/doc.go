// Package layout expands terse, hand-written workspace layouts into
// render-ready contents trees.
//
// A layout description is one of:
//   - a list of view ids: one pane holding those tabs, in order
//   - a split record: {split: ..., panes: [...]}
//   - any other scalar: a single-tab pane
//
// Expand is total. Malformed split fields fall back to their defaults
// (vertical, 0.5) instead of failing. Parse is the only place that looks at
// loosely typed configuration values.
package layout
