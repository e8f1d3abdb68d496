// Package ui renders a contents tree as a Bubble Tea workspace.
//
// Core pieces:
//   - Workspace: live panes and tabs built from a contents tree
//   - Arrange: pane geometry for a screen rectangle
//   - FocusManager: rotates focus across panes
//   - App: the root model handling workspace keys, tab drag-and-drop and
//     rendering
//
// Tab views come from a views.Registry. While a tab is dragged the shared
// drag-state signal is true.
package ui
