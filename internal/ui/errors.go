package ui

import "errors"

var (
	// ErrNoSuchPane is returned for pane ids not in the workspace.
	ErrNoSuchPane = errors.New("no such pane")
	// ErrNoSuchTab is returned for tab uids not in the pane.
	ErrNoSuchTab = errors.New("no such tab")
)
