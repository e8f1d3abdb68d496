package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supertab/internal/layout"
)

func tabsOf(p *Pane) []layout.Tab {
	out := make([]layout.Tab, len(p.Tabs))
	for i, t := range p.Tabs {
		out[i] = t.Tab
	}
	return out
}

func TestNewWorkspace_PanesAndViews(t *testing.T) {
	ws := NewWorkspace(sampleContents(t), stubRegistry())
	assert.Equal(t, []string{"0", "1.0", "1.1"}, ws.PaneIDs())
	assert.Len(t, ws.Views(), 7)

	left := ws.Pane("0")
	require.NotNil(t, left)
	assert.Equal(t, layout.Path{0}, left.Path)
	assert.Equal(t, layout.ViewID("effects"), left.ActiveTab().View.ID())

	assert.Equal(t, sampleContents(t), ws.Contents(), "untouched workspace snapshots to its source")
}

func TestWorkspace_SingleTabRoot(t *testing.T) {
	ws := NewWorkspace(layout.Expand(layout.Scalar("preview")), stubRegistry())
	assert.Equal(t, []string{"root"}, ws.PaneIDs())
}

func TestWorkspace_CycleAndSelect(t *testing.T) {
	ws := NewWorkspace(sampleContents(t), stubRegistry())
	require.NoError(t, ws.CycleTab("0", -1))
	assert.Equal(t, 3, ws.Pane("0").Active)
	require.NoError(t, ws.CycleTab("0", 1))
	assert.Equal(t, 0, ws.Pane("0").Active)

	require.NoError(t, ws.SelectTab("0", 2))
	assert.Equal(t, layout.ViewID("console"), ws.Pane("0").ActiveTab().Tab.View)

	assert.ErrorIs(t, ws.SelectTab("0", 9), ErrNoSuchTab)
	assert.ErrorIs(t, ws.CycleTab("7", 1), ErrNoSuchPane)
}

func TestWorkspace_AddTabUsesNextUID(t *testing.T) {
	ws := NewWorkspace(sampleContents(t), stubRegistry())
	tv, err := ws.AddTab("1.1", "preview")
	require.NoError(t, err)
	assert.Equal(t, layout.Tab{UID: 2, View: "preview"}, tv.Tab)
	assert.Equal(t, 2, ws.Pane("1.1").Active)

	// closed uids below the largest one are not reused
	_, err = ws.CloseTab("1.1", 0)
	require.NoError(t, err)
	tv, err = ws.AddTab("1.1", "effects")
	require.NoError(t, err)
	assert.Equal(t, 3, tv.Tab.UID)
}

func TestWorkspace_CloseTabKeepsActiveSensible(t *testing.T) {
	ws := NewWorkspace(sampleContents(t), stubRegistry())
	p := ws.Pane("0")
	require.NoError(t, ws.SelectTab("0", 3))

	_, err := ws.CloseTab("0", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Active, "closing the last active tab selects the new last")

	require.NoError(t, ws.SelectTab("0", 2))
	_, err = ws.CloseTab("0", 0)
	require.NoError(t, err)
	assert.Equal(t, layout.ViewID("console"), p.ActiveTab().Tab.View, "active tab stays selected")

	for len(p.Tabs) > 0 {
		_, err = ws.CloseTab("0", p.Tabs[0].Tab.UID)
		require.NoError(t, err)
	}
	assert.Nil(t, p.ActiveTab())
	assert.Equal(t, 0, p.Active)
	assert.NoError(t, ws.CycleTab("0", 1))

	_, err = ws.CloseTab("0", 0)
	assert.True(t, errors.Is(err, ErrNoSuchTab))
}

func TestWorkspace_MoveTab(t *testing.T) {
	ws := NewWorkspace(sampleContents(t), stubRegistry())
	view := ws.Pane("0").Tabs[1].View

	tv, err := ws.MoveTab("0", 1, "1.0")
	require.NoError(t, err)
	assert.Same(t, view, tv.View, "the view instance moves with the tab")
	assert.Equal(t, layout.Tab{UID: 1, View: "preview"}, tv.Tab)

	assert.Equal(t, []layout.Tab{{UID: 0, View: "effects"}, {UID: 2, View: "console"}, {UID: 3, View: "timeline"}}, tabsOf(ws.Pane("0")))
	assert.Equal(t, []layout.Tab{{UID: 0, View: "preview"}, {UID: 1, View: "preview"}}, tabsOf(ws.Pane("1.0")))

	_, err = ws.MoveTab("0", 1, "1.0")
	assert.ErrorIs(t, err, ErrNoSuchTab)
	_, err = ws.MoveTab("0", 0, "nope")
	assert.ErrorIs(t, err, ErrNoSuchPane)
	assert.Len(t, ws.Pane("0").Tabs, 3, "failed move leaves the source intact")
}

func TestWorkspace_SnapshotKeepsUIDsUniquePerPane(t *testing.T) {
	ws := NewWorkspace(sampleContents(t), stubRegistry())
	_, _ = ws.MoveTab("1.1", 0, "0")
	_, _ = ws.MoveTab("1.1", 1, "0")
	_, _ = ws.AddTab("1.1", "console")

	layout.Walk(ws.Contents(), func(p layout.Path, n layout.Contents) bool {
		tp, ok := n.(*layout.TabPane)
		if !ok {
			return true
		}
		seen := map[int]bool{}
		for _, tab := range tp.Tabs {
			assert.False(t, seen[tab.UID], "duplicate uid %d in pane %s", tab.UID, p)
			seen[tab.UID] = true
		}
		return true
	})
	assert.Equal(t, 7+1, layout.TabCount(ws.Contents()))
}
