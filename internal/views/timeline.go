package views

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"supertab/internal/layout"
)

// DefaultTimelineFrames is the length of a new timeline.
const DefaultTimelineFrames = 240

// TimelineFPS is the playback rate.
const TimelineFPS = 24

var timelineIDs atomic.Int64

// timelineTickMsg advances playback of the timeline with the matching id.
// gen identifies the play session that scheduled it.
type timelineTickMsg struct {
	id  int64
	gen int
}

// TimelineView is a frame scrubber. h/l (or arrows) step, space plays.
type TimelineView struct {
	id      int64
	frames  int
	frame   int
	playing bool
	gen     int // bumped on every play; stale ticks are dropped
	width   int
	height  int
}

var _ View = (*TimelineView)(nil)

// NewTimelineView creates a timeline of the given length.
func NewTimelineView(frames int) *TimelineView {
	if frames < 1 {
		frames = 1
	}
	return &TimelineView{id: timelineIDs.Add(1), frames: frames}
}

func (v *TimelineView) ID() layout.ViewID         { return Timeline }
func (v *TimelineView) Init() tea.Cmd             { return nil }
func (v *TimelineView) SetSize(width, height int) { v.width, v.height = width, height }

// Frame returns the playhead position.
func (v *TimelineView) Frame() int { return v.frame }

// Playing reports whether playback is running.
func (v *TimelineView) Playing() bool { return v.playing }

// Seek moves the playhead, clamped to the timeline.
func (v *TimelineView) Seek(frame int) {
	v.frame = min(max(frame, 0), v.frames-1)
}

func (v *TimelineView) tick() tea.Cmd {
	id, gen := v.id, v.gen
	return tea.Tick(time.Second/TimelineFPS, func(time.Time) tea.Msg {
		return timelineTickMsg{id: id, gen: gen}
	})
}

func (v *TimelineView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case timelineTickMsg:
		if msg.id != v.id || msg.gen != v.gen || !v.playing {
			return v, nil
		}
		if v.frame >= v.frames-1 {
			v.playing = false
			return v, nil
		}
		v.frame++
		return v, v.tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "h", "left":
			v.Seek(v.frame - 1)
		case "l", "right":
			v.Seek(v.frame + 1)
		case "0", "home":
			v.Seek(0)
		case "$", "end":
			v.Seek(v.frames - 1)
		case " ":
			v.playing = !v.playing
			if v.playing {
				if v.frame >= v.frames-1 {
					v.frame = 0
				}
				v.gen++
				return v, v.tick()
			}
		}
	}
	return v, nil
}

func (v *TimelineView) View() string {
	width := v.width
	if width < 3 {
		width = 3
	}
	pos := 0
	if v.frames > 1 {
		pos = v.frame * (width - 1) / (v.frames - 1)
	}
	bar := styles.Played.Render(strings.Repeat("━", pos)) +
		styles.Playhead.Render("┃") +
		styles.Track.Render(strings.Repeat("─", width-1-pos))

	state := "paused"
	if v.playing {
		state = "playing"
	}
	status := fmt.Sprintf("frame %d/%d  %s", v.frame+1, v.frames, state)
	return lipgloss.JoinVertical(lipgloss.Left, bar, styles.Muted.Render(status))
}
