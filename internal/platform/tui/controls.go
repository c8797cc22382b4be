package tui

import "github.com/vovakirdan/tui-shooter/internal/core"

// DefaultHoldTicks is how long one direction key press counts as held.
// Terminals report presses and auto-repeats but never releases, so a
// direction stays held until its repeat stream stops for this long.
const DefaultHoldTicks = 12

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// Controls turns key presses into per-tick input frames.
type Controls struct {
	hold    int
	held    map[core.Action]int
	pending core.InputFrame
	// fires counts presses not yet delivered; each becomes its own tick.
	fires int
}

// NewControls returns controls with the given hold window in ticks.
func NewControls(hold int) *Controls {
	if hold <= 0 {
		hold = DefaultHoldTicks
	}
	return &Controls{
		hold:    hold,
		held:    make(map[core.Action]int, 4),
		pending: core.NewInputFrame(),
	}
}

// Press records one key press.
func (c *Controls) Press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		c.held[a] = c.hold
		delete(c.held, opposite[a])
	case core.ActionFire:
		c.fires++
	default:
		c.pending.Set(a)
	}
}

// Frame returns the input for the next tick and ages held directions.
// One-shot actions are delivered exactly once. Fire presses that arrive
// between ticks are spread over consecutive frames, one per frame.
func (c *Controls) Frame() core.InputFrame {
	frame := c.pending.Clone()
	c.pending.Clear()
	if c.fires > 0 {
		frame.Set(core.ActionFire)
		c.fires--
	}
	for a, left := range c.held {
		frame.Set(a)
		if left <= 1 {
			delete(c.held, a)
		} else {
			c.held[a] = left - 1
		}
	}
	return frame
}

// Release forgets everything held or pending.
func (c *Controls) Release() {
	clear(c.held)
	c.pending.Clear()
	c.fires = 0
}
