package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestControlsHoldDecays(t *testing.T) {
	c := NewControls(3)
	c.Press(core.ActionLeft)

	for i := range 3 {
		if !c.Frame().Has(core.ActionLeft) {
			t.Fatalf("frame %d: left should still be held", i)
		}
	}
	if c.Frame().Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestControlsRepeatExtendsHold(t *testing.T) {
	c := NewControls(2)
	c.Press(core.ActionUp)
	c.Frame()
	c.Press(core.ActionUp)
	c.Frame()
	if !c.Frame().Has(core.ActionUp) {
		t.Error("auto-repeat should keep the direction held")
	}
}

func TestControlsOppositeCancels(t *testing.T) {
	c := NewControls(10)
	c.Press(core.ActionLeft)
	c.Press(core.ActionRight)

	f := c.Frame()
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("frame = %v, want right only", f)
	}

	c.Press(core.ActionUp)
	f = c.Frame()
	if !f.Has(core.ActionUp) || !f.Has(core.ActionRight) {
		t.Errorf("frame = %v, want up and right together", f)
	}
}

func TestControlsFireIsEdge(t *testing.T) {
	c := NewControls(0)
	c.Press(core.ActionFire)
	c.Press(core.ActionPause)

	f := c.Frame()
	if !f.Has(core.ActionFire) || !f.Has(core.ActionPause) {
		t.Fatalf("frame = %v, want fire and pause", f)
	}
	if f = c.Frame(); f.Has(core.ActionFire) || f.Has(core.ActionPause) {
		t.Error("one-shot actions must not repeat")
	}
}

func TestControlsKeepsEveryFirePress(t *testing.T) {
	c := NewControls(0)
	c.Press(core.ActionFire)
	c.Press(core.ActionFire)
	c.Press(core.ActionFire)

	shots := 0
	for range 5 {
		if c.Frame().Has(core.ActionFire) {
			shots++
		}
	}
	if shots != 3 {
		t.Errorf("shots = %d, want one per press", shots)
	}
}

func TestControlsRelease(t *testing.T) {
	c := NewControls(5)
	c.Press(core.ActionDown)
	c.Press(core.ActionFire)
	c.Release()
	if f := c.Frame(); !f.Empty() {
		t.Errorf("frame after release = %v, want empty", f)
	}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionFire},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.ActionNone},
	}
	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
