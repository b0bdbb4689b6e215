package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/starfall/ecs/component"
)

// Terminals report presses and auto-repeat but never releases, so a key
// counts as held for holdFrames after its last press.
const holdFrames = 12

type heldKeys struct {
	left [component.KeyCount]int
}

func keyFor(ev *tcell.EventKey) (component.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return component.KeyLeft, true
	case tcell.KeyRight:
		return component.KeyRight, true
	case tcell.KeyUp:
		return component.KeyJump, true
	case tcell.KeyDown:
		return component.KeyDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return component.KeyLeft, true
		case 'd', 'D':
			return component.KeyRight, true
		case 'w', 'W', ' ':
			return component.KeyJump, true
		case 's', 'S':
			return component.KeyDown, true
		}
	}
	return 0, false
}

func (h *heldKeys) press(k component.Key) {
	if k < component.KeyCount {
		h.left[k] = holdFrames
	}
}

// tick reports the held state of every key for this frame and ages them.
func (h *heldKeys) tick(set func(component.Key, bool)) {
	for k := range component.KeyCount {
		set(k, h.left[k] > 0)
		if h.left[k] > 0 {
			h.left[k]--
		}
	}
}
