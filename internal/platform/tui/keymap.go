package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultKeyRelease is how long a direction stays held after its last
// key event when no config value is given.
const DefaultKeyRelease = 180 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
//
// Terminals report key presses (and auto-repeats) but never releases, so the
// mapper tracks held directions and synthesizes a release once a direction
// has gone quiet for the release window. Pressing the opposite direction
// releases the other one immediately.
type KeyMapper struct {
	releaseAfter time.Duration
	held         map[core.Action]time.Time // direction -> last press
}

// NewKeyMapper creates a key mapper with the given release window.
func NewKeyMapper(releaseAfter time.Duration) *KeyMapper {
	if releaseAfter <= 0 {
		releaseAfter = DefaultKeyRelease
	}
	return &KeyMapper{
		releaseAfter: releaseAfter,
		held:         make(map[core.Action]time.Time, 2),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "space":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message received at now.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, now time.Time) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		if opposite := oppositeOf(action); km.isHeld(opposite) {
			delete(km.held, opposite)
			frame.Set(releaseOf(opposite))
		}
		km.held[action] = now
		frame.Set(action)
	default:
		frame.Set(action)
	}
	return isQuit
}

// Expire adds a release to the frame for every direction that has been
// quiet for longer than the release window.
func (km *KeyMapper) Expire(frame *core.InputFrame, now time.Time) {
	for dir, last := range km.held {
		if now.Sub(last) >= km.releaseAfter {
			delete(km.held, dir)
			frame.Set(releaseOf(dir))
		}
	}
}

// ReleaseAll forgets every held direction, e.g. after the game is reset.
func (km *KeyMapper) ReleaseAll(frame *core.InputFrame) {
	for dir := range km.held {
		delete(km.held, dir)
		if frame != nil {
			frame.Set(releaseOf(dir))
		}
	}
}

func (km *KeyMapper) isHeld(dir core.Action) bool {
	_, ok := km.held[dir]
	return ok
}

func oppositeOf(dir core.Action) core.Action {
	if dir == core.ActionLeft {
		return core.ActionRight
	}
	return core.ActionLeft
}

func releaseOf(dir core.Action) core.Action {
	if dir == core.ActionLeft {
		return core.ActionLeftRelease
	}
	return core.ActionRightRelease
}
