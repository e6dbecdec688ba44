package terminal

import (
	"github.com/gdamore/tcell/v2"

	"raymarch/internal/game"
)

// Action is a key press translated to game terms.
type Action int

const (
	ActionNone Action = iota
	ActionTurnLeft
	ActionTurnRight
	ActionForward
	ActionBackward
	ActionScreenshot
	ActionQuit
)

// ActionForKey maps a tcell key event to an action.
func ActionForKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyLeft:
		return ActionTurnLeft
	case tcell.KeyRight:
		return ActionTurnRight
	case tcell.KeyUp:
		return ActionForward
	case tcell.KeyDown:
		return ActionBackward
	case tcell.KeyF12:
		return ActionScreenshot
	case tcell.KeyRune:
		return actionForRune(ev.Rune())
	}
	return ActionNone
}

func actionForRune(r rune) Action {
	switch r {
	case 'a', 'A':
		return ActionTurnLeft
	case 'd', 'D':
		return ActionTurnRight
	case 'w', 'W':
		return ActionForward
	case 's', 'S':
		return ActionBackward
	case 'p', 'P':
		return ActionScreenshot
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// intent is a held direction that fades out unless refreshed.
type intent struct {
	value int
	ttl   int
}

func (in *intent) set(v, ttl int) {
	in.value, in.ttl = v, ttl
}

func (in *intent) tick() int {
	if in.ttl <= 0 {
		in.value = 0
		return 0
	}
	in.ttl--
	return in.value
}

// Intents turns a stream of key presses into per-tick controls. Terminals
// report key repeats but no releases, so a direction stays held for
// holdTicks ticks after its last press.
type Intents struct {
	holdTicks  int
	turn, walk intent
	screenshot bool
	quit       bool
}

// NewIntents creates intents that last holdTicks ticks (at least one).
func NewIntents(holdTicks int) *Intents {
	return &Intents{holdTicks: max(holdTicks, 1)}
}

// Apply records one action.
func (in *Intents) Apply(a Action) {
	switch a {
	case ActionTurnLeft:
		in.turn.set(-1, in.holdTicks)
	case ActionTurnRight:
		in.turn.set(1, in.holdTicks)
	case ActionForward:
		in.walk.set(1, in.holdTicks)
	case ActionBackward:
		in.walk.set(-1, in.holdTicks)
	case ActionScreenshot:
		in.screenshot = true
	case ActionQuit:
		in.quit = true
	}
}

// Controls returns this tick's controls and ages the held intents.
// Screenshot fires once per press; quit sticks.
func (in *Intents) Controls() game.Controls {
	c := game.Controls{
		Turn:       in.turn.tick(),
		Walk:       in.walk.tick(),
		Screenshot: in.screenshot,
		Quit:       in.quit,
	}
	in.screenshot = false
	return c
}
