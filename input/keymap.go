package input

import "github.com/gdamore/tcell/v2"

// KeyMap binds special keys and runes to actions
type KeyMap struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeyMap returns arrow + vi-style bindings
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionPanUp,
			tcell.KeyDown:   ActionPanDown,
			tcell.KeyLeft:   ActionPanLeft,
			tcell.KeyRight:  ActionPanRight,
			tcell.KeyPgUp:   ActionZoomIn,
			tcell.KeyPgDn:   ActionZoomOut,
			tcell.KeyHome:   ActionReset,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
		Runes: map[rune]Action{
			'k':  ActionPanUp,
			'j':  ActionPanDown,
			'h':  ActionPanLeft,
			'l':  ActionPanRight,
			'+':  ActionZoomIn,
			'=':  ActionZoomIn,
			'i':  ActionZoomIn,
			'-':  ActionZoomOut,
			'o':  ActionZoomOut,
			'r':  ActionReset,
			'q':  ActionQuit,
			'm':  ActionMarkSet,
			'\'': ActionMarkJump,
			'`':  ActionMarkJump,
		},
	}
}

// Lookup resolves a key event, ActionNone if unbound
func (km *KeyMap) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return km.Runes[ev.Rune()]
	}
	return km.Keys[ev.Key()]
}
